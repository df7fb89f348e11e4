package english

import "testing"

func TestLexiconAddAndContains(t *testing.T) {
	lex := NewLexicon()
	lex.Add(Noun, "fox", "wolf")
	lex.Add(Noun, "fox") // duplicate, ignored
	if !lex.Contains(Noun, "fox") || !lex.Contains(Noun, "wolf") {
		t.Errorf("expected registered words to be contained")
	}
	if lex.Contains(Noun, "table") || lex.Contains(Verb, "fox") {
		t.Errorf("expected unregistered words to be absent")
	}
	words := lex.Words(Noun)
	if len(words) != 2 || words[0] != "fox" || words[1] != "wolf" {
		t.Errorf("expected words in insertion order without duplicates, are %v", words)
	}
}

func TestLexiconUnknownCategory(t *testing.T) {
	lex := NewLexicon()
	if lex.Words("X") != nil {
		t.Errorf("expected no words for an unknown category")
	}
	if lex.Contains("X", "fox") {
		t.Errorf("expected an unknown category to contain nothing")
	}
}

func TestDefaultLexiconOverlaps(t *testing.T) {
	lex := DefaultLexicon()
	if !lex.Contains(Noun, "table") || !lex.Contains(Adjective, "table") {
		t.Errorf("expected 'table' to be noun and adjective")
	}
	if !lex.Contains(Verb, "caught") || !lex.Contains(Adjective, "caught") {
		t.Errorf("expected 'caught' to be verb and adjective")
	}
}
