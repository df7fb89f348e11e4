package english

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/npillmayer/phrasal"
	"github.com/npillmayer/phrasal/internal/tracing"
)

// Words starting with one of these letters take "an"; everything else
// takes "a". This is letter-based agreement, not sound-based: "hour"
// and "unicorn" are judged by their spelling.
var vowelLetters = rangetable.New('a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U')

// validArticle is the agreement predicate for determiner-prefixed noun
// phrases. It rejects a reading only when the constituent's first child
// is a determiner and the article disagrees with the following word:
// "a" before a word starting with a vowel letter, or "an" before a word
// starting with a consonant letter. Any other determiner passes, and so
// does every constituent that does not start with a determiner.
func validArticle(c *phrasal.Constituent) bool {
	if len(c.Children) == 0 || c.Children[0].Tag != Determiner {
		return true
	}
	if len(c.Words) < 2 { // a lone determiner; nothing to agree with
		return true
	}
	ok := true
	switch c.Words[0] {
	case "a":
		ok = !startsWithVowelLetter(c.Words[1])
	case "an":
		ok = startsWithVowelLetter(c.Words[1])
	}
	if !ok {
		tracing.P("words", c.Words[:2]).Debugf("article disagrees with following word")
	}
	return ok
}

func startsWithVowelLetter(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.Is(vowelLetters, r)
}
