package english

import (
	"errors"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/emirpasic/gods/sets/hashset"
)

// ErrLexiconIncomplete is returned when a lexicon lacks words for one of
// the grammar's terminal categories.
var ErrLexiconIncomplete = errors.New("english: lexicon has no words for a required category")

// A Lexicon maps terminal categories to word lists. Word lists are plain
// data: the grammar machinery has no knowledge of English vocabulary
// beyond what a lexicon provides.
//
// A Lexicon is not safe for concurrent modification; fill it first, then
// hand it to NewGrammar.
type Lexicon struct {
	categories map[string]*wordClass
}

// wordClass keeps both a set for membership tests and the insertion
// order, so that grammars built from a lexicon enumerate alternatives
// deterministically.
type wordClass struct {
	members *hashset.Set
	ordered []string
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{categories: make(map[string]*wordClass)}
}

// Add registers words under a category tag. Duplicates are ignored;
// first insertion wins the position in the category's word order.
func (lex *Lexicon) Add(tag string, words ...string) {
	class := lex.categories[tag]
	if class == nil {
		class = &wordClass{members: hashset.New()}
		lex.categories[tag] = class
	}
	for _, w := range words {
		if class.members.Contains(w) {
			continue
		}
		class.members.Add(w)
		class.ordered = append(class.ordered, w)
	}
}

// Contains reports whether word is registered under the category tag.
func (lex *Lexicon) Contains(tag string, word string) bool {
	class := lex.categories[tag]
	return class != nil && class.members.Contains(word)
}

// Words returns the words of a category in insertion order. The
// returned slice is owned by the lexicon and must not be modified.
func (lex *Lexicon) Words(tag string) []string {
	class := lex.categories[tag]
	if class == nil {
		return nil
	}
	return class.ordered
}

// DefaultLexicon returns the small vocabulary used by the package-level
// parsing functions. Words may appear in more than one category
// ("table" is noun and adjective, "caught" adjective and verb); such
// overlaps are a source of ambiguous parses.
func DefaultLexicon() *Lexicon {
	lex := NewLexicon()
	lex.Add(Noun, "fox", "wolf", "ant", "table")
	lex.Add(Adjective, "quick", "brown", "table", "caught", "adorable")
	lex.Add(Determiner, "a", "an", "the")
	lex.Add(Verb, "jump", "jumped", "caught")
	return lex
}

// lexiconFile is the TOML schema for LoadLexicon.
type lexiconFile struct {
	Nouns       []string `toml:"nouns"`
	Adjectives  []string `toml:"adjectives"`
	Determiners []string `toml:"determiners"`
	Verbs       []string `toml:"verbs"`
}

// LoadLexicon reads a lexicon from TOML input, e.g.
//
//	nouns       = ["fox", "wolf"]
//	adjectives  = ["quick"]
//	determiners = ["a", "an", "the"]
//	verbs       = ["jumped"]
//
// Every category of the sentence grammar must be non-empty, otherwise
// LoadLexicon returns ErrLexiconIncomplete.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	var file lexiconFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	if len(file.Nouns) == 0 || len(file.Adjectives) == 0 ||
		len(file.Determiners) == 0 || len(file.Verbs) == 0 {
		return nil, ErrLexiconIncomplete
	}
	lex := NewLexicon()
	lex.Add(Noun, file.Nouns...)
	lex.Add(Adjective, file.Adjectives...)
	lex.Add(Determiner, file.Determiners...)
	lex.Add(Verb, file.Verbs...)
	return lex, nil
}
