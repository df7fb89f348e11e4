package phrasal

import "strings"

// A Constituent is a node in a phrase-structure tree. It represents a
// contiguous fragment of the input, labeled with an optional category tag.
//
// Constituents are read-only data structures. None of the operations in
// this package mutate a constituent after construction; derived nodes
// share sub-trees with their originals. Sharing sub-trees across
// alternative parses of the same input is safe and expected.
type Constituent struct {
	Tag      string         // category label; "" means unlabeled
	Children []*Constituent // ordered sub-constituents; nil for terminals
	Words    []string       // the words this node spans, in input order
}

// A Constituent's Words are always the concatenation of the words of its
// descendant terminals, in order. Terminals carry their words directly
// and have no children.

// Leaf creates a terminal constituent spanning the given words.
// It carries no tag and no children.
func Leaf(words ...string) *Constituent {
	return &Constituent{Words: words}
}

// Concat joins two constituents into a new unlabeled node with exactly
// the two arguments as children. The new node spans the words of a
// followed by the words of b. Neither argument is modified.
func Concat(a, b *Constituent) *Constituent {
	words := make([]string, 0, len(a.Words)+len(b.Words))
	words = append(words, a.Words...)
	words = append(words, b.Words...)
	return &Constituent{
		Children: []*Constituent{a, b},
		Words:    words,
	}
}

// WithTag returns a copy of c with the tag replaced. Children and words
// are shared with c, which is left untouched.
func (c *Constituent) WithTag(tag string) *Constituent {
	return &Constituent{
		Tag:      tag,
		Children: c.Children,
		Words:    c.Words,
	}
}

// IsTerminal returns true if c has no children, i.e., if it directly
// carries words of the input.
func (c *Constituent) IsTerminal() bool {
	return len(c.Children) == 0
}

// Equal compares two constituents structurally: by tag, children and
// words, never by identity. Two independently built trees with the same
// content are equal. Comparing against nil yields false, except that two
// nil constituents are considered equal.
func (c *Constituent) Equal(other *Constituent) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Tag != other.Tag {
		return false
	}
	if len(c.Children) != len(other.Children) || len(c.Words) != len(other.Words) {
		return false
	}
	for i, w := range c.Words {
		if other.Words[i] != w {
			return false
		}
	}
	for i, child := range c.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders a constituent as TAG(child1,child2,...), or as
// TAG(word1,word2,...) for terminal groupings. An absent tag is rendered
// as the empty string, e.g. "(fox)".
func (c *Constituent) String() string {
	if c == nil {
		return ""
	}
	var args string
	if len(c.Children) > 0 {
		parts := make([]string, len(c.Children))
		for i, child := range c.Children {
			parts[i] = child.String()
		}
		args = strings.Join(parts, ",")
	} else {
		args = strings.Join(c.Words, ",")
	}
	return c.Tag + "(" + args + ")"
}
