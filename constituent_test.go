package phrasal

import (
	"fmt"
	"testing"
)

func TestLeaf(t *testing.T) {
	l := Leaf("fox")
	if len(l.Children) != 0 {
		t.Errorf("expected leaf to have no children, has %d", len(l.Children))
	}
	if len(l.Words) != 1 || l.Words[0] != "fox" {
		t.Errorf("expected leaf words to be (fox), are %v", l.Words)
	}
	if l.Tag != "" {
		t.Errorf("expected leaf to be untagged, tag is %q", l.Tag)
	}
}

func TestConcat(t *testing.T) {
	a, b := Leaf("quick"), Leaf("fox")
	c := Concat(a, b)
	if len(c.Children) != 2 || c.Children[0] != a || c.Children[1] != b {
		t.Errorf("expected children to be the two arguments, are %v", c.Children)
	}
	if len(c.Words) != 2 || c.Words[0] != "quick" || c.Words[1] != "fox" {
		t.Errorf("expected words to be (quick,fox), are %v", c.Words)
	}
	if c.Tag != "" {
		t.Errorf("expected concatenation to be untagged, tag is %q", c.Tag)
	}
}

func TestWithTagSharesContent(t *testing.T) {
	c := Concat(Leaf("quick"), Leaf("fox"))
	tagged := c.WithTag("NP")
	if tagged.Tag != "NP" {
		t.Errorf("expected tag NP, is %q", tagged.Tag)
	}
	if c.Tag != "" {
		t.Errorf("relabeling must not touch the original, tag is now %q", c.Tag)
	}
	if &tagged.Children[0] != &c.Children[0] || &tagged.Words[0] != &c.Words[0] {
		t.Errorf("expected children and words to be shared with the original")
	}
}

func TestEqualIsStructural(t *testing.T) {
	mk := func() *Constituent {
		return Concat(Leaf("quick"), Leaf("fox")).WithTag("NP")
	}
	a, b := mk(), mk()
	if !a.Equal(a) {
		t.Errorf("expected equality to be reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("expected independently built trees with equal content to be equal")
	}
	if a.Equal(a.WithTag("S")) {
		t.Errorf("expected trees with different tags to differ")
	}
	if a.Equal(Concat(Leaf("quick"), Leaf("wolf")).WithTag("NP")) {
		t.Errorf("expected trees with different words to differ")
	}
	if a.Equal(Leaf("quick", "fox").WithTag("NP")) {
		t.Errorf("expected trees with different shape to differ")
	}
}

func TestEqualNil(t *testing.T) {
	var none *Constituent
	if none.Equal(Leaf("fox")) {
		t.Errorf("expected nil to differ from a leaf")
	}
	if Leaf("fox").Equal(nil) {
		t.Errorf("expected a leaf to differ from nil")
	}
	if !none.Equal(nil) {
		t.Errorf("expected two nil constituents to be equal")
	}
}

func TestStringRendering(t *testing.T) {
	leaf := Leaf("fox").WithTag("N")
	if leaf.String() != "N(fox)" {
		t.Errorf("expected N(fox), is %s", leaf)
	}
	branch := Concat(Leaf("the").WithTag("Compl"), leaf).WithTag("NP")
	if branch.String() != "NP(Compl(the),N(fox))" {
		t.Errorf("expected NP(Compl(the),N(fox)), is %s", branch)
	}
	untagged := Concat(Leaf("a"), Leaf("b"))
	if untagged.String() != "((a),(b))" {
		t.Errorf("expected ((a),(b)), is %s", untagged)
	}
}

func ExampleConstituent_String() {
	np := Concat(Leaf("the").WithTag("Compl"), Leaf("fox").WithTag("N")).WithTag("NP")
	fmt.Println(np)
	// Output: NP(Compl(the),N(fox))
}
