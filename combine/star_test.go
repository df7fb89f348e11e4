package combine_test

import (
	"testing"

	"github.com/npillmayer/phrasal"
	"github.com/npillmayer/phrasal/combine"
	"github.com/npillmayer/phrasal/internal/tracing"
)

func TestStarSingleMatch(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	p := combine.Star(combine.Word("a"))
	all := p.Parse([]string{"a", "b"}).All()
	if len(all) != 1 {
		t.Fatalf("expected exactly one result, have %d", len(all))
	}
	want := &phrasal.Constituent{
		Children: []*phrasal.Constituent{phrasal.Leaf("a")},
		Words:    []string{"a"},
	}
	if !all[0].Tree.Equal(want) {
		t.Errorf("expected %s, is %s", want, all[0].Tree)
	}
	if len(all[0].Rest) != 1 || all[0].Rest[0] != "b" {
		t.Errorf("expected remainder [b], is %v", all[0].Rest)
	}
}

func TestStarGreedyOverAlternation(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	p := combine.Star(combine.Alt(combine.Word("a"), combine.Word("b")))
	r, ok := p.Parse([]string{"a", "b", "c"}).First()
	if !ok {
		t.Fatalf("expected a result")
	}
	want := &phrasal.Constituent{
		Children: []*phrasal.Constituent{phrasal.Leaf("a"), phrasal.Leaf("b")},
		Words:    []string{"a", "b"},
	}
	if !r.Tree.Equal(want) {
		t.Errorf("expected %s, is %s", want, r.Tree)
	}
	if len(r.Rest) != 1 || r.Rest[0] != "c" {
		t.Errorf("expected remainder [c], is %v", r.Rest)
	}
}

func TestStarConsumesWholeInput(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	p := combine.Star(combine.Alt(combine.Word("a"), combine.Word("b")))
	r, ok := p.Parse([]string{"a", "b", "b"}).First()
	if !ok {
		t.Fatalf("expected a result")
	}
	want := &phrasal.Constituent{
		Children: []*phrasal.Constituent{
			phrasal.Leaf("a"), phrasal.Leaf("b"), phrasal.Leaf("b"),
		},
		Words: []string{"a", "b", "b"},
	}
	if !r.Tree.Equal(want) {
		t.Errorf("expected %s, is %s", want, r.Tree)
	}
	if len(r.Rest) != 0 {
		t.Errorf("expected an empty remainder, is %v", r.Rest)
	}
}

func TestStarZeroMatches(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	p := combine.Star(combine.Alt(combine.Word("a"), combine.Word("b")))
	all := p.Parse([]string{"c"}).All()
	if len(all) != 1 {
		t.Fatalf("expected exactly one result, have %d", len(all))
	}
	want := &phrasal.Constituent{}
	if !all[0].Tree.Equal(want) {
		t.Errorf("expected an empty constituent, is %s", all[0].Tree)
	}
	if len(all[0].Rest) != 1 || all[0].Rest[0] != "c" {
		t.Errorf("expected remainder [c], is %v", all[0].Rest)
	}
}

func TestStarTakesOnlyFirstAlternative(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	// the pair reading comes first, so the star never sees the single-
	// token reading and stops after one step
	p := combine.Star(combine.Alt(
		combine.Seq(combine.Word("a"), combine.Word("b")),
		combine.Word("a"),
	))
	r, ok := p.Parse([]string{"a", "b", "a"}).First()
	if !ok {
		t.Fatalf("expected a result")
	}
	if len(r.Tree.Children) != 2 {
		t.Errorf("expected two repetition steps, have %d", len(r.Tree.Children))
	}
	if len(r.Rest) != 0 {
		t.Errorf("expected the greedy star to consume everything, remainder is %v", r.Rest)
	}
}
