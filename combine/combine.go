/*
Package combine implements the primitive parser combinators of phrasal.

Under active development; use at your own risk

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Grammars are built by composing a handful of primitives, each of which
is a phrasal.Parser:

  Word(w)          match exactly one given token
  Seq(p1, p2)      p1 followed by p2 (cross-product of alternatives)
  Alt(p1, p2)      all results of p1, then all results of p2
  Tag(t, p)        relabel every constituent p produces
  Filter(p, pred)  keep only constituents satisfying pred
  Whole(p)         keep only parses consuming the entire input
  Recursive(def)   self-referential rules
  Star(p)          greedy zero-or-more repetition

Sequence and Choice are variadic conveniences over Seq and Alt.

All combinators share the same search semantics: they enumerate every
alternative reading, lazily, in a deterministic order, and represent
failure as an empty result stream. Exhaustive enumeration makes
exponential blowup on ambiguous grammars possible; that is the accepted
cost of a correctness-first backtracking engine. The one deliberate
exception is Star, which repeats greedily and deterministically; see the
documentation of Star for the rationale.

Typical Usage

A rule for a determiner followed by a noun, labeled "NP":

  det := combine.Choice(combine.Word("a"), combine.Word("the"))
  np := combine.Tag("NP", combine.Seq(det, noun))
  results := combine.Whole(np).Parse(tokens)
  if r, ok := results.First(); ok {
    fmt.Println(r.Tree)
  }
*/
package combine

import (
	"github.com/npillmayer/phrasal"
	"github.com/npillmayer/phrasal/internal/tracing"
)

// Word returns a parser matching exactly one occurrence of the given
// token. On success it produces a single result: an untagged terminal
// constituent spanning w, paired with the rest of the input. On any
// other input, including the empty sequence, it produces no result.
func Word(w string) phrasal.Parser {
	return wordParser(w)
}

type wordParser string

func (p wordParser) Parse(tokens []string) *phrasal.Results {
	delivered := false
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if delivered || len(tokens) == 0 || tokens[0] != string(p) {
			return phrasal.Result{}, false
		}
		delivered = true
		return phrasal.Result{Tree: phrasal.Leaf(string(p)), Rest: tokens[1:]}, true
	})
}

// Seq returns a parser recognizing p1 followed by p2. For every reading
// (c1, rest1) of p1 and every reading (c2, rest2) of p2 on rest1, it
// produces (Concat(c1, c2), rest2). The cross-product is enumerated
// lazily in p1-major order: p1's first alternative is fully explored
// through p2 before p1's second alternative is considered.
func Seq(p1, p2 phrasal.Parser) phrasal.Parser {
	return seqParser{p1, p2}
}

// Sequence folds Seq over its arguments, left-associatively. It panics
// when called without arguments.
func Sequence(parsers ...phrasal.Parser) phrasal.Parser {
	if len(parsers) == 0 {
		panic("combine.Sequence called without parsers")
	}
	p := parsers[0]
	for _, q := range parsers[1:] {
		p = Seq(p, q)
	}
	return p
}

type seqParser struct {
	p1, p2 phrasal.Parser
}

func (p seqParser) Parse(tokens []string) *phrasal.Results {
	var left, right *phrasal.Results
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if left == nil {
			left = p.p1.Parse(tokens)
		}
		for {
			if right == nil {
				if !left.Next() {
					return phrasal.Result{}, false
				}
				right = p.p2.Parse(left.Rest())
			}
			if right.Next() {
				return phrasal.Result{
					Tree: phrasal.Concat(left.Tree(), right.Tree()),
					Rest: right.Rest(),
				}, true
			}
			right = nil // second parser exhausted, backtrack into p1
		}
	})
}

// Alt returns a parser producing all results of p1, in p1's order,
// followed by all results of p2, in p2's order. Both branches are
// always attempted; there is no short-circuiting on first success.
// This is what lets ambiguity surface as multiple results.
func Alt(p1, p2 phrasal.Parser) phrasal.Parser {
	return altParser{p1, p2}
}

// Choice folds Alt over its arguments, left-associatively. It panics
// when called without arguments.
func Choice(parsers ...phrasal.Parser) phrasal.Parser {
	if len(parsers) == 0 {
		panic("combine.Choice called without parsers")
	}
	p := parsers[0]
	for _, q := range parsers[1:] {
		p = Alt(p, q)
	}
	return p
}

type altParser struct {
	p1, p2 phrasal.Parser
}

func (p altParser) Parse(tokens []string) *phrasal.Results {
	var cur *phrasal.Results
	second := false
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if cur == nil {
			cur = p.p1.Parse(tokens)
		}
		for {
			if cur.Next() {
				return phrasal.Result{Tree: cur.Tree(), Rest: cur.Rest()}, true
			}
			if second {
				return phrasal.Result{}, false
			}
			second = true
			cur = p.p2.Parse(tokens)
		}
	})
}

// Tag returns a parser that relabels every constituent produced by p
// with the given category tag. Children, words and remainders pass
// through unchanged.
func Tag(tag string, p phrasal.Parser) phrasal.Parser {
	return tagParser{tag: tag, p: p}
}

type tagParser struct {
	tag string
	p   phrasal.Parser
}

func (p tagParser) Parse(tokens []string) *phrasal.Results {
	var inner *phrasal.Results
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if inner == nil {
			inner = p.p.Parse(tokens)
		}
		if !inner.Next() {
			return phrasal.Result{}, false
		}
		return phrasal.Result{
			Tree: inner.Tree().WithTag(p.tag),
			Rest: inner.Rest(),
		}, true
	})
}

// Filter returns a parser passing through only those results of p whose
// constituent satisfies accept. Rejected readings are silently pruned
// from the search; they are not errors. A nil accept function accepts
// everything.
func Filter(p phrasal.Parser, accept func(*phrasal.Constituent) bool) phrasal.Parser {
	return filterParser{p: p, accept: accept}
}

type filterParser struct {
	p      phrasal.Parser
	accept func(*phrasal.Constituent) bool
}

func (p filterParser) Parse(tokens []string) *phrasal.Results {
	var inner *phrasal.Results
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if inner == nil {
			inner = p.p.Parse(tokens)
		}
		for inner.Next() {
			if p.accept == nil || p.accept(inner.Tree()) {
				return phrasal.Result{Tree: inner.Tree(), Rest: inner.Rest()}, true
			}
			tracing.P("constituent", inner.Tree()).Debugf("filter pruned a reading")
		}
		return phrasal.Result{}, false
	})
}

// Whole returns a parser passing through only those results of p that
// consumed the entire input. It anchors a top-level rule against
// partial matches.
func Whole(p phrasal.Parser) phrasal.Parser {
	return wholeParser{p}
}

type wholeParser struct {
	p phrasal.Parser
}

func (p wholeParser) Parse(tokens []string) *phrasal.Results {
	var inner *phrasal.Results
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if inner == nil {
			inner = p.p.Parse(tokens)
		}
		for inner.Next() {
			if len(inner.Rest()) == 0 {
				return phrasal.Result{Tree: inner.Tree(), Rest: inner.Rest()}, true
			}
			tracing.P("rest", len(inner.Rest())).Debugf("dropping partial parse")
		}
		return phrasal.Result{}, false
	})
}

// Recursive supports self-referential grammar rules, e.g. a noun phrase
// that may start with an adjective followed by another noun phrase:
//
//	np0 := combine.Recursive(func(self phrasal.Parser) phrasal.Parser {
//	  return combine.Tag("NP", combine.Alt(noun, combine.Seq(adj, self)))
//	})
//
// The define function receives a placeholder standing for the parser
// being defined and returns the rule body built with it. The
// placeholder delegates to the body only at parse time, so it may be
// composed freely, but it must not be invoked while define is still
// running, and the body must consume at least one token before reaching
// it again. A rule that can re-enter itself without consuming input
// (left recursion) diverges at parse time; guarding against that is the
// grammar author's responsibility, not the engine's.
func Recursive(define func(self phrasal.Parser) phrasal.Parser) phrasal.Parser {
	rec := &recursiveParser{}
	rec.body = define(rec)
	return rec
}

type recursiveParser struct {
	body phrasal.Parser // populated after define returns
}

func (p *recursiveParser) Parse(tokens []string) *phrasal.Results {
	return p.body.Parse(tokens)
}
