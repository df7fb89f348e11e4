/*
Package english wires the phrasal combinators into a small grammar of
English sentences.

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

The grammar recognizes sentences of the shape "determiner, zero or more
adjectives, noun, verb":

  S   →  NP VP
  NP  →  Compl NP0        (gated by article agreement)
  NP0 →  N  |  Adj NP0
  VP  →  V

Terminal categories are tagged alternations over a Lexicon's word
lists; the grammar itself carries no vocabulary. The one semantic rule
is article agreement: "a" may not precede a word starting with a vowel
letter, "an" may not precede a word starting with a consonant letter.

This package is an illustrative consumer of the combinator engine, not
engine logic. It doubles as the reference for how to wire a grammar of
your own.

Typical Usage

Clients parse a pre-tokenized sentence with the default vocabulary:

  tree, ok := english.Parse([]string{"the", "quick", "brown", "fox", "jumped"})
  if ok {
    fmt.Println(tree)
  }

or compose a Grammar from their own Lexicon and drive it directly.
*/
package english

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/phrasal"
	"github.com/npillmayer/phrasal/combine"
	"github.com/npillmayer/phrasal/internal/tracing"
)

// Category tags the grammar attaches to constituents.
const (
	Noun       = "N"
	Adjective  = "Adj"
	Determiner = "Compl"
	Verb       = "V"
	NounPhrase = "NP"
	VerbPhrase = "VP"
	Sentence   = "S"
)

// A Grammar is the rule set composed for one lexicon. The exported rule
// fields may be invoked directly on token sequences; they produce
// un-anchored results, i.e. readings of input prefixes. Use Parse for
// whole-sentence parsing.
//
// Grammars are stateless after composition and safe for concurrent use.
type Grammar struct {
	NP, VP, S phrasal.Parser
	lexicon   *Lexicon
	whole     phrasal.Parser // S, anchored to consume all input
}

// NewGrammar composes the sentence rules for a lexicon. It fails with
// ErrLexiconIncomplete if the lexicon is missing one of the terminal
// categories.
func NewGrammar(lex *Lexicon) (*Grammar, error) {
	n, err := terminal(lex, Noun)
	if err != nil {
		return nil, err
	}
	adj, err := terminal(lex, Adjective)
	if err != nil {
		return nil, err
	}
	det, err := terminal(lex, Determiner)
	if err != nil {
		return nil, err
	}
	v, err := terminal(lex, Verb)
	if err != nil {
		return nil, err
	}
	// NP0 recognizes the noun-phrase core: a noun, possibly preceded
	// by adjectives. The recursion consumes one adjective per step.
	np0 := combine.Recursive(func(self phrasal.Parser) phrasal.Parser {
		return combine.Tag(NounPhrase, combine.Alt(n, combine.Seq(adj, self)))
	})
	g := &Grammar{lexicon: lex}
	g.NP = combine.Tag(NounPhrase, combine.Filter(combine.Seq(det, np0), validArticle))
	g.VP = combine.Tag(VerbPhrase, v)
	g.S = combine.Tag(Sentence, combine.Seq(g.NP, g.VP))
	g.whole = combine.Whole(g.S)
	return g, nil
}

// terminal builds a tagged alternation over a lexicon category, trying
// words in the category's insertion order.
func terminal(lex *Lexicon, tag string) (phrasal.Parser, error) {
	words := lex.Words(tag)
	if len(words) == 0 {
		tracing.P("category", tag).Errorf("lexicon has no words for category")
		return nil, ErrLexiconIncomplete
	}
	alts := make([]phrasal.Parser, len(words))
	for i, w := range words {
		alts[i] = combine.Word(w)
	}
	return combine.Tag(tag, combine.Choice(alts...)), nil
}

// Parse runs the whole-input anchored sentence rule on a token
// sequence. Every result is a complete reading of the input as a
// sentence; an ungrammatical input produces an empty stream.
func (g *Grammar) Parse(tokens []string) *phrasal.Results {
	return g.whole.Parse(tokens)
}

// Lexicon returns the lexicon this grammar was composed from.
func (g *Grammar) Lexicon() *Lexicon {
	return g.lexicon
}

// Composing a grammar allocates a graph of a few dozen parser nodes.
// The package-level entry points use the default lexicon over and over,
// so we keep ready-made grammars in a pool instead of re-composing one
// per call.
type grammarPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalGrammarPool *grammarPool

func init() {
	globalGrammarPool = &grammarPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return defaultGrammar(), nil
		})
	globalGrammarPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalGrammarPool.opool = pool.NewObjectPool(globalGrammarPool.ctx, factory, config)
}

func defaultGrammar() *Grammar {
	g, err := NewGrammar(DefaultLexicon())
	if err != nil {
		panic("english: default grammar does not compose: " + err.Error())
	}
	return g
}

// Parse parses tokens as a complete sentence over the default lexicon
// and returns the first reading. ok is false if the tokens do not form
// a sentence. Further readings, if any, are not evaluated.
func Parse(tokens []string) (tree *phrasal.Constituent, ok bool) {
	o, _ := globalGrammarPool.opool.BorrowObject(globalGrammarPool.ctx)
	g := o.(*Grammar)
	defer globalGrammarPool.opool.ReturnObject(globalGrammarPool.ctx, g)
	r, ok := g.Parse(tokens).First()
	return r.Tree, ok
}

// ParseAll parses tokens over the default lexicon and collects every
// complete reading. An empty slice means the input is no sentence.
func ParseAll(tokens []string) []*phrasal.Constituent {
	o, _ := globalGrammarPool.opool.BorrowObject(globalGrammarPool.ctx)
	g := o.(*Grammar)
	defer globalGrammarPool.opool.ReturnObject(globalGrammarPool.ctx, g)
	var trees []*phrasal.Constituent
	results := g.Parse(tokens)
	for results.Next() {
		trees = append(trees, results.Tree())
	}
	return trees
}
