/*
Package phrasal provides combinator-based parsing of flat token sequences
into labeled constituent trees.

Description

Phrase-structure grammars describe sentences as nested constituents:
a sentence contains a noun phrase and a verb phrase, a noun phrase may
contain a determiner, adjectives and a noun, and so on. This package
implements the machinery to recognize such structures over a sequence of
word tokens and to build a tree of Constituents for every way the input
can be read.

The engine is deliberately small and correctness-first: parsing is an
exhaustive backtracking search, realized by composing a handful of
primitive parsers (see sub-package combine). Every parser consumes a
prefix of the input and produces a lazy stream of alternative readings,
each paired with the tokens it left unconsumed. Ambiguity is not an
error; an ambiguous grammar simply produces more than one result.

Tokenization is out of scope. Input is an ordinary []string of
pre-split word tokens; the package performs no character-level lexing,
no whitespace handling and no morphological analysis.

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

The base package holds the data model and the parser capability:
Constituent, an immutable labeled tree node, and Results, a pull-based
lazy stream of (tree, remaining tokens) pairs. Sub-package combine
implements the primitive combinators (literal word, sequence,
alternation, tagging, filtering, recursion, whole-input anchoring and
greedy repetition). Sub-package english wires the combinators into a
small illustrative grammar of English sentences.

Typical Usage

Clients compose a grammar from the combinators and invoke it on a token
sequence:

  np := combine.Tag("NP", combine.Seq(det, noun))
  results := np.Parse([]string{"the", "fox"})
  for results.Next() {
    fmt.Println(results.Tree())
  }

Taking only the first result is cheap: alternatives are not explored
until the consumer asks for them.
*/
package phrasal
