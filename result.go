package phrasal

// A Parser is anything able to consume a prefix of a token sequence and
// produce constituents for it. Parsing is non-deterministic: a parser
// answers with a lazy stream of alternative readings, each pairing a
// constituent with the tokens left over after it. A parser that cannot
// make sense of the input answers with an empty stream; there is no
// distinguished error value anywhere in the engine.
//
// Parsers are composed, never mutated, and hold no state between calls:
// Parse may be invoked concurrently and repeatedly on the same parser.
// Note that repeated invocation on identical input repeats all work; the
// engine performs no memoization.
type Parser interface {
	Parse(tokens []string) *Results
}

// A Result pairs a parsed constituent with the tokens remaining after it.
// Rest aliases a tail of the token slice handed to Parse; it is never a
// copy.
type Result struct {
	Tree *Constituent
	Rest []string
}

// Results is a stream of alternative parse results. It works like the
// familiar scanner pattern: successive calls to Next advance the stream,
// and Tree and Rest report the current result.
//
//	results := parser.Parse(tokens)
//	for results.Next() {
//	  fmt.Println(results.Tree())
//	}
//
// Streams are lazy. No result is computed before the consumer asks for
// it, and a consumer may stop calling Next at any point, leaving the
// unexplored alternatives unevaluated. There is nothing to clean up;
// abandoned streams are simply garbage collected.
//
// A Results stream is single-use and not safe for concurrent access.
type Results struct {
	generate func() (Result, bool) // produces the next result on demand
	cur      Result
	done     bool
}

// NewResults wraps a generator function into a Results stream. The
// function is called once per Next and reports false when the stream is
// exhausted. Once it has reported false it will not be called again.
func NewResults(generate func() (Result, bool)) *Results {
	return &Results{generate: generate}
}

// NoMatch is the empty stream: a parser yields it when it cannot parse
// a prefix of its input.
func NoMatch() *Results {
	return &Results{done: true}
}

// Singleton builds a stream holding exactly one result.
func Singleton(tree *Constituent, rest []string) *Results {
	delivered := false
	return NewResults(func() (Result, bool) {
		if delivered {
			return Result{}, false
		}
		delivered = true
		return Result{Tree: tree, Rest: rest}, true
	})
}

// Next advances the stream to the next alternative. It returns false
// when no alternatives are left; afterwards it keeps returning false.
func (rs *Results) Next() bool {
	if rs.done {
		return false
	}
	r, ok := rs.generate()
	if !ok {
		rs.done = true
		rs.cur = Result{}
		rs.generate = nil
		return false
	}
	rs.cur = r
	return true
}

// Tree returns the constituent of the current result, i.e. of the most
// recent successful call to Next. It returns nil before the first call
// to Next and after exhaustion.
func (rs *Results) Tree() *Constituent {
	return rs.cur.Tree
}

// Rest returns the unconsumed tokens of the current result.
func (rs *Results) Rest() []string {
	return rs.cur.Rest
}

// First drains at most one result from the stream. The boolean is false
// if the stream was already empty. Alternatives beyond the first are not
// evaluated.
func (rs *Results) First() (Result, bool) {
	if rs.Next() {
		return rs.cur, true
	}
	return Result{}, false
}

// All drains the stream and collects every remaining result. Use with
// care: on ambiguous grammars the number of alternatives may grow
// exponentially with input length.
func (rs *Results) All() []Result {
	var all []Result
	for rs.Next() {
		all = append(all, rs.cur)
	}
	return all
}
