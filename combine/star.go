package combine

import (
	"github.com/npillmayer/phrasal"
	"github.com/npillmayer/phrasal/internal/tracing"
)

// Star returns a parser applying p zero or more times and collecting
// the matches as children of a single unlabeled constituent.
//
// Star deliberately breaks ranks with the other combinators: repetition
// is greedy and deterministic, not ambiguity-preserving. At each
// position only the first result of p is taken and any further
// alternatives at that position are discarded; the loop stops as soon
// as p fails to match or the input is exhausted. The outcome is exactly
// one result, whose constituent holds the accumulated children
// (possibly none) and whose remainder is whatever p could not consume.
// A backtracking repetition would have to enumerate every split of the
// input, which the longest-prefix policy trades away for predictability.
//
// The repetition loop is the one eager component of the engine: once
// the consumer asks for the result, each step is fully resolved before
// the next one starts, and no partial repetition state is ever handed
// back. As with Recursive, p must consume input on every match, or the
// loop never terminates.
func Star(p phrasal.Parser) phrasal.Parser {
	return starParser{p}
}

type starParser struct {
	p phrasal.Parser
}

func (p starParser) Parse(tokens []string) *phrasal.Results {
	delivered := false
	return phrasal.NewResults(func() (phrasal.Result, bool) {
		if delivered {
			return phrasal.Result{}, false
		}
		delivered = true
		var children []*phrasal.Constituent
		var words []string
		rest := tokens
		for len(rest) > 0 {
			step, ok := p.p.Parse(rest).First()
			if !ok {
				break
			}
			children = append(children, step.Tree)
			words = append(words, step.Tree.Words...)
			rest = step.Rest
		}
		tracing.P("matches", len(children)).Debugf("repetition stopped with %d tokens left", len(rest))
		return phrasal.Result{
			Tree: &phrasal.Constituent{Children: children, Words: words},
			Rest: rest,
		}, true
	})
}
