package tokex

import (
	"fmt"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
	"github.com/jorbDehmel/regex-to-dfa/graph"
)

// compiler holds the state a single Compile call threads through its
// recursive descent: the alphabet it parses against and the Automaton
// whose node factory it uses to allocate fragments. Grounded on
// original_source/tokex.hpp's recursive two-argument `compile(pattern,
// begin, end)`.
type compiler[T comparable] struct {
	alphabet  alphabet.Alphabet[T]
	automaton *Automaton[T]
}

// compileRange is a linear scan over p[begin..end), producing a single
// knitted-together Fragment. The cases are checked in priority order:
// escape, subexpression, wildcard, optional, star, plus, literal.
func (c *compiler[T]) compileRange(pattern []T, begin, end int) (graph.Fragment[T], error) {
	a := c.alphabet

	if begin == end {
		// An empty alternation arm (e.g. the middle branch of "(a||b)")
		// is a valid empty-match branch, represented as a single dangling
		// epsilon edge so it can still be knitted/suited into whatever
		// encloses it. This differs from the whole-pattern-empty case,
		// which Automaton.Compile special-cases before ever reaching here.
		n := c.automaton.newNode()
		n.Next[a.Epsilon()] = graph.Dangling[T]()
		return graph.Fragment[T]{Entry: n}, nil
	}

	var fragments []graph.Fragment[T]

	for i := begin; i < end; i++ {
		tok := pattern[i]

		switch {
		case a.IsEscape(tok):
			i++
			if i >= end {
				return graph.Fragment[T]{}, fmt.Errorf("tokex: escape at pattern position %d: %w", i-1, ErrTrailingEscape)
			}
			n := c.automaton.newNode()
			n.Next[pattern[i]] = graph.Dangling[T]()
			fragments = append(fragments, graph.Fragment[T]{Entry: n})

		case a.IsSubexprOpen(tok):
			frag, newI, err := c.compileSubexpr(a, pattern, i, end)
			if err != nil {
				return graph.Fragment[T]{}, err
			}
			i = newI
			fragments = append(fragments, frag)

		case a.IsSubexprClose(tok):
			return graph.Fragment[T]{}, fmt.Errorf("tokex: close at pattern position %d: %w", i, ErrUnmatchedClose)

		case a.IsWildcard(tok):
			n := c.automaton.newNode()
			n.Next[a.Wildcard()] = graph.Dangling[T]()
			fragments = append(fragments, graph.Fragment[T]{Entry: n})

		case a.IsOptional(tok):
			if len(fragments) == 0 {
				return graph.Fragment[T]{}, fmt.Errorf("tokex: '?' at pattern position %d: %w", i, ErrBareOperator)
			}
			fragments[len(fragments)-1].Entry.Next[a.Epsilon()] = graph.Dangling[T]()

		case a.IsStar(tok):
			if len(fragments) == 0 {
				return graph.Fragment[T]{}, fmt.Errorf("tokex: '*' at pattern position %d: %w", i, ErrBareOperator)
			}
			last := fragments[len(fragments)-1]
			graph.Knit(last, last)
			last.Entry.Next[a.Epsilon()] = graph.Dangling[T]()

		case a.IsPlus(tok):
			if len(fragments) == 0 {
				return graph.Fragment[T]{}, fmt.Errorf("tokex: '+' at pattern position %d: %w", i, ErrBareOperator)
			}
			// X+ is built as X followed by X*, not as a single self-looped
			// copy of X: if the epsilon exit sat directly on X's own
			// entry, a bare "(...)+" used as the whole pattern would have
			// its entry double as the pre-match state and the
			// already-matched state, and epsilon closure would promote
			// the entry itself to an accept node — wrongly matching the
			// empty sequence. Duplicating into a second, self-looped copy
			// keeps the "at least one" requirement structural rather than
			// incidental to what else happens to precede this fragment.
			mandatory := fragments[len(fragments)-1]
			star := graph.Duplicate(mandatory, c.automaton.newNode)
			graph.Knit(star, star)
			star.Entry.Next[a.Epsilon()] = graph.Dangling[T]()
			graph.Knit(mandatory, star)

		default:
			n := c.automaton.newNode()
			n.Next[tok] = graph.Dangling[T]()
			fragments = append(fragments, graph.Fragment[T]{Entry: n})
		}
	}

	if len(fragments) == 0 {
		// Guard only: every case above either appends a fragment or
		// returns an error (a leading postfix operator such as the "?" in
		// "?*" already fails in its own case), so a non-empty range always
		// has at least one fragment here.
		return graph.Fragment[T]{}, fmt.Errorf("tokex: range [%d,%d) produced no fragment: %w", begin, end, ErrBareOperator)
	}

	result := fragments[0]
	for _, f := range fragments[1:] {
		graph.Knit(result, f)
	}
	return result, nil
}

// compileSubexpr scans the subexpression opened at pattern[open], tracking
// nesting depth and recording alternation split points at depth 1, then
// recursively compiles and Suits each split segment together. It returns
// the merged fragment and the index of the subexpression's matching close
// token (the outer loop's own increment then advances past it).
func (c *compiler[T]) compileSubexpr(a alphabet.Alphabet[T], pattern []T, open, end int) (graph.Fragment[T], int, error) {
	depth := 1
	delims := []int{open}
	i := open + 1

	for {
		if i >= end {
			return graph.Fragment[T]{}, 0, fmt.Errorf("tokex: subexpression opened at position %d: %w", open, ErrUnmatchedOpen)
		}
		switch {
		case a.IsSubexprOpen(pattern[i]):
			depth++
		case a.IsAlternation(pattern[i]):
			if depth == 1 {
				delims = append(delims, i)
			}
		case a.IsSubexprClose(pattern[i]):
			depth--
			if depth == 0 {
				delims = append(delims, i)
				goto closed
			}
			if depth < 0 {
				return graph.Fragment[T]{}, 0, fmt.Errorf("tokex: close at position %d: %w", i, ErrUnmatchedClose)
			}
		}
		i++
	}

closed:
	var merged graph.Fragment[T]
	for j := 0; j+1 < len(delims); j++ {
		sub, err := c.compileRange(pattern, delims[j]+1, delims[j+1])
		if err != nil {
			return graph.Fragment[T]{}, 0, err
		}
		if j == 0 {
			merged = sub
		} else {
			graph.Suit(a, merged, sub)
		}
	}
	return merged, i, nil
}
