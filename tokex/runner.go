package tokex

import "github.com/jorbDehmel/regex-to-dfa/graph"

// step advances current by one input token: exact match first, then the
// wildcard fallback, then (only if allowEpsilons) an epsilon fallback;
// failing all three, current becomes the sink (nil). A literal edge always
// shadows a wildcard edge leaving the same state, so a pattern that spells
// out a specific token alongside "." never loses that token to the
// wildcard's generality.
func (a *Automaton[T]) step(input T, allowEpsilons bool) {
	if a.current == nil {
		return
	}

	al := a.alphabet
	if t, ok := a.current.Next[input]; ok && !t.IsDangling() {
		a.current = t.Node()
		return
	}
	if t, ok := a.current.Next[al.Wildcard()]; ok && !t.IsDangling() {
		a.current = t.Node()
		return
	}
	if allowEpsilons {
		if t, ok := a.current.Next[al.Epsilon()]; ok && !t.IsDangling() {
			a.current = t.Node()
			return
		}
	}
	a.current = nil
}

// Run steps through sequence and returns the final state classification.
// allowEpsilons exists only for diagnostic traversal of an epsilon-NFA
// prior to closure; in normal post-compilation use it is false (spec
// §4.6). Run does not call Reset — callers that want RegEx-style "start
// from entry" semantics should call Match instead.
func (a *Automaton[T]) Run(sequence []T, allowEpsilons bool) graph.NodeType {
	for _, tok := range sequence {
		a.step(tok, allowEpsilons)
	}
	return a.GetState()
}

// Match resets to entry, runs sequence with epsilon fallback disabled, and
// reports whether the final state is an accept state.
func (a *Automaton[T]) Match(sequence []T) bool {
	a.Reset()
	return a.Run(sequence, false) == graph.End
}
