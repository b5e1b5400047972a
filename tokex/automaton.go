// Package tokex is the top-level compiler and execution engine: it owns
// the compiled automaton's nodes, drives the pattern parser/assembler, and
// exposes the deterministic runner. Grounded on original_source/tokex.hpp's
// Tokex<T> class.
package tokex

import (
	"github.com/jorbDehmel/regex-to-dfa/alphabet"
	"github.com/jorbDehmel/regex-to-dfa/graph"
)

// Automaton is the compiled product: an entry node, an owned set of all
// nodes (for destruction and purge), a current-state pointer for
// execution, and reserved memory/variables storage for a capture
// extension this core does not implement.
type Automaton[T comparable] struct {
	alphabet alphabet.Alphabet[T]

	entry  *graph.Node[T]
	nodes  map[int]*graph.Node[T]
	nextID int

	current *graph.Node[T]

	memory    []T
	variables map[T][]T
}

// New creates an uncompiled Automaton over the given alphabet. Call
// Compile before Run/Match; an uncompiled Automaton's GetState reports
// graph.Error.
func New[T comparable](a alphabet.Alphabet[T]) *Automaton[T] {
	return &Automaton[T]{
		alphabet:  a,
		nodes:     map[int]*graph.Node[T]{},
		variables: map[T][]T{},
	}
}

func (a *Automaton[T]) newNode() *graph.Node[T] {
	n := graph.NewNode[T](a.nextID)
	a.nextID++
	a.nodes[n.ID()] = n
	return n
}

// Compile parses pattern into a structured epsilon-NFA, knits it onto a
// freshly created accept node, removes epsilon transitions by closure, and
// purges unreachable nodes. On a syntax error the partially built
// automaton is discarded and Compile returns a non-nil error; the
// Automaton is left uncompiled, with any graph from an earlier successful
// Compile dropped as well.
func (a *Automaton[T]) Compile(pattern []T) error {
	if len(pattern) == 0 {
		// An empty pattern accepts only the empty sequence, by making
		// entry itself the accept node directly rather than routing
		// through the recursive assembler below (which has no fragment
		// to build from an empty range at the top level).
		n := a.newNode()
		n.Type = graph.End
		a.entry = n
		a.Reset()
		return nil
	}

	c := &compiler[T]{alphabet: a.alphabet, automaton: a}
	frag, err := c.compileRange(pattern, 0, len(pattern))
	if err != nil {
		a.discard()
		return err
	}

	end := a.newNode()
	end.Type = graph.End
	graph.Knit(frag, graph.Fragment[T]{Entry: end})

	a.entry = frag.Entry
	graph.RemoveEpsilons[T](a.alphabet, a.entry)
	a.Purge()
	a.Reset()
	return nil
}

func (a *Automaton[T]) discard() {
	a.nodes = map[int]*graph.Node[T]{}
	a.nextID = 0
	a.entry = nil
	a.current = nil
}

// Reset sets current back to entry and clears transient memory, without
// touching the compiled graph.
func (a *Automaton[T]) Reset() {
	a.memory = a.memory[:0]
	a.variables = map[T][]T{}
	a.current = a.entry
}

// GetState returns the current state's classification. A nil current (the
// sink state) reports graph.Error.
func (a *Automaton[T]) GetState() graph.NodeType {
	if a.current == nil {
		return graph.Error
	}
	return a.current.Type
}

// Purge drops every node not reachable from entry.
func (a *Automaton[T]) Purge() {
	if a.entry == nil {
		a.nodes = map[int]*graph.Node[T]{}
		return
	}
	kept := map[int]*graph.Node[T]{}
	for _, n := range graph.Reachable(a.entry) {
		kept[n.ID()] = n
	}
	a.nodes = kept
}

// HasEpsilons reports whether any reachable node still has an epsilon
// transition. True only ever holds before closure, or for diagnostic
// traversal of an epsilon-NFA.
func (a *Automaton[T]) HasEpsilons() bool {
	eps := a.alphabet.Epsilon()
	for _, n := range a.GetAllReachableNodes() {
		if t, ok := n.Next[eps]; ok && !t.IsDangling() {
			return true
		}
	}
	return false
}

// GetAllReachableNodes returns every node reachable from entry.
func (a *Automaton[T]) GetAllReachableNodes() []*graph.Node[T] {
	return graph.Reachable(a.entry)
}

// Entry exposes the compiled entry node, mainly for the lexer adapter,
// which restarts tokenization from it.
func (a *Automaton[T]) Entry() *graph.Node[T] { return a.entry }

// Alphabet returns the alphabet this Automaton was built with.
func (a *Automaton[T]) Alphabet() alphabet.Alphabet[T] { return a.alphabet }
