// Package lexer drives a compiled tokex.Automaton over a token stream to
// perform maximal-munch tokenization: the token being built keeps growing
// until a token arrives that cannot extend it, at which point the buffer is
// emitted and that token seeds the next one. Grounded on
// liran-funaro-nex/writer/lexer.go's scanner, adapted from a goroutine-fed
// channel scanner to a single synchronous call, since an Automaton's
// current-state pointer is mutated in place by each step and a concurrent
// scanner would race on it.
package lexer

import (
	"fmt"

	"github.com/jorbDehmel/regex-to-dfa/graph"
	"github.com/jorbDehmel/regex-to-dfa/tokex"
)

// Lexer wraps a compiled Automaton so that its accept states loop back to
// the entry state on any token not already part of an accepted match. A
// literal dense transition table (the classic lexer-generator approach)
// isn't available here since T need not be densely enumerable the way a
// byte alphabet is, so this is built as edge aliasing instead: for every
// accept node that lacks an edge for a symbol k the entry node does
// handle, Lexer adds one pointing at entry's own target for k, marked as a
// restart edge so Tokenize treats crossing it as "the current token ends
// here."
type Lexer[T comparable] struct {
	automaton *tokex.Automaton[T]
	entry     *graph.Node[T]
	restart   map[*graph.Node[T]]map[T]bool
}

// New builds a Lexer from a compiled Automaton. a must already have been
// compiled successfully; New does not call Compile itself.
func New[T comparable](a *tokex.Automaton[T]) *Lexer[T] {
	l := &Lexer[T]{
		automaton: a,
		entry:     a.Entry(),
		restart:   map[*graph.Node[T]]map[T]bool{},
	}
	l.wireRestarts()
	return l
}

func (l *Lexer[T]) wireRestarts() {
	if l.entry == nil {
		return
	}
	for _, n := range l.automaton.GetAllReachableNodes() {
		if n.Type != graph.End {
			continue
		}
		for sym, target := range l.entry.Next {
			if target.IsDangling() {
				continue
			}
			if _, already := n.Next[sym]; already {
				continue
			}
			if n.Next == nil {
				n.Next = map[T]graph.Target[T]{}
			}
			n.Next[sym] = target
			if l.restart[n] == nil {
				l.restart[n] = map[T]bool{}
			}
			l.restart[n][sym] = true
		}
	}
}

// ErrLexFailure is returned from Tokenize when a token reaches a state with
// no transition for the next symbol, even after considering a restart from
// entry.
type ErrLexFailure struct {
	Position int
}

func (e *ErrLexFailure) Error() string {
	return fmt.Sprintf("lexer: no transition at input position %d", e.Position)
}

// Tokenize runs maximal-munch tokenization over the full input sequence,
// returning the emitted token buffers in order. On a lex failure the tokens
// emitted so far are returned alongside the error; callers should treat
// this Lexer's internal state as unusable afterward and construct a fresh
// one rather than retry on the same instance.
func (l *Lexer[T]) Tokenize(input []T) ([][]T, error) {
	if l.entry == nil {
		return nil, &ErrLexFailure{Position: 0}
	}

	var tokens [][]T
	var buf []T
	current := l.entry

	for i, c := range input {
		target, ok := current.Next[c]
		if !ok {
			if w, wok := current.Next[l.automaton.Alphabet().Wildcard()]; wok {
				target, ok = w, true
			}
		}
		if !ok || target.IsDangling() {
			return tokens, &ErrLexFailure{Position: i}
		}

		if l.restart[current] != nil && l.restart[current][c] {
			if len(buf) > 0 {
				tokens = append(tokens, buf)
			}
			buf = []T{c}
		} else {
			buf = append(buf, c)
		}
		current = target.Node()
	}

	if len(buf) > 0 {
		tokens = append(tokens, buf)
	}
	return tokens, nil
}
