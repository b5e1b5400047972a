package tokex

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// clone produces an independent runner over the same compiled graph: the
// node set is shared (read-only after Compile) but current/memory/variables
// are private, so it is safe to drive concurrently with the Automaton it was
// cloned from.
func (a *Automaton[T]) clone() *Automaton[T] {
	c := &Automaton[T]{
		alphabet: a.alphabet,
		entry:    a.entry,
		nodes:    a.nodes,
		nextID:   a.nextID,
	}
	c.Reset()
	return c
}

// ParallelMatch runs Match(sequences[i]) concurrently for every sequence,
// one clone of a per goroutine, and returns the results in the same order.
// It returns an error only if ctx is canceled; a compiled Automaton's Match
// itself never fails. Grounded on ollama-ollama's use of
// golang.org/x/sync/errgroup to fan out independent per-item work and
// collect results positionally.
func (a *Automaton[T]) ParallelMatch(ctx context.Context, sequences [][]T) ([]bool, error) {
	results := make([]bool, len(sequences))

	g, ctx := errgroup.WithContext(ctx)
	for i, seq := range sequences {
		i, seq := i, seq
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.clone().Match(seq)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
