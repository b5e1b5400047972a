package tokex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorbDehmel/regex-to-dfa/graph"
)

func TestParallelMatchRunsEachSequenceIndependently(t *testing.T) {
	a := compileChar(t, "a*b+c?d")

	results, err := a.ParallelMatch(context.Background(), [][]rune{
		[]rune("bd"),
		[]rune("aaabbbcd"),
		[]rune("d"),
		[]rune("ad"),
	})
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, false}, results)
}

func TestParallelMatchDoesNotMutateSharedAutomatonState(t *testing.T) {
	a := compileChar(t, "ab")
	a.Reset()
	require.Equal(t, graph.Normal, a.Run([]rune("a"), false))

	_, err := a.ParallelMatch(context.Background(), [][]rune{
		[]rune("ab"),
		[]rune("ba"),
	})
	require.NoError(t, err)

	require.Equal(t, graph.End, a.Run([]rune("b"), false),
		"ParallelMatch must run on cloned state, leaving a mid-match after resuming with the rest of its own input")
}
