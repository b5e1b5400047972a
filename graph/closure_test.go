package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
)

func TestRemoveEpsilonsPromotesAcceptThroughChain(t *testing.T) {
	a := alphabet.Char{}

	start := NewNode[rune](0)
	mid := NewNode[rune](1)
	end := NewNode[rune](2)
	end.Type = End

	start.Next['a'] = To(mid)
	mid.Next[a.Epsilon()] = To(end)

	RemoveEpsilons[rune](a, start)

	_, ok := mid.Next[a.Epsilon()]
	require.False(t, ok, "epsilon edge must be removed after closure")
	require.Equal(t, End, mid.Type, "epsilon closure must promote the accept type onto mid")
}

func TestRemoveEpsilonsMergesBranchingTargets(t *testing.T) {
	a := alphabet.Char{}

	start := NewNode[rune](0)
	viaEps := NewNode[rune](1)
	shared := NewNode[rune](2)
	direct := NewNode[rune](3)

	start.Next['a'] = To(direct)
	start.Next[a.Epsilon()] = To(viaEps)
	viaEps.Next['b'] = To(shared)

	RemoveEpsilons[rune](a, start)

	_, ok := start.Next[a.Epsilon()]
	require.False(t, ok, "start's epsilon edge must be closed")

	tgt, ok := start.Next['b']
	require.True(t, ok, "closure must pull viaEps's 'b' edge up onto start")
	require.Equal(t, shared, tgt.Node(), "merged 'b' edge must still point at the original target")

	_, ok = start.Next['a']
	require.True(t, ok, "closure must not disturb start's pre-existing 'a' edge")
}
