package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
)

func chain(toks ...rune) (Fragment[rune], []*Node[rune]) {
	var nodes []*Node[rune]
	id := 0
	newNode := func() *Node[rune] {
		n := NewNode[rune](id)
		id++
		nodes = append(nodes, n)
		return n
	}

	var first *Node[rune]
	var prev *Node[rune]
	for _, tok := range toks {
		n := newNode()
		n.Next[tok] = Dangling[rune]()
		if first == nil {
			first = n
		}
		if prev != nil {
			Knit(Fragment[rune]{Entry: prev}, Fragment[rune]{Entry: n})
		}
		prev = n
	}
	return Fragment[rune]{Entry: first}, nodes
}

func TestKnitChainsFragments(t *testing.T) {
	frag, nodes := chain('a', 'b')
	require.Len(t, nodes, 2)

	tgt, ok := frag.Entry.Next['a']
	require.True(t, ok)
	require.False(t, tgt.IsDangling(), "expected 'a' edge to be resolved to the 'b' node")
	require.Equal(t, nodes[1], tgt.Node(), "knit rewired 'a' edge to the wrong node")

	final, ok := tgt.Node().Next['b']
	require.True(t, ok)
	require.True(t, final.IsDangling(), "expected 'b' node to still carry its own dangling edge")
}

func TestSuitMergesAlternatives(t *testing.T) {
	a := alphabet.Char{}

	left := NewNode[rune](0)
	left.Next['x'] = Dangling[rune]()

	right := NewNode[rune](1)
	right.Next['y'] = Dangling[rune]()

	Suit(a, Fragment[rune]{Entry: left}, Fragment[rune]{Entry: right})

	_, ok := left.Next['x']
	require.True(t, ok, "suit must not drop the original branch")

	y, ok := left.Next['y']
	require.True(t, ok, "suit must copy the other fragment's 'y' edge onto the merged entry")
	require.True(t, y.IsDangling(), "the copied 'y' edge must keep its dangling target")
}

func TestDuplicateClonesStructure(t *testing.T) {
	frag, _ := chain('a', 'b')

	id := 100
	newNode := func() *Node[rune] {
		n := NewNode[rune](id)
		id++
		return n
	}

	dup := Duplicate(frag, newNode)
	require.NotEqual(t, frag.Entry, dup.Entry, "duplicate must allocate new nodes, not reuse originals")

	tgt, ok := dup.Entry.Next['a']
	require.True(t, ok)
	require.False(t, tgt.IsDangling(), "duplicate must preserve the 'a' edge")
	require.NotEqual(t, frag.Entry.Next['a'].Node(), tgt.Node(), "duplicate's downstream node must also be a fresh clone")
}
