package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDotEmitsAcceptShapeAndEdges(t *testing.T) {
	a := NewNode[rune](0)
	b := NewNode[rune](1)
	b.Type = End
	a.Next['x'] = To(b)
	a.Next['y'] = Dangling[rune]()

	var buf strings.Builder
	require.NoError(t, WriteDot[rune](&buf, a, "my pattern", nil))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "digraph tokex {"), "expected a fixed digraph identifier")
	require.Contains(t, out, `label="my pattern"`, "expected the title to appear as a quoted label attribute")
	require.Contains(t, out, "1 [shape=doublecircle]", "expected the accept node to be marked as a doublecircle")
	require.Contains(t, out, `0 -> 1 [label="120"]`, "expected the resolved edge to be emitted with its default stringified label")
	require.NotContains(t, out, `label="121"`, "dangling edges must not be emitted")
}

func TestWriteDotUsesCustomStringify(t *testing.T) {
	a := NewNode[rune](0)
	b := NewNode[rune](1)
	a.Next['x'] = To(b)

	var buf strings.Builder
	err := WriteDot[rune](&buf, a, "t", func(r rune) string { return "tok:" + string(r) })
	require.NoError(t, err)
	require.Contains(t, buf.String(), `label="tok:x"`, "expected the custom stringify function to render the edge label")
}
