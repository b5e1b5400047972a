package graph

import (
	"fmt"
	"io"
)

// WriteDot writes a GraphViz representation of the graph reachable from
// entry, for diagnostics only — nothing in this package reads it back.
// Grounded on liran-funaro-nex/graph/graph.go's WriteDotGraph. stringify
// renders a token for the edge label; pass nil to fall back to
// fmt.Sprintf("%v").
func WriteDot[T comparable](out io.Writer, entry *Node[T], title string, stringify func(T) string) error {
	if stringify == nil {
		stringify = func(t T) string { return fmt.Sprintf("%v", t) }
	}

	if _, err := fmt.Fprintf(out, "digraph tokex {\n  label=%q;\n  rankdir=LR;\n  node [shape=circle];\n", title); err != nil {
		return err
	}

	for _, n := range Reachable(entry) {
		if n.Type == End {
			if _, err := fmt.Fprintf(out, "  %d [shape=doublecircle];\n", n.ID()); err != nil {
				return err
			}
		}
		for k, t := range n.Next {
			if t.dangling {
				continue
			}
			if _, err := fmt.Fprintf(out, "  %d -> %d [label=%q];\n", n.ID(), t.node.ID(), stringify(k)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(out, "}")
	return err
}
