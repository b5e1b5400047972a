package graph

import "github.com/jorbDehmel/regex-to-dfa/alphabet"

// RemoveEpsilons closes every epsilon transition reachable from entry,
// promoting terminal-type labels upward along epsilon chains. After it
// returns, no reachable Node's transition map contains an epsilon key —
// this assumes every dangling edge reachable from entry has already been
// resolved (Automaton.Compile knits the whole pattern onto its accept node
// before calling this).
func RemoveEpsilons[T comparable](a alphabet.Alphabet[T], entry *Node[T]) {
	for _, n := range Reachable(entry) {
		closeNode(a, n)
	}
}

// closeNode is close_node from expression.hpp, ported onto Target-based
// edges. It removes the epsilon chain reachable from cur, gives cur any
// non-Normal type found along that chain, merges each closure member's
// non-epsilon edges into cur, and recurses where a merge itself produces a
// fresh epsilon chain to close.
func closeNode[T comparable](a alphabet.Alphabet[T], cur *Node[T]) {
	eps := a.Epsilon()
	if t, ok := cur.Next[eps]; !ok || t.dangling {
		return
	}

	closure := map[*Node[T]]bool{}
	queue := []*Node[T]{cur}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		t, ok := c.Next[eps]
		if !ok || t.dangling || closure[t.node] {
			continue
		}

		closure[t.node] = true
		queue = append(queue, t.node)

		if t.node.Type != Normal {
			c.Type = t.node.Type
			cur.Type = t.node.Type
		}

		delete(c.Next, eps)
	}

	for node := range closure {
		for k, edge := range node.Next {
			existing, ok := cur.Next[k]
			if !ok {
				cur.Next[k] = edge
				continue
			}

			if existing.node == cur && edge.node == node {
				// Self-loop: already represented, and merging it again
				// would recurse forever.
				continue
			}

			cursor := existing.node
			for {
				next, ok := cursor.Next[eps]
				if !ok {
					break
				}
				cursor = next.node
			}
			cursor.Next[eps] = edge

			closeNode(a, existing.node)
		}
	}
}
