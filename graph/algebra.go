package graph

import "github.com/jorbDehmel/regex-to-dfa/alphabet"

// Knit concatenates other onto the end of self: every dangling edge
// reachable from self.Entry is rewritten to point at other.Entry. The walk
// seeds its visited set with other.Entry so it stops at the boundary even
// if the rewrite introduces a back-edge. Idempotent if self has no dangling
// edges left.
func Knit[T comparable](self, other Fragment[T]) {
	visited := map[*Node[T]]bool{other.Entry: true}
	knitRecursive(other.Entry, self.Entry, visited)
}

func knitRecursive[T comparable](target, cur *Node[T], visited map[*Node[T]]bool) {
	for k, tgt := range cur.Next {
		if tgt.dangling {
			cur.Next[k] = To(target)
		} else if !visited[tgt.node] {
			visited[tgt.node] = true
			knitRecursive(target, tgt.node, visited)
		}
	}
}

// Suit merges other into self at the entry, recursively: a key only
// other.Entry has is copied onto self.Entry as-is, and a key both share is
// merged by recursing into (or epsilon-linking) the two targets. It is only
// ever invoked on freshly compiled
// alternation arms, before Kleene operators introduce cycles — it does not
// memoize visited (m, o) pairs, and would diverge if called on cyclic
// operands.
//
// Every key of theirs.Next is merged, not just the first: an arm like
// "x+" or "x*" can leave its entry node with many outgoing edges (one
// per token its body starts with), and a tokenizer alternating several
// such arms together needs all of them to survive the merge.
func Suit[T comparable](a alphabet.Alphabet[T], self, other Fragment[T]) {
	suitRecursive(a, self.Entry, other.Entry)
}

func suitRecursive[T comparable](a alphabet.Alphabet[T], mine, theirs *Node[T]) {
	for k, t := range theirs.Next {
		m, ok := mine.Next[k]
		if !ok {
			mine.Next[k] = t
			continue
		}

		switch {
		case m.dangling && t.dangling:
			// Already equivalent.
		case m.dangling || t.dangling:
			cur := mine
			for {
				next, ok := cur.Next[a.Epsilon()]
				if !ok || next.dangling {
					break
				}
				cur = next.node
			}
			cur.Next[a.Epsilon()] = t
		default:
			suitRecursive(a, m.node, t.node)
		}
	}
}

// Duplicate clones every node reachable from f.Entry and reproduces the
// transition structure verbatim, returning a fragment whose entry is the
// clone of f.Entry. newNode allocates a fresh owned Node (typically an
// Automaton's node factory) so the clone's nodes are tracked the same way
// freshly parsed ones are. Used by the `+` operator, which needs two
// independent copies of its operand: one left as-is and one looped.
func Duplicate[T comparable](f Fragment[T], newNode func() *Node[T]) Fragment[T] {
	oldToNew := map[*Node[T]]*Node[T]{}
	queue := []*Node[T]{f.Entry}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, done := oldToNew[cur]; done {
			continue
		}

		clone := newNode()
		clone.Type = cur.Type
		clone.Script = append([]T(nil), cur.Script...)
		oldToNew[cur] = clone

		for _, t := range cur.Next {
			if !t.dangling {
				queue = append(queue, t.node)
			}
		}
	}

	for old, clone := range oldToNew {
		for k, t := range old.Next {
			if t.dangling {
				clone.Next[k] = Dangling[T]()
			} else {
				clone.Next[k] = To(oldToNew[t.node])
			}
		}
	}

	return Fragment[T]{Entry: oldToNew[f.Entry]}
}
