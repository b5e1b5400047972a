package tokex

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
)

// Cache memoizes compiled Automatons by a content hash of their pattern,
// so a caller compiling the same pattern repeatedly pays the compilation
// cost once. This plays the role Go's own
// regexp package gives its internal program cache, but content-addressed
// rather than string-keyed, so it works over any comparable token type T
// stringify can render. Grounded on the pack's only two hashing call
// sites (ollama-ollama/auth/auth.go, SnellerInc-sneller's
// elasticproxy/proxy_http/cryptbytes.go), both of which reach for a
// golang.org/x/crypto subpackage rather than stdlib crypto/sha256 for
// exactly this kind of content-addressed key.
type Cache[T comparable] struct {
	alphabet  alphabet.Alphabet[T]
	stringify func(T) string

	mu    sync.Mutex
	byKey map[[32]byte]*Automaton[T]
}

// NewCache creates a Cache that compiles with the given alphabet. stringify
// renders a single token for hashing; it need not be injective across the
// whole token space, only stable and collision-free in practice for the
// patterns actually compiled (a blake2b collision on top of a stringify
// collision is the realistic failure mode, and both are astronomically
// unlikely for the token alphabets this package ships).
func NewCache[T comparable](a alphabet.Alphabet[T], stringify func(T) string) *Cache[T] {
	return &Cache[T]{
		alphabet:  a,
		stringify: stringify,
		byKey:     map[[32]byte]*Automaton[T]{},
	}
}

func (c *Cache[T]) key(pattern []T) [32]byte {
	var buf []byte
	for _, t := range pattern {
		buf = append(buf, c.stringify(t)...)
		buf = append(buf, 0) // token separator; avoids "ab","c" == "a","bc" collisions
	}
	return blake2b.Sum256(buf)
}

// Compile returns a cached Automaton for pattern if one exists, compiling
// and storing a fresh one otherwise. The returned Automaton is shared
// across callers, and Run/Match mutate an Automaton's current-state
// pointer in place, so concurrent callers matching against the same cached
// pattern should use ParallelMatch rather than call Match on the shared
// Automaton themselves from multiple goroutines.
func (c *Cache[T]) Compile(pattern []T) (*Automaton[T], error) {
	key := c.key(pattern)

	c.mu.Lock()
	if a, ok := c.byKey[key]; ok {
		c.mu.Unlock()
		return a, nil
	}
	c.mu.Unlock()

	a := New[T](c.alphabet)
	if err := a.Compile(pattern); err != nil {
		return nil, fmt.Errorf("tokex: cache compile: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.byKey[key]; ok {
		// Lost a race against another Compile for the same pattern; keep
		// whichever was stored first so all callers share one Automaton.
		return existing, nil
	}
	c.byKey[key] = a
	return a, nil
}
