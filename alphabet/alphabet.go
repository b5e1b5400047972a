// Package alphabet defines the capability contract a caller must supply in
// order to compile and run a tokex pattern over some token type T.
package alphabet

// Alphabet is the set of classifying predicates and distinguished token
// values tokex needs in order to parse a pattern and execute an automaton
// over tokens of type T. T must be comparable so it can key a Node's
// transition map.
//
// Wildcard() and Epsilon() must not collide with any literal token that
// will appear in a pattern's input; IsEpsilon(Epsilon()) and
// IsWildcard(Wildcard()) must both hold. Violating either is caller misuse,
// and is undefined behavior rather than a reported error.
type Alphabet[T comparable] interface {
	IsSubexprOpen(t T) bool
	IsSubexprClose(t T) bool
	IsAlternation(t T) bool
	IsWildcard(t T) bool
	IsOptional(t T) bool
	IsStar(t T) bool
	IsPlus(t T) bool
	IsEscape(t T) bool
	IsEpsilon(t T) bool

	Wildcard() T
	Epsilon() T
}
