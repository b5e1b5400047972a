package tokex

import "errors"

// Pattern syntax errors, reported from Automaton.Compile. Grounded on
// liran-funaro-nex/nex.go's package-level Err* variables.
var (
	ErrUnmatchedOpen  = errors.New("tokex: unmatched subexpression open")
	ErrUnmatchedClose = errors.New("tokex: unmatched subexpression close")
	ErrTrailingEscape = errors.New("tokex: escape at end of pattern")
	ErrBareOperator   = errors.New("tokex: postfix operator applies to nothing")
)
