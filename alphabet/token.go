package alphabet

import "strings"

// TokenEpsilon is the sentinel epsilon value for the token-level alphabet.
// It is a value no lexer emits (the empty string), never a legal pattern
// or input token.
const TokenEpsilon = ""

// TokenSyntax is the token-level alphabet adapter: patterns and inputs are
// sequences of opaque string tokens, and `$(` `$)` `$|` `$.` `$?` `$*` `$+`
// serve the roles `( ) | . ? * +` play in Char. Grounded on
// original_source/expression.hpp's `sapling2` notation comment.
//
// `$~` (memory clear) and `$>name` (variable pipe) are reserved by that
// same notation for a capture/memory extension this core doesn't
// implement. TokenSyntax still recognizes them via IsMemClear/IsMemPipe so
// a caller can detect and reject (or special-case) them before compiling,
// but neither is part of the Alphabet contract the compiler consults — an
// uninterpreted `$~` or `$>x` token simply compiles as a literal.
type TokenSyntax struct{}

const tokenEscape = `$\`

func (TokenSyntax) IsSubexprOpen(t string) bool  { return t == "$(" }
func (TokenSyntax) IsSubexprClose(t string) bool { return t == "$)" }
func (TokenSyntax) IsAlternation(t string) bool  { return t == "$|" }
func (TokenSyntax) IsWildcard(t string) bool     { return t == "$." }
func (TokenSyntax) IsOptional(t string) bool     { return t == "$?" }
func (TokenSyntax) IsStar(t string) bool         { return t == "$*" }
func (TokenSyntax) IsPlus(t string) bool         { return t == "$+" }
func (TokenSyntax) IsEscape(t string) bool       { return t == tokenEscape }
func (TokenSyntax) IsEpsilon(t string) bool      { return t == TokenEpsilon }

func (TokenSyntax) Wildcard() string { return "$." }
func (TokenSyntax) Epsilon() string  { return TokenEpsilon }

// IsMemClear reports whether t is the reserved `$~` memory-clear token.
func (TokenSyntax) IsMemClear(t string) bool { return t == "$~" }

// IsMemPipe reports whether t is a reserved `$>name` variable-pipe token.
func (TokenSyntax) IsMemPipe(t string) bool { return strings.HasPrefix(t, "$>") }
