package tokex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
	"github.com/jorbDehmel/regex-to-dfa/graph"
)

func compileChar(t *testing.T, pattern string) *Automaton[rune] {
	t.Helper()
	a := New[rune](alphabet.Char{})
	require.NoError(t, a.Compile([]rune(pattern)), "compile %q", pattern)
	return a
}

func TestEmptyPatternMatchesOnlyEmptySequence(t *testing.T) {
	a := compileChar(t, "")
	require.True(t, a.Match(nil))
	require.False(t, a.Match([]rune("x")))
}

func TestStarOptionalPlusSequence(t *testing.T) {
	a := compileChar(t, "a*b+c?d")

	require.True(t, a.Match([]rune("bd")))
	require.True(t, a.Match([]rune("aaabbbcd")))
	require.True(t, a.Match([]rune("bbd")))
	require.False(t, a.Match([]rune("d")))
	require.False(t, a.Match([]rune("ad")))
}

func TestDigitAlternationPlus(t *testing.T) {
	a := compileChar(t, "(0|1|2|3|4|5|6|7|8|9)+")

	require.True(t, a.Match([]rune("0")))
	require.True(t, a.Match([]rune("1029384756")))
	require.False(t, a.Match([]rune("")))
	require.False(t, a.Match([]rune("12a")))
}

func TestEmailLikePattern(t *testing.T) {
	letter := "(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z)"
	pattern := letter + "+@" + letter + "+\\." + letter + "+"
	a := compileChar(t, pattern)

	require.True(t, a.Match([]rune("jd@example.com")))
	require.False(t, a.Match([]rune("jd@example")))
	require.False(t, a.Match([]rune("@example.com")))
}

func TestNestedPlusRepetition(t *testing.T) {
	a := compileChar(t, "(0+1)+")

	require.True(t, a.Match([]rune("01001000101001")))
	require.False(t, a.Match([]rune("0100110011")))
}

func TestWildcard(t *testing.T) {
	a := compileChar(t, "a.c")

	require.True(t, a.Match([]rune("abc")))
	require.True(t, a.Match([]rune("azc")))
	require.False(t, a.Match([]rune("ac")))
	require.False(t, a.Match([]rune("abbc")))
}

func TestEscapedLiteral(t *testing.T) {
	a := compileChar(t, `a\*b`)

	require.True(t, a.Match([]rune("a*b")))
	require.False(t, a.Match([]rune("aab")))
}

func TestSyntaxErrors(t *testing.T) {
	cases := map[string]error{
		"(a":   ErrUnmatchedOpen,
		"a)":   ErrUnmatchedClose,
		`a\`:   ErrTrailingEscape,
		"*a":   ErrBareOperator,
		"(*a)": ErrBareOperator,
	}
	for pattern, wantErr := range cases {
		a := New[rune](alphabet.Char{})
		err := a.Compile([]rune(pattern))
		require.ErrorIs(t, err, wantErr, "pattern %q", pattern)
	}
}

func TestRunReportsPartialMatch(t *testing.T) {
	a := compileChar(t, "ab")

	a.Reset()
	require.Equal(t, graph.Normal, a.Run([]rune("a"), false))
	require.True(t, a.Match([]rune("ab")))
}

func TestPurgeKeepsReachableNodes(t *testing.T) {
	a := compileChar(t, "a|b")
	before := len(a.GetAllReachableNodes())
	a.Purge()
	after := len(a.GetAllReachableNodes())
	require.Equal(t, before, after, "purge on an already-compiled automaton must be a no-op on reachable count")
}

func TestHasEpsilonsFalseAfterCompile(t *testing.T) {
	a := compileChar(t, "a*b+c?(d|e)")
	require.False(t, a.HasEpsilons())
}
