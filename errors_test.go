package glypho

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()
	for _, k := range []ErrorKind{CodeLengthInvalid, OpeningBraceExpected, ClosingBraceExpected} {
		require.True(t, k.IsSyntax(), "%v", k)
		require.False(t, k.IsRuntime(), "%v", k)
	}
	for _, k := range []ErrorKind{EmptyStack, InsufficientStackSize, InputNotValidInteger, DivisionByZero, InvalidExecute} {
		require.False(t, k.IsSyntax(), "%v", k)
		require.True(t, k.IsRuntime(), "%v", k)
	}
	require.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("running: %w", NewRuntimeError(EmptyStack, 3, nil))
	k, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, EmptyStack, k)
	require.True(t, IsKind(err, EmptyStack))
	require.False(t, IsKind(err, InsufficientStackSize))

	k, ok = KindOf(&SyntaxError{Kind: ClosingBraceExpected, ID: 0})
	require.True(t, ok)
	require.Equal(t, ClosingBraceExpected, k)

	_, ok = KindOf(io.EOF)
	require.False(t, ok)
	_, ok = KindOf(&ArgumentError{Arg: "base", Cause: io.EOF})
	require.False(t, ok)
}

func TestErrorStrings(t *testing.T) {
	t.Parallel()
	require.Equal(t,
		"SyntaxError: invalid instruction (the number of symbols in the source code should be divisible by 4)",
		(&SyntaxError{Kind: CodeLengthInvalid, ID: -1}).Error())
	require.Equal(t,
		"SyntaxError: no corresponding opening brace (L-brace) (instruction 2)",
		(&SyntaxError{Kind: OpeningBraceExpected, ID: 2}).Error())
	require.Equal(t,
		"RuntimeException: invalid arithmetic operation, division by 0 (instruction 7)",
		NewRuntimeError(DivisionByZero, 7, nil).Error())
	require.Equal(t,
		"RuntimeException: the value provided was not an integer in the selected base (instruction 0): EOF",
		NewRuntimeError(InputNotValidInteger, 0, io.EOF).Error())
}

func TestUnwrap(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, NewRuntimeError(InputNotValidInteger, 0, io.EOF), io.EOF)
	cause := errors.New("bad")
	require.ErrorIs(t, &ArgumentError{Arg: "base", Cause: cause}, cause)
	require.Equal(t, "ArgumentError: base: bad", (&ArgumentError{Arg: "base", Cause: cause}).Error())
}

func TestCode(t *testing.T) {
	t.Parallel()
	require.Equal(t, "a☃bc", Code{'a', '☃', 'b', 'c'}.String())
}
