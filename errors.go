package glypho

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why loading or running a program failed.
type ErrorKind uint8

const (
	_ ErrorKind = iota

	// syntax errors
	CodeLengthInvalid
	OpeningBraceExpected
	ClosingBraceExpected

	// runtime exceptions
	EmptyStack
	InsufficientStackSize
	InputNotValidInteger
	DivisionByZero
	InvalidExecute
)

func (k ErrorKind) IsSyntax() bool {
	return k >= CodeLengthInvalid && k <= ClosingBraceExpected
}

func (k ErrorKind) IsRuntime() bool {
	return k >= EmptyStack && k <= InvalidExecute
}

func (k ErrorKind) String() string {
	switch k {
	case CodeLengthInvalid:
		return "CodeLengthInvalid"
	case OpeningBraceExpected:
		return "OpeningBraceExpected"
	case ClosingBraceExpected:
		return "ClosingBraceExpected"
	case EmptyStack:
		return "EmptyStack"
	case InsufficientStackSize:
		return "InsufficientStackSize"
	case InputNotValidInteger:
		return "InputNotValidInteger"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidExecute:
		return "InvalidExecute"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

func (k ErrorKind) message() string {
	switch k {
	case CodeLengthInvalid:
		return fmt.Sprintf("invalid instruction (the number of symbols in the source code should be divisible by %d)", CodeSize)
	case OpeningBraceExpected:
		return "no corresponding opening brace (L-brace)"
	case ClosingBraceExpected:
		return "expected a closing brace (R-brace)"
	case EmptyStack:
		return "expected at least an element on the stack, but it was empty"
	case InsufficientStackSize:
		return "not enough elements on the stack"
	case InputNotValidInteger:
		return "the value provided was not an integer in the selected base"
	case DivisionByZero:
		return "invalid arithmetic operation, division by 0"
	case InvalidExecute:
		return "execute produced a brace"
	default:
		return k.String()
	}
}

// SyntaxError is returned when a program cannot be loaded.
// ID is the offending instruction, or -1 if the error is not tied to one.
type SyntaxError struct {
	Kind ErrorKind
	ID   int
}

func (e *SyntaxError) Error() string {
	if e.ID < 0 {
		return "SyntaxError: " + e.Kind.message()
	}
	return fmt.Sprintf("SyntaxError: %s (instruction %d)", e.Kind.message(), e.ID)
}

// RuntimeError is returned when a running program faults.
// It always carries the id of the instruction which faulted.
type RuntimeError struct {
	Kind  ErrorKind
	ID    int
	Cause error
}

func NewRuntimeError(kind ErrorKind, id int, cause error) *RuntimeError {
	return &RuntimeError{Kind: kind, ID: id, Cause: cause}
}

func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("RuntimeException: %s (instruction %d)", e.Kind.message(), e.ID)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// ArgumentError is returned for invalid configuration, before any program logic runs.
type ArgumentError struct {
	Arg   string
	Cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("ArgumentError: %s: %v", e.Arg, e.Cause)
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// KindOf returns the ErrorKind of a SyntaxError or RuntimeError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsKind returns true if err is a SyntaxError or RuntimeError of the given kind.
func IsKind(err error, k ErrorKind) bool {
	k2, ok := KindOf(err)
	return ok && k2 == k
}
