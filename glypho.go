// package glypho holds the definitions shared by every part of the Glypho interpreter.
package glypho

const (
	// CodeSize is the number of symbols in one encoded instruction.
	CodeSize = 4

	// DefaultBase is the numeric base used for Input and Output when none is configured.
	DefaultBase = 10
	MinBase     = 2
	MaxBase     = 36

	// Halt is the successor of the last instruction.
	// Execution stops when the next instruction id is Halt.
	Halt = -1
)

// Code is one encoded instruction, as it appears in the source.
type Code [CodeSize]rune

func (c Code) String() string {
	return string(c[:])
}
