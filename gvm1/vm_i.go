package gvm1

import (
	"fmt"

	"go.glypho.dev/glypho"
)

// Kind is the operation performed by an instruction.
type Kind uint8

const (
	NOP Kind = iota
	Input
	Rot
	Swap
	Push
	RRot
	Dup
	Add
	LBrace
	Output
	Multiply
	Execute
	Negate
	Pop
	RBrace
)

func (k Kind) String() string {
	switch k {
	case NOP:
		return "NOP"
	case Input:
		return "Input"
	case Rot:
		return "Rot"
	case Swap:
		return "Swap"
	case Push:
		return "Push"
	case RRot:
		return "RRot"
	case Dup:
		return "Dup"
	case Add:
		return "Add"
	case LBrace:
		return "L-brace"
	case Output:
		return "Output"
	case Multiply:
		return "Multiply"
	case Execute:
		return "Execute"
	case Negate:
		return "Negate"
	case Pop:
		return "Pop"
	case RBrace:
		return "R-brace"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) IsBrace() bool {
	return k == LBrace || k == RBrace
}

// I is an instruction in the program arena.
// All the references to other instructions are indexes into the arena.
type I struct {
	Kind Kind
	// ID is the index of this instruction in the arena.
	ID int
	// Next is the successor under normal flow, or glypho.Halt.
	Next int
	// Jump is the brace partner for braces, and the same as Next otherwise.
	Jump int
	// Parent is the Execute instruction which created this one.
	// It is ID for instructions loaded from source.
	Parent int
}

func (ix I) String() string {
	return fmt.Sprintf("%d %v next=%s jump=%s", ix.ID, ix.Kind, fmtID(ix.Next), fmtID(ix.Jump))
}

// Synthesized returns true if the instruction was created by Execute while running.
func (ix I) Synthesized() bool {
	return ix.Parent != ix.ID
}

func fmtID(id int) string {
	if id == glypho.Halt {
		return "halt"
	}
	return fmt.Sprint(id)
}
