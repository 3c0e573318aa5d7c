package gvm1

import "go.glypho.dev/glypho"

// Link sets the successor of every instruction in a freshly decoded program,
// and pairs up braces so that each one jumps to its partner.
//
// An R-brace without an open L-brace is OpeningBraceExpected.
// An L-brace which is never closed is ClosingBraceExpected, reported at the innermost one.
func Link(prog []I) error {
	var open []int
	for id := range prog {
		ix := &prog[id]
		ix.Next = id + 1
		if ix.Next >= len(prog) {
			ix.Next = glypho.Halt
		}
		switch ix.Kind {
		case LBrace:
			open = append(open, id)
		case RBrace:
			if len(open) == 0 {
				return &glypho.SyntaxError{Kind: glypho.OpeningBraceExpected, ID: id}
			}
			l := open[len(open)-1]
			open = open[:len(open)-1]
			ix.Jump = l
			prog[l].Jump = id
		default:
			ix.Jump = ix.Next
		}
	}
	if len(open) > 0 {
		return &glypho.SyntaxError{Kind: glypho.ClosingBraceExpected, ID: open[len(open)-1]}
	}
	return nil
}
