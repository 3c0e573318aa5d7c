// package gvm1 contains the Glypho virtual machine.
//
// A program is an arena of instructions, indexed from 0.
// The arena only grows while running: Execute builds a new instruction from values on
// the stack and splices it in after itself.
package gvm1

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"go.glypho.dev/glypho"
	"go.glypho.dev/glypho/glyint"
	"go.glypho.dev/glypho/glystack"
)

type Config struct {
	// Base is used to parse Input and format Output.
	// Zero means glypho.DefaultBase.
	Base int
	// In is read one token at a time by Input.
	// If Tokens is set, it is used instead.
	In     io.Reader
	Tokens *Tokens
	Out    io.Writer
}

type VM struct {
	prog  []I
	pc    int
	stack *glystack.Stack
	steps uint64

	base int
	in   *Tokens
	out  io.Writer

	err error
	ctx context.Context
}

// New creates a VM which will run the linked program prog, starting at instruction 0.
// The VM takes ownership of prog.
func New(prog []I, cfg Config) *VM {
	if cfg.Base == 0 {
		cfg.Base = glypho.DefaultBase
	}
	if !glyint.ValidBase(cfg.Base) {
		panic(fmt.Sprintf("gvm1: invalid base %d", cfg.Base))
	}
	if cfg.In == nil {
		cfg.In = strings.NewReader("")
	}
	if cfg.Tokens == nil {
		cfg.Tokens = NewTokens(cfg.In)
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}

	vm := &VM{
		prog:  prog,
		stack: glystack.New(),
		base:  cfg.Base,
		in:    cfg.Tokens,
		out:   cfg.Out,
	}
	if len(prog) == 0 {
		vm.pc = glypho.Halt
	}
	return vm
}

// Run executes the VM for a maximum of maxSteps.
// The number of steps taken is returned.
// If Run returns less than maxSteps, then the machine has halted or faulted.
func (vm *VM) Run(ctx context.Context, maxSteps uint64) (steps uint64) {
	vm.ctx = ctx
	defer func() { vm.ctx = nil }()
	defer func() { vm.steps += steps }()

	for i := uint64(0); i < maxSteps; i++ {
		if !vm.isAlive() {
			return i
		}
		vm.step(vm.pc)
	}
	return maxSteps
}

// RunToHalt runs until the program halts or faults, or ctx is done.
// ctx is checked between batches of instructions.
func (vm *VM) RunToHalt(ctx context.Context) error {
	const batch = 1 << 20
	for vm.isAlive() {
		if err := ctx.Err(); err != nil {
			return err
		}
		vm.Run(ctx, batch)
	}
	if vm.err != nil {
		logctx.Info(ctx, "program faulted", zap.Uint64("steps", vm.steps), zap.Error(vm.err))
		return vm.err
	}
	logctx.Info(ctx, "program halted", zap.Uint64("steps", vm.steps), zap.Int("instructions", len(vm.prog)))
	return nil
}

// Err returns the fault which stopped the VM, if any.
func (vm *VM) Err() error {
	return vm.err
}

// Halted returns true once the program has reached glypho.Halt.
func (vm *VM) Halted() bool {
	return vm.pc == glypho.Halt
}

// Steps returns the number of instructions executed so far.
func (vm *VM) Steps() uint64 {
	return vm.steps
}

// PC returns the id of the next instruction to execute.
func (vm *VM) PC() int {
	return vm.pc
}

// Prog returns the arena, including instructions created by Execute.
func (vm *VM) Prog() []I {
	return vm.prog
}

func (vm *VM) Stack() *glystack.Stack {
	return vm.stack
}

func (vm *VM) isAlive() bool {
	return vm.pc != glypho.Halt && vm.err == nil
}

func (vm *VM) fail(err error) {
	vm.err = err
}

func (vm *VM) step(id int) {
	// ix is a copy; Execute may grow the arena.
	ix := vm.prog[id]
	var err error
	switch ix.Kind {
	case NOP:
	case Input:
		err = vm.input(id)
	case Rot:
		err = vm.stack.Rotate(id)
	case Swap:
		err = vm.stack.Swap(id)
	case Push:
		vm.stack.PushOne()
	case RRot:
		err = vm.stack.ReverseRotate(id)
	case Dup:
		err = vm.stack.Dup(id)
	case Add:
		err = vm.stack.Add(id)
	case Output:
		err = vm.output(id)
	case Multiply:
		err = vm.stack.Multiply(id)
	case Negate:
		err = vm.stack.Negate(id)
	case Pop:
		err = vm.stack.Pop(id)

	// control flow
	case LBrace:
		top, err := vm.stack.Peek(id)
		if err != nil {
			vm.fail(err)
			return
		}
		if top.IsZero() {
			vm.pc = ix.Jump
			return
		}
	case RBrace:
		top, err := vm.stack.Peek(id)
		if err != nil {
			vm.fail(err)
			return
		}
		if !top.IsZero() {
			vm.pc = ix.Jump
			return
		}
	case Execute:
		if err := vm.execute(id); err != nil {
			vm.fail(err)
			return
		}
		vm.pc = vm.prog[id].Next
		return

	default:
		panic(ix)
	}
	if err != nil {
		vm.fail(err)
		return
	}
	vm.pc = ix.Next
}

// execute builds a new instruction from the top 4 values of the stack, and splices it in
// so that it runs next, followed by whatever would have run after id.
func (vm *VM) execute(id int) error {
	xs, err := vm.stack.TakeK(id, glypho.CodeSize)
	if err != nil {
		return err
	}
	kind := decodeValues(xs)
	if kind.IsBrace() {
		return glypho.NewRuntimeError(glypho.InvalidExecute, id, fmt.Errorf("values %v decode to %v", xs, kind))
	}
	cur := vm.prog[id]
	nid := len(vm.prog)
	vm.prog = append(vm.prog, I{
		Kind:   kind,
		ID:     nid,
		Next:   cur.Next,
		Jump:   cur.Next,
		Parent: cur.Parent,
	})
	vm.prog[id].Next = nid
	logctx.Debug(vm.ctx, "splice", zap.Int("execute", id), zap.Int("new", nid), zap.Stringer("kind", kind))
	return nil
}

func (vm *VM) input(id int) error {
	tok, err := vm.in.Next()
	if err != nil {
		return glypho.NewRuntimeError(glypho.InputNotValidInteger, id, err)
	}
	x, err := glyint.FromBase(vm.base, tok)
	if err != nil {
		return glypho.NewRuntimeError(glypho.InputNotValidInteger, id, err)
	}
	vm.stack.Input(x)
	return nil
}

func (vm *VM) output(id int) error {
	x, err := vm.stack.Output(id)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(vm.out, x.Format(vm.base)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
