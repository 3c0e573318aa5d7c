// package glystack implements the Glypho stack.
//
// The stack is a double ended queue of glyint.Int.
// The top of the stack is the back of the queue, and Rotate and ReverseRotate move
// elements between the top and the bottom.
//
// Every operation which can fail takes the id of the instruction that is running it,
// and returns a *glypho.RuntimeError carrying that id.
package glystack

import (
	"go.brendoncarroll.net/exp/slices2"

	"go.glypho.dev/glypho"
	"go.glypho.dev/glypho/glyint"
	"go.glypho.dev/glypho/internal/ringbuf"
)

type Stack struct {
	rb ringbuf.RingBuf[glyint.Int]
}

func New() *Stack {
	return &Stack{rb: ringbuf.New[glyint.Int](16)}
}

func (s *Stack) Len() int {
	return s.rb.Len()
}

// Values returns a copy of the stack, from bottom to top.
func (s *Stack) Values() []glyint.Int {
	out := make([]glyint.Int, s.rb.Len())
	for i := range out {
		out[i] = s.rb.At(i)
	}
	return out
}

// Strings returns the stack formatted in base b, from bottom to top.
func (s *Stack) Strings(b int) []string {
	return slices2.Map(s.Values(), func(x glyint.Int) string {
		return x.Format(b)
	})
}

// PushOne pushes 1.
func (s *Stack) PushOne() {
	s.rb.PushBack(glyint.One())
}

// Input pushes a value supplied from outside the program.
func (s *Stack) Input(v glyint.Int) {
	s.rb.PushBack(v)
}

func (s *Stack) Pop(id int) error {
	if err := s.need(id, 1); err != nil {
		return err
	}
	s.rb.PopBack()
	return nil
}

// Peek returns the top without removing it.
func (s *Stack) Peek(id int) (glyint.Int, error) {
	if err := s.need(id, 1); err != nil {
		return glyint.Int{}, err
	}
	return s.rb.At(s.rb.Len() - 1), nil
}

// Output removes and returns the top.
func (s *Stack) Output(id int) (glyint.Int, error) {
	if err := s.need(id, 1); err != nil {
		return glyint.Int{}, err
	}
	return s.rb.PopBack(), nil
}

func (s *Stack) Dup(id int) error {
	x, err := s.Peek(id)
	if err != nil {
		return err
	}
	s.rb.PushBack(x)
	return nil
}

func (s *Stack) Swap(id int) error {
	if err := s.need(id, 2); err != nil {
		return err
	}
	n := s.rb.Len()
	a, b := s.rb.At(n-1), s.rb.At(n-2)
	s.rb.Set(n-1, b)
	s.rb.Set(n-2, a)
	return nil
}

// Rotate moves the top to the bottom.
func (s *Stack) Rotate(id int) error {
	if err := s.need(id, 1); err != nil {
		return err
	}
	s.rb.PushFront(s.rb.PopBack())
	return nil
}

// ReverseRotate moves the bottom to the top.
func (s *Stack) ReverseRotate(id int) error {
	if err := s.need(id, 1); err != nil {
		return err
	}
	s.rb.PushBack(s.rb.PopFront())
	return nil
}

func (s *Stack) Add(id int) error {
	return s.binary(id, glyint.Int.Add)
}

func (s *Stack) Multiply(id int) error {
	return s.binary(id, glyint.Int.Mul)
}

// Negate replaces the top with its arithmetic negation.
func (s *Stack) Negate(id int) error {
	if err := s.need(id, 1); err != nil {
		return err
	}
	n := s.rb.Len()
	s.rb.Set(n-1, s.rb.At(n-1).Neg())
	return nil
}

// TakeK removes and returns k values, the top first.
func (s *Stack) TakeK(id int, k int) ([]glyint.Int, error) {
	if s.rb.Len() < k {
		return nil, glypho.NewRuntimeError(glypho.InsufficientStackSize, id, nil)
	}
	out := make([]glyint.Int, k)
	for i := range out {
		out[i] = s.rb.PopBack()
	}
	return out, nil
}

// binary pops the top two values and pushes fn(top, second).
func (s *Stack) binary(id int, fn func(a, b glyint.Int) glyint.Int) error {
	if err := s.need(id, 2); err != nil {
		return err
	}
	a := s.rb.PopBack()
	b := s.rb.PopBack()
	s.rb.PushBack(fn(a, b))
	return nil
}

// need checks that there are at least n elements.
// Operations on a single element report EmptyStack, larger ones InsufficientStackSize.
func (s *Stack) need(id int, n int) error {
	if s.rb.Len() >= n {
		return nil
	}
	if n == 1 {
		return glypho.NewRuntimeError(glypho.EmptyStack, id, nil)
	}
	return glypho.NewRuntimeError(glypho.InsufficientStackSize, id, nil)
}
