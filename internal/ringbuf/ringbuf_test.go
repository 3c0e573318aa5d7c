package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	rb := New[int](2)
	for i := 0; i < 5; i++ {
		rb.PushBack(i)
	}
	require.Equal(t, 5, rb.Len())
	require.GreaterOrEqual(t, rb.MaxLen(), 5)
	require.Equal(t, 4, rb.PopBack())
	require.Equal(t, 0, rb.PopFront())
	require.Equal(t, []int{1, 2, 3}, collect(&rb))
}

func TestPushFront(t *testing.T) {
	var rb RingBuf[string]
	rb.PushFront("b")
	rb.PushFront("a")
	rb.PushBack("c")
	require.Equal(t, []string{"a", "b", "c"}, collect(&rb))

	// wrap around many times
	for i := 0; i < 100; i++ {
		rb.PushFront(rb.PopBack())
	}
	require.Equal(t, []string{"c", "a", "b"}, collect(&rb))
}

func TestSet(t *testing.T) {
	var rb RingBuf[int]
	rb.PushBack(1)
	rb.PushBack(2)
	rb.Set(1, 20)
	require.Equal(t, 20, rb.At(1))
	require.Panics(t, func() { rb.At(2) })
}

func TestEmpty(t *testing.T) {
	var rb RingBuf[int]
	require.Equal(t, 0, rb.Len())
	require.Panics(t, func() { rb.PopBack() })
	require.Panics(t, func() { rb.PopFront() })
}

func collect[T any](rb *RingBuf[T]) []T {
	var out []T
	for i := 0; i < rb.Len(); i++ {
		out = append(out, rb.At(i))
	}
	return out
}
