// package ringbuf provides a double ended queue backed by a ring buffer.
package ringbuf

// RingBuf is a double ended queue.
// The buffer doubles in size when it is full, so it has no length limit.
// The zero value is an empty RingBuf.
type RingBuf[T any] struct {
	buf  []T
	head int
	n    int
}

func New[T any](n int) RingBuf[T] {
	return RingBuf[T]{buf: make([]T, n)}
}

func (rb *RingBuf[T]) Len() int {
	return rb.n
}

func (rb *RingBuf[T]) MaxLen() int {
	return len(rb.buf)
}

func (rb *RingBuf[T]) PushBack(val T) {
	rb.grow()
	rb.buf[rb.index(rb.n)] = val
	rb.n++
}

func (rb *RingBuf[T]) PushFront(val T) {
	rb.grow()
	rb.head = rb.index(len(rb.buf) - 1)
	rb.buf[rb.head] = val
	rb.n++
}

// PopFront panics if the buffer is empty.
func (rb *RingBuf[T]) PopFront() T {
	val := rb.At(0)
	var zero T
	rb.buf[rb.head] = zero
	rb.head = rb.index(1)
	rb.n--
	return val
}

// PopBack panics if the buffer is empty.
func (rb *RingBuf[T]) PopBack() T {
	val := rb.At(rb.n - 1)
	var zero T
	rb.buf[rb.index(rb.n-1)] = zero
	rb.n--
	return val
}

// At returns the i-th element from the front.
func (rb *RingBuf[T]) At(i int) T {
	if i < 0 || i >= rb.n {
		panic(i)
	}
	return rb.buf[rb.index(i)]
}

// Set replaces the i-th element from the front.
func (rb *RingBuf[T]) Set(i int, val T) {
	if i < 0 || i >= rb.n {
		panic(i)
	}
	rb.buf[rb.index(i)] = val
}

// index maps a logical offset from head into buf.
func (rb *RingBuf[T]) index(i int) int {
	return (rb.head + i) % len(rb.buf)
}

func (rb *RingBuf[T]) grow() {
	if rb.n < len(rb.buf) {
		return
	}
	size := 2 * len(rb.buf)
	if size == 0 {
		size = 8
	}
	buf := make([]T, size)
	for i := 0; i < rb.n; i++ {
		buf[i] = rb.buf[rb.index(i)]
	}
	rb.buf = buf
	rb.head = 0
}
