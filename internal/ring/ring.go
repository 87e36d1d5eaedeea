// Package ring provides a small bounded most-recent-first buffer.
package ring

// Buffer keeps the last capacity values pushed, newest first.
// Pushing into a full buffer silently drops the oldest value.
type Buffer[T any] struct {
	buf  []T
	head int // slot of the newest value
	n    int
}

// New returns an empty buffer holding at most capacity values.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be > 0")
	}
	return &Buffer[T]{buf: make([]T, capacity)}
}

// Push records v as the newest value.
func (b *Buffer[T]) Push(v T) {
	b.head--
	if b.head < 0 {
		b.head = len(b.buf) - 1
	}
	b.buf[b.head] = v
	if b.n < len(b.buf) {
		b.n++
	}
}

// Len returns the number of stored values.
func (b *Buffer[T]) Len() int { return b.n }

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// Snapshot returns the stored values, newest first.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.n)
	for i := 0; i < b.n; i++ {
		out[i] = b.buf[(b.head+i)%len(b.buf)]
	}
	return out
}
