package sharedqueue

// Buffer is an unsynchronized FIFO backed by a slice. It is the storage used
// by Queue and by blockingqueue, both of which guard it with their own lock.
// A Buffer must not be used by more than one goroutine without external
// synchronization. The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	data []T
}

// NewBuffer returns an empty buffer with room for capacity elements before
// it has to grow. Negative capacity is treated as 0.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{data: make([]T, 0, capacity)}
}

// Push appends v at the tail.
func (b *Buffer[T]) Push(v T) { b.data = append(b.data, v) }

// PushMany appends items in order and returns how many were added.
func (b *Buffer[T]) PushMany(items ...T) int {
	b.data = append(b.data, items...)
	return len(items)
}

// Pop removes and returns the head element. ok is false when empty.
func (b *Buffer[T]) Pop() (v T, ok bool) {
	if len(b.data) == 0 {
		return v, false
	}
	v = b.data[0]
	// Zero the vacated slot so the backing array does not pin v.
	var zero T
	b.data[0] = zero
	b.data = b.data[1:]
	return v, true
}

// Front returns the head element without removing it.
func (b *Buffer[T]) Front() (v T, ok bool) {
	if len(b.data) == 0 {
		return v, false
	}
	return b.data[0], true
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Reset drops every element.
func (b *Buffer[T]) Reset() {
	clear(b.data)
	b.data = b.data[:0]
}

// Snapshot copies the elements in FIFO order.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
