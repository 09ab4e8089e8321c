package sharedqueue

import (
	"sync"
)

// Queue is a generic, concurrency-safe FIFO queue: a Buffer behind a mutex.
// It never blocks; Dequeue on an empty queue reports false. The zero value is
// not ready for use; construct via New or NewWithCapacity.
type Queue[T any] struct {
	mu  sync.Mutex
	buf *Buffer[T]
}

// New creates a new empty queue. All exported methods are safe for
// concurrent use.
func New[T any]() *Queue[T] {
	return NewWithCapacity[T](0)
}

// NewWithCapacity creates a new queue with the given initial capacity.
// Capacity preallocates internal storage and does not bound the queue.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	return &Queue[T]{buf: NewBuffer[T](capacity)}
}

// Enqueue appends v to the tail. Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	q.buf.Push(v)
	q.mu.Unlock()
}

// EnqueueMany appends items in order and returns how many were added.
func (q *Queue[T]) EnqueueMany(items ...T) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.PushMany(items...)
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Amortized complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Pop()
}

// Peek returns the head value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Front()
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// IsEmpty is shorthand for Len() == 0.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Clear removes all elements, releasing references held by the buffer.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	q.buf.Reset()
	q.mu.Unlock()
}

// ToSlice returns an independent copy of the contents, head first.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Snapshot()
}
