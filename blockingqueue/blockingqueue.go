package blockingqueue

import (
	"context"
	"sync"
	"time"

	base "github.com/xyhelper/sharedqueue"
)

// Queue is a blocking, concurrency-safe FIFO: a sharedqueue.Buffer guarded by a
// single mutex and condition variable. Producers call Enqueue and never wait
// beyond lock contention; consumers call Dequeue and wait until an element is
// available or the queue is closed.
//
// Every element is delivered to exactly one consumer. Which of several
// waiting consumers receives it is unspecified.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
	mu     sync.Mutex
	cv     *sync.Cond
	buf    *base.Buffer[T] // guarded by mu
	closed bool
}

// New creates a new, open blocking queue.
func New[T any]() *Queue[T] {
	b := &Queue[T]{buf: base.NewBuffer[T](0)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue with initial capacity.
// The capacity is a hint only; the queue is unbounded.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	b := &Queue[T]{buf: base.NewBuffer[T](capacity)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Enqueue appends v to the tail and wakes one waiting consumer, if any.
// On an open queue Enqueue never fails, so callers that never Close may
// discard the error. Once Close has been called it returns ErrClosed
// without accepting v.
func (b *Queue[T]) Enqueue(v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.buf.Push(v)
	b.cv.Signal()
	return nil
}

// EnqueueMany appends items in order under a single lock acquisition and
// wakes one consumer per item. It returns the count added, or 0 and
// ErrClosed if the queue is closed.
func (b *Queue[T]) EnqueueMany(items ...T) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, ErrClosed
	}
	n := b.buf.PushMany(items...)
	for i := 0; i < n; i++ {
		b.cv.Signal()
	}
	return n, nil
}

// Dequeue removes and returns the head element, blocking while the queue is
// empty. It blocks indefinitely unless an element arrives or the queue is
// closed; after Close it keeps returning elements until the queue is
// drained and then returns ErrClosed.
func (b *Queue[T]) Dequeue() (T, error) {
	return b.DequeueContext(context.Background())
}

// DequeueContext is like Dequeue but gives up when ctx is done, returning
// ctx.Err(). An element that is already available is returned even if ctx
// is done. A nil ctx is treated as context.Background().
func (b *Queue[T]) DequeueContext(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	var stop func() bool
	defer func() {
		if stop != nil {
			stop()
		}
	}()
	for {
		if v, ok := b.buf.Pop(); ok {
			return v, nil
		}
		var zero T
		if b.closed {
			return zero, ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if stop == nil && ctx.Done() != nil {
			// Cancellation has to wake Wait. The callback takes b.mu, so its
			// Broadcast cannot slip in before we are parked.
			stop = context.AfterFunc(ctx, func() {
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			})
		}
		b.cv.Wait() // releases and re-acquires b.mu
	}
}

// DequeueTimeout is like Dequeue but waits at most d. On expiry it returns
// ErrDeadlineExceeded and the queue is left untouched.
func (b *Queue[T]) DequeueTimeout(d time.Duration) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return b.DequeueContext(ctx)
}

// TryDequeue removes and returns the head element without blocking.
// ok is false if the queue is empty.
func (b *Queue[T]) TryDequeue() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.buf.Pop()
	b.mu.Unlock()
	return
}

// Peek returns the head element without removing it. ok is false when empty.
func (b *Queue[T]) Peek() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.buf.Front()
	b.mu.Unlock()
	return
}

// Len returns the number of elements currently queued.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.buf.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }

// Clear drops every queued element. Blocked consumers keep waiting.
func (b *Queue[T]) Clear() {
	b.mu.Lock()
	b.buf.Reset()
	b.mu.Unlock()
}

// Close stops the queue from accepting elements and wakes every blocked
// consumer. Elements already queued are still delivered. Close is
// idempotent.
func (b *Queue[T]) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		b.cv.Broadcast()
	}
	b.mu.Unlock()
}

// Closed reports whether Close has been called.
func (b *Queue[T]) Closed() bool {
	b.mu.Lock()
	c := b.closed
	b.mu.Unlock()
	return c
}
