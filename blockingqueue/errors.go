package blockingqueue

import (
	"context"
	"errors"
)

// ErrClosed is returned by Enqueue after Close, and by the Dequeue family
// once the queue is closed and drained.
var ErrClosed = errors.New("blockingqueue: queue closed")

// ErrCanceled is returned by DequeueContext when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by DequeueContext when the context deadline
// expires, and by DequeueTimeout when the timeout elapses.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsClosed reports whether err is ErrClosed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
