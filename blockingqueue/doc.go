// Package blockingqueue provides a blocking FIFO for handing values from
// producer goroutines to consumer goroutines.
//
// Enqueue appends and wakes one waiting consumer. Dequeue waits, using the
// usual lock and wait-in-a-loop pattern, until an element is available.
// Close releases all waiters: elements queued before Close are still
// delivered, after which every Dequeue returns ErrClosed. DequeueContext and
// DequeueTimeout bound the wait.
package blockingqueue
