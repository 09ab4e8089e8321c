// Package sharedqueue provides a generic FIFO buffer for handing values
// between goroutines.
//
// The Queue in this package is concurrency-safe but never blocks: Dequeue on
// an empty queue reports false. For hand-off between producers and consumers
// where a consumer should wait for data, use the blockingqueue subpackage,
// which layers a condition variable and close/cancel semantics on top.
package sharedqueue
