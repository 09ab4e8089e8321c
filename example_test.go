package sharedqueue

import (
	"fmt"
)

// Example showing basic FIFO order.
func Example_basic() {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Example for EnqueueMany and ToSlice.
func Example_enqueueMany() {
	q := New[int]()
	n := q.EnqueueMany(1, 1, 2, 3)
	fmt.Println(n)
	fmt.Println(q.ToSlice())
	// Output:
	// 4
	// [1 1 2 3]
}

// Example for Peek.
func Example_peek() {
	q := New[string]()
	q.Enqueue("x")
	q.Enqueue("y")
	v, _ := q.Peek()
	fmt.Println(v, q.Len())
	// Output:
	// x 2
}

// Example for Clear and Len/IsEmpty.
func Example_clear() {
	q := NewWithCapacity[int](16)
	q.EnqueueMany(1, 2)
	q.Clear()
	fmt.Println(q.Len(), q.IsEmpty())
	_, ok := q.Dequeue()
	fmt.Println(ok)
	// Output:
	// 0 true
	// false
}

// Example using a struct payload.
func Example_structType() {
	type job struct {
		ID   int
		Name string
	}
	q := New[job]()
	q.Enqueue(job{ID: 1, Name: "a"})
	q.Enqueue(job{ID: 2, Name: "b"})
	v, _ := q.Dequeue()
	fmt.Printf("%d %s\n", v.ID, v.Name)
	// Output:
	// 1 a
}
