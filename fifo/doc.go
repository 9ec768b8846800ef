// Package fifo provides a fixed-capacity FIFO queue with sliding-window
// overflow semantics.
//
// A Queue holds at most the capacity fixed at construction. Append beyond
// capacity drops the oldest element, which makes the queue a sliding window
// over the most recent Cap() items; AppendAll is the strict variant that
// refuses oversized batches instead of dropping.
//
// fifo is an independent utility: nothing in the graph, search, or heap
// packages of this module uses it, and it makes no assumptions about them.
//
// Operations:
//
//	Append(item T)             // O(1) amortized; drops oldest on overflow
//	Dequeue() (T, error)       // O(1); ErrEmptyQueue when empty
//	AppendAll(items []T) error // O(len); ErrTooLong instead of dropping
//	Len() int, Cap() int       // O(1)
//	At(i int) T                // O(1); panics out of range
//	Items() []T                // O(n) copy, oldest first
//
// A Queue is not safe for concurrent use.
package fifo
