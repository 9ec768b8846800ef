package fifo

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrBadCapacity indicates a non-positive capacity passed to New.
	ErrBadCapacity = errors.New("fifo: capacity must be positive")

	// ErrEmptyQueue indicates a Dequeue on an empty queue.
	ErrEmptyQueue = errors.New("fifo: queue is empty")

	// ErrTooLong indicates an AppendAll batch that would exceed capacity.
	ErrTooLong = errors.New("fifo: batch too long for remaining capacity")
)

// Queue is a fixed-capacity FIFO over elements of type T.
// Construct with New; the zero value has capacity zero and rejects appends.
type Queue[T any] struct {
	maxLen int
	items  []T // oldest first
}

// New creates a Queue holding at most maxLen elements.
// Returns ErrBadCapacity if maxLen <= 0.
func New[T any](maxLen int) (*Queue[T], error) {
	if maxLen <= 0 {
		return nil, ErrBadCapacity
	}

	return &Queue[T]{
		maxLen: maxLen,
		items:  make([]T, 0, maxLen),
	}, nil
}

// Append adds item at the back. When the queue is already full the oldest
// element is dropped, keeping Len() at Cap(): the queue slides over the most
// recent elements. Complexity: O(1) amortized.
func (q *Queue[T]) Append(item T) {
	q.items = append(q.items, item)
	if len(q.items) > q.maxLen {
		q.items = q.items[1:]
	}
}

// Dequeue removes and returns the oldest element.
// Returns ErrEmptyQueue when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	front := q.items[0]
	q.items = q.items[1:]

	return front, nil
}

// AppendAll appends items in order. Unlike Append it never drops: if the
// batch does not fit in the remaining capacity, the queue is left untouched
// and ErrTooLong is returned.
func (q *Queue[T]) AppendAll(items []T) error {
	if len(items)+len(q.items) > q.maxLen {
		return ErrTooLong
	}

	q.items = append(q.items, items...)

	return nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.items) }

// Cap returns the fixed maximum length.
func (q *Queue[T]) Cap() int { return q.maxLen }

// At returns the i-th element counting from the oldest.
// Panics if i is out of range, like a slice index.
func (q *Queue[T]) At(i int) T { return q.items[i] }

// Items returns a copy of the queued elements, oldest first.
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)

	return out
}

// String renders the queue contents oldest first.
func (q *Queue[T]) String() string {
	return fmt.Sprintf("Queue%v", q.items)
}
