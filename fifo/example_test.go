// Package fifo_test provides runnable examples for the sliding-window queue.
package fifo_test

import (
	"fmt"

	"github.com/mkovel/unigraph/fifo"
)

// ExampleQueue_Append shows drop-oldest overflow on a full queue.
func ExampleQueue_Append() {
	q, _ := fifo.New[int](3)
	for i := 1; i <= 4; i++ {
		q.Append(i)
	}

	fmt.Println(q)
	// Output: Queue[2 3 4]
}

// ExampleQueue_Dequeue drains a queue in arrival order.
func ExampleQueue_Dequeue() {
	q, _ := fifo.New[string](3)
	_ = q.AppendAll([]string{"a", "b", "c"})

	for q.Len() > 0 {
		item, _ := q.Dequeue()
		fmt.Println(item)
	}
	// Output:
	// a
	// b
	// c
}
