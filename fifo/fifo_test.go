// Package fifo_test validates the fixed-capacity queue: construction,
// FIFO ordering, drop-oldest overflow, strict bulk append, and accessors.
package fifo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovel/unigraph/fifo"
)

func TestNew_Validation(t *testing.T) {
	_, err := fifo.New[int](0)
	assert.ErrorIs(t, err, fifo.ErrBadCapacity)

	_, err = fifo.New[int](-3)
	assert.ErrorIs(t, err, fifo.ErrBadCapacity)

	q, err := fifo.New[int](3)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Cap())
	assert.Zero(t, q.Len())
}

func TestAppendDequeue_FIFOOrder(t *testing.T) {
	q, err := fifo.New[int](5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		q.Append(i)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, q.Items())

	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.Equal(t, []int{1, 2, 3, 4}, q.Items())
}

func TestAppend_OverflowDropsOldest(t *testing.T) {
	q, err := fifo.New[int](5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		q.Append(i)
	}
	q.Append(33)

	// Length is pinned at capacity; 0 fell off the front.
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 33}, q.Items())
}

func TestDequeue_Empty(t *testing.T) {
	q, err := fifo.New[string](2)
	require.NoError(t, err)

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, fifo.ErrEmptyQueue)
}

func TestAppendAll_FitsExactly(t *testing.T) {
	q, err := fifo.New[int](5)
	require.NoError(t, err)

	require.NoError(t, q.AppendAll([]int{0, 1, 2, 3, 4}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, q.Items())
}

func TestAppendAll_TooLongLeavesQueueUntouched(t *testing.T) {
	q, err := fifo.New[int](5)
	require.NoError(t, err)
	require.NoError(t, q.AppendAll([]int{0, 1, 2}))

	// 3 queued + 4 more exceeds capacity 5: strict variant refuses.
	assert.ErrorIs(t, q.AppendAll([]int{5, 6, 7, 8}), fifo.ErrTooLong)
	assert.Equal(t, []int{0, 1, 2}, q.Items())
}

func TestAt_Indexing(t *testing.T) {
	q, err := fifo.New[int](5)
	require.NoError(t, err)
	require.NoError(t, q.AppendAll([]int{10, 11, 12}))

	assert.Equal(t, 12, q.At(2))
	assert.Panics(t, func() { q.At(7) })
}

func TestItems_ReturnsCopy(t *testing.T) {
	q, err := fifo.New[int](3)
	require.NoError(t, err)
	q.Append(1)

	items := q.Items()
	items[0] = 99

	assert.Equal(t, []int{1}, q.Items())
}

func TestString(t *testing.T) {
	q, err := fifo.New[int](3)
	require.NoError(t, err)
	q.Append(1)
	q.Append(2)

	assert.Equal(t, "Queue[1 2]", q.String())
}

func TestQueue_GenericElementType(t *testing.T) {
	// The original use case buffered gradient values; floats work unchanged.
	q, err := fifo.New[float64](2)
	require.NoError(t, err)

	q.Append(0.5)
	q.Append(1.5)
	q.Append(2.5)

	assert.Equal(t, []float64{1.5, 2.5}, q.Items())
}
