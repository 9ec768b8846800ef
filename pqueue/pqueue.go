package pqueue

import "math"

// Unreachable is the "infinite" priority sentinel. It sorts after every real
// priority and is the initial distance the dijkstra package assigns to
// vertices not yet reached.
const Unreachable = int64(math.MaxInt64)

// Item is a single queue entry: a priority paired with the key it belongs to.
// Keys are unique within a Queue; priorities are not.
type Item struct {
	// Priority orders the heap; lower extracts first.
	Priority int64

	// Key identifies the entry for Update, Contains, and PeekByKey.
	Key string
}

// Queue is an indexed binary min-heap of Items.
// The zero value is an empty, ready-to-use queue; New is provided for
// symmetry with the rest of the module.
type Queue struct {
	heap []Item // 0-based binary tree: parent=(i-1)/2, children=2i+1, 2i+2
}

// New creates an empty Queue. Complexity: O(1).
func New() *Queue {
	return &Queue{heap: make([]Item, 0)}
}

// Len returns the number of live entries. Complexity: O(1).
func (q *Queue) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no entries. Complexity: O(1).
func (q *Queue) IsEmpty() bool { return len(q.heap) == 0 }

// Insert adds it to the queue and restores heap order by sifting it up.
// Insert does not check key uniqueness; use Update when the key may already
// be present. Complexity: O(log n).
func (q *Queue) Insert(it Item) {
	q.heap = append(q.heap, it)
	q.siftUp(len(q.heap) - 1)
}

// ExtractMin removes and returns an entry with minimal priority. Ties among
// equal priorities are broken arbitrarily. The last element replaces the
// root and is sifted down.
//
// Panics if the queue is empty: by contract that call site is a bug, not a
// recoverable condition. Complexity: O(log n).
func (q *Queue) ExtractMin() Item {
	if len(q.heap) == 0 {
		panic("pqueue: ExtractMin on empty queue")
	}

	min := q.heap[0]
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.siftDown(0)
	}

	return min
}

// Update replaces the live entry for key with it, or inserts it if the key
// is absent. Either way, afterwards exactly one entry exists for it.Key.
//
// The usual caller passes key == it.Key with a lowered priority (eager
// decrease-key), but re-keying an entry is permitted: the entry found under
// key is removed and it is inserted as-is.
// Complexity: O(n) scan + O(log n) reinsert.
func (q *Queue) Update(key string, it Item) {
	// 1) Locate the entry by key.
	for i := range q.heap {
		if q.heap[i].Key != key {
			continue
		}

		// 2) Remove it: move the last element into its slot, then restore
		//    heap order around that slot in whichever direction is needed.
		last := len(q.heap) - 1
		q.heap[i] = q.heap[last]
		q.heap = q.heap[:last]
		if i < len(q.heap) {
			q.siftDown(i)
			q.siftUp(i)
		}

		// 3) Reinsert with the new entry.
		q.Insert(it)

		return
	}

	// 4) Key absent: plain insert.
	q.Insert(it)
}

// Build replaces the queue contents with items and heapifies in O(n) by
// sifting down from the last internal node to the root. The input must not
// contain duplicate keys; Build takes its own copy of the slice.
func (q *Queue) Build(items []Item) {
	q.heap = make([]Item, len(items))
	copy(q.heap, items)

	for i := len(q.heap)/2 - 1; i >= 0; i-- {
		q.siftDown(i)
	}
}

// Contains reports whether a live entry exists for key. Complexity: O(n).
func (q *Queue) Contains(key string) bool {
	_, ok := q.PeekByKey(key)

	return ok
}

// PeekByKey returns the live entry for key without mutating the queue.
// The second return is false when the key is absent. Complexity: O(n).
func (q *Queue) PeekByKey(key string) (Item, bool) {
	for i := range q.heap {
		if q.heap[i].Key == key {
			return q.heap[i], true
		}
	}

	return Item{}, false
}

// siftUp moves the element at index i toward the root while it is smaller
// than its parent.
func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.heap[i].Priority >= q.heap[parent].Priority {
			break
		}
		q.heap[i], q.heap[parent] = q.heap[parent], q.heap[i]
		i = parent
	}
}

// siftDown moves the element at index i toward the leaves, swapping with its
// smaller child while a child is smaller.
func (q *Queue) siftDown(i int) {
	n := len(q.heap)
	for {
		child := q.minChild(i)
		if child >= n || q.heap[i].Priority <= q.heap[child].Priority {
			return
		}
		q.heap[i], q.heap[child] = q.heap[child], q.heap[i]
		i = child
	}
}

// minChild returns the index of the smaller child of i, or len(heap) when i
// is a leaf.
func (q *Queue) minChild(i int) int {
	n := len(q.heap)
	left := 2*i + 1
	if left >= n {
		return n // leaf
	}
	right := left + 1
	if right < n && q.heap[right].Priority < q.heap[left].Priority {
		return right
	}

	return left
}
