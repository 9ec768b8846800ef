// Package pqueue implements an indexed binary min-heap keyed by string,
// the priority queue backing the dijkstra package.
//
// Each entry is an Item pairing a non-negative Priority with a unique Key.
// The defining capability beyond a plain heap is Update: replacing the live
// entry for a key with a new priority while keeping exactly one entry per
// key. That is what makes an eager decrease-key relaxation step correct —
// lowering a vertex's priority never leaves a stale duplicate behind.
//
// Storage is a 0-based slice-backed binary tree using the standard index
// arithmetic parent=(i-1)/2, children=2i+1 and 2i+2. There is no reserved
// root slot: the structural floor some textbook formulations keep at index 0
// is encoded in the index formulas instead, so no sentinel value can ever be
// confused with a real entry.
//
// Operations:
//
//	Insert(it Item)                      // O(log n)
//	ExtractMin() Item                    // O(log n); panics on empty queue
//	Update(key string, it Item)          // O(n) scan + O(log n) reinsert
//	Build(items []Item)                  // O(n) bulk heapify
//	Contains(key string) bool            // O(n)
//	PeekByKey(key string) (Item, bool)   // O(n)
//	Len() int, IsEmpty() bool            // O(1)
//
// The linear key scans are a deliberate trade-off for the small graphs this
// library targets; an auxiliary key→index map maintained across swaps would
// bring Update to O(log n) if ever needed.
//
// Calling ExtractMin on an empty queue is a programmer error and panics;
// check IsEmpty first, as the dijkstra loop does.
//
// A Queue is not safe for concurrent use.
package pqueue
