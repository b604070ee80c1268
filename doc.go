// Package fibheap implements a mergeable min-priority queue as a Fibonacci heap.
//
// A Fibonacci heap is a forest of heap-ordered trees whose roots are kept in a
// circular doubly linked list (the root ring). Work is deferred until it is
// needed: insert and meld only splice rings, and the forest is tidied up by
// extract-min, which links roots of equal rank until every rank appears at most
// once. Cuts made by decrease-key are charged to mark bits so that a node loses
// at most one child before it is itself moved to the root ring.
//
// Key features:
//   - Generic over the payload type and any integer or floating point key type
//   - O(1) amortized Push, FindMin, Meld and DecreaseKey
//   - O(log n) amortized ExtractMin and Delete
//   - Stable handles: the *Node returned by Push stays valid while its element
//     is in the heap, including after the heap is melded into another
//   - Structural checker and operation counters for testing amortized bounds
//
// Basic usage:
//
//	h := fibheap.New[int, string]()
//
//	a, _ := h.Push("a", 5)
//	_, _ = h.Push("b", 3)
//
//	// Move "a" to the front of the queue
//	_ = h.DecreaseKey(a, 1)
//
//	for v, key := range h.Drain() {
//	    fmt.Println(v, key) // a 1, then b 3
//	}
//
// A Heap is not safe for concurrent use. Callers sharing one between goroutines
// must serialize access themselves.
package fibheap
