package priority

import "github.com/davidvella/fibheap"

// Queue implements a keyed priority queue on a Fibonacci heap. Lower
// priorities are popped first.
type Queue[K comparable, P fibheap.Key] struct {
	heap    *fibheap.Heap[P, K]
	itemMap map[K]*fibheap.Node[P, K]
}

// NewQueue creates a new, empty priority queue.
func NewQueue[K comparable, P fibheap.Key](opts ...fibheap.Option) *Queue[K, P] {
	return &Queue[K, P]{
		heap:    fibheap.New[P, K](opts...),
		itemMap: make(map[K]*fibheap.Node[P, K]),
	}
}

// Len returns the number of items in the queue.
func (pq *Queue[K, P]) Len() int {
	return pq.heap.Len()
}

// Get returns the priority of key.
func (pq *Queue[K, P]) Get(key K) (P, bool) {
	n, exists := pq.itemMap[key]
	if !exists {
		var zeroP P
		return zeroP, false
	}
	return n.Key(), true
}

// Set adds a new key or updates an existing key's priority.
func (pq *Queue[K, P]) Set(key K, priority P) {
	n, exists := pq.itemMap[key]
	if !exists {
		pq.itemMap[key] = must(pq.heap.Push(key, priority))
		return
	}

	switch old := n.Key(); {
	case priority < old:
		must0(pq.heap.DecreaseKey(n, priority))
	case priority > old:
		// Raising a key is a delete followed by a fresh insert.
		must(pq.heap.Delete(n))
		pq.itemMap[key] = must(pq.heap.Push(key, priority))
	}
}

// Remove removes the given key from the queue.
func (pq *Queue[K, P]) Remove(key K) {
	n, exists := pq.itemMap[key]
	if !exists {
		return
	}
	must(pq.heap.Delete(n))
	delete(pq.itemMap, key)
}

// Pop removes and returns the lowest priority item.
func (pq *Queue[K, P]) Pop() (key K, priority P, exists bool) {
	n, err := pq.heap.ExtractMin()
	if err != nil {
		var zeroK K
		var zeroP P
		return zeroK, zeroP, false
	}
	delete(pq.itemMap, n.Value())
	return n.Value(), n.Key(), true
}

// Peek returns the lowest priority item without removing it.
func (pq *Queue[K, P]) Peek() (key K, priority P, exists bool) {
	n, err := pq.heap.FindMin()
	if err != nil {
		var zeroK K
		var zeroP P
		return zeroK, zeroP, false
	}
	return n.Value(), n.Key(), true
}

// must panics on errors that the queue's own bookkeeping rules out.
func must[T any](v T, err error) T {
	if err != nil {
		panic("priority: " + err.Error())
	}
	return v
}

func must0(err error) {
	if err != nil {
		panic("priority: " + err.Error())
	}
}
