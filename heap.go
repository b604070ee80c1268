package fibheap

import (
	"fmt"
	"iter"

	"github.com/davidvella/fibheap/monitoring"
)

// Heap is a Fibonacci min-heap. The zero value is not usable; create heaps
// with New or NewFrom.
type Heap[K Key, V any] struct {
	min      *Node[K, V] // Root with the smallest key, nil iff the heap is empty
	size     int
	owner    *owner
	consumed bool
	stats    Stats
	opts     options
}

// New creates an empty heap.
func New[K Key, V any](opts ...Option) *Heap[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[K, V]{
		owner: &owner{},
		opts:  o,
	}
}

// NewFrom creates a heap holding the single detached node n.
func NewFrom[K Key, V any](n *Node[K, V], opts ...Option) (*Heap[K, V], error) {
	h := New[K, V](opts...)
	if err := h.Insert(n); err != nil {
		return nil, err
	}
	return h, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return h.size
}

// Empty reports whether the heap holds no elements.
func (h *Heap[K, V]) Empty() bool {
	return h.min == nil
}

// Stats returns a snapshot of the operation counters.
func (h *Heap[K, V]) Stats() Stats {
	return h.stats
}

// Insert adds the detached node n to the root ring.
func (h *Heap[K, V]) Insert(n *Node[K, V]) error {
	if h.consumed {
		return ErrHeapConsumed
	}
	if n == nil || n.owner != nil {
		return ErrInvalidHandle
	}

	n.detach()
	n.owner = h.owner
	h.addRoot(n)
	h.size++
	h.stats.Inserts++
	return nil
}

// Push creates a node for value with the given key, inserts it and returns
// its handle.
func (h *Heap[K, V]) Push(value V, key K) (*Node[K, V], error) {
	n := NewNode(value, key)
	if err := h.Insert(n); err != nil {
		return nil, err
	}
	return n, nil
}

// FindMin returns the node with the smallest key without removing it.
func (h *Heap[K, V]) FindMin() (*Node[K, V], error) {
	if h.consumed {
		return nil, ErrHeapConsumed
	}
	if h.min == nil {
		return nil, ErrEmptyHeap
	}
	return h.min, nil
}

// Top returns the payload of the node with the smallest key.
func (h *Heap[K, V]) Top() (V, error) {
	n, err := h.FindMin()
	if err != nil {
		var zero V
		return zero, err
	}
	return n.value, nil
}

// Meld moves every element of other into h in constant time. Handles taken
// from other stay valid and now refer to h. other is consumed and every later
// call on it returns ErrHeapConsumed.
//
// When both minimums have equal keys, other's minimum becomes the minimum of h.
func (h *Heap[K, V]) Meld(other *Heap[K, V]) error {
	if h.consumed {
		return ErrHeapConsumed
	}
	if other == nil || other == h {
		return ErrInvalidHandle
	}
	if other.consumed {
		return ErrHeapConsumed
	}

	if other.min != nil {
		h.addRoot(other.min)
	}
	h.size += other.size
	h.stats.Melds++

	other.owner.next = h.owner
	other.owner = nil
	other.min = nil
	other.size = 0
	other.consumed = true

	if h.opts.logger != nil {
		h.opts.logger.Log(monitoring.DEBUG, "meld", "melded heap", map[string]interface{}{
			"size": h.size,
		})
	}
	return nil
}

// ExtractMin removes the node with the smallest key and returns it. The
// returned node is fully unlinked and its handle is no longer valid.
func (h *Heap[K, V]) ExtractMin() (*Node[K, V], error) {
	if h.consumed {
		return nil, ErrHeapConsumed
	}
	z := h.min
	if z == nil {
		return nil, ErrEmptyHeap
	}

	rest := unlink(z)
	if z.child != nil {
		// Promoted children keep a stale parent until consolidate.
		if rest == nil {
			rest = z.child
		} else {
			splice(rest, z.child)
		}
		z.child = nil
	}
	h.min = rest
	h.consolidate()

	h.size--
	h.stats.Extracts++
	z.release()
	return z, nil
}

// Pop removes the node with the smallest key and discards it.
func (h *Heap[K, V]) Pop() error {
	_, err := h.ExtractMin()
	return err
}

// DecreaseKey lowers the key of n to key. key must be strictly smaller than
// the current key, otherwise ErrInvalidKey is returned and nothing changes.
func (h *Heap[K, V]) DecreaseKey(n *Node[K, V], key K) error {
	if err := h.validate(n); err != nil {
		return err
	}
	if !(key < n.key) {
		return fmt.Errorf("%w: %v is not less than %v", ErrInvalidKey, key, n.key)
	}

	n.key = key
	h.stats.DecreaseKeys++

	if n.parent == nil {
		if n.key <= h.min.key {
			h.min = n
		}
		return nil
	}

	parent := n.parent
	h.cut(n)
	h.cascadingCut(parent)
	return nil
}

// Delete removes n from the heap wherever it sits in the forest and returns
// it fully unlinked.
func (h *Heap[K, V]) Delete(n *Node[K, V]) (*Node[K, V], error) {
	if err := h.validate(n); err != nil {
		return nil, err
	}
	if n == h.min {
		return h.ExtractMin()
	}

	if parent := n.parent; parent == nil {
		unlink(n)
	} else {
		h.removeChild(n)
		h.cascadingCut(parent)
	}

	if n.child != nil {
		splice(h.min, n.child)
		n.child = nil
	}
	h.consolidate()

	h.size--
	h.stats.Deletes++
	n.release()
	return n, nil
}

// Clear releases every node in the heap, invalidating their handles, and
// returns how many were released. The heap is empty and usable afterwards.
func (h *Heap[K, V]) Clear() int {
	if h.min == nil {
		return 0
	}

	released := 0
	rings := []*Node[K, V]{h.min}
	for len(rings) > 0 {
		start := rings[len(rings)-1]
		rings = rings[:len(rings)-1]

		n := start
		for {
			next := n.right
			if n.child != nil {
				rings = append(rings, n.child)
			}
			n.release()
			released++
			if next == start {
				break
			}
			n = next
		}
	}

	h.min = nil
	h.size = 0

	if h.opts.logger != nil {
		h.opts.logger.Log(monitoring.DEBUG, "clear", "released heap", map[string]interface{}{
			"released": released,
		})
	}
	return released
}

// Drain yields values and keys in ascending key order, extracting each one.
// Stopping early leaves the remaining elements in the heap.
func (h *Heap[K, V]) Drain() iter.Seq2[V, K] {
	return func(yield func(V, K) bool) {
		for !h.consumed && h.min != nil {
			n, err := h.ExtractMin()
			if err != nil {
				return
			}
			if !yield(n.value, n.key) {
				return
			}
		}
	}
}

// validate checks that n is a live node of h.
func (h *Heap[K, V]) validate(n *Node[K, V]) error {
	if h.consumed {
		return ErrHeapConsumed
	}
	if !h.owns(n) {
		return ErrInvalidHandle
	}
	return nil
}

func (h *Heap[K, V]) owns(n *Node[K, V]) bool {
	if n == nil || n.owner == nil || h.owner == nil {
		return false
	}
	n.owner = n.owner.resolve()
	return n.owner == h.owner
}

// addRoot splices the ring containing n into the root ring and takes n as the
// minimum when its key is not larger.
func (h *Heap[K, V]) addRoot(n *Node[K, V]) {
	if h.min == nil {
		h.min = n
		return
	}
	splice(h.min, n)
	if n.key <= h.min.key {
		h.min = n
	}
}
