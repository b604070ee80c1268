package fibheap

import "fmt"

// Check walks the whole forest and returns an error wrapping ErrCorrupt that
// describes the first broken invariant it finds.
func (h *Heap[K, V]) Check() error {
	if h.consumed {
		return ErrHeapConsumed
	}
	if h.min == nil {
		if h.size != 0 {
			return fmt.Errorf("%w: empty root ring but size %d", ErrCorrupt, h.size)
		}
		return nil
	}

	count := 0
	rings := []ringFrame[K, V]{{start: h.min}}
	for len(rings) > 0 {
		r := rings[len(rings)-1]
		rings = rings[:len(rings)-1]

		length := 0
		for n := r.start; ; {
			if n.right.left != n || n.left.right != n {
				return fmt.Errorf("%w: ring links around %v are not symmetric", ErrCorrupt, n.key)
			}
			if n.parent != r.parent {
				return fmt.Errorf("%w: node %v has wrong parent", ErrCorrupt, n.key)
			}
			if r.parent == nil {
				if n.marked {
					return fmt.Errorf("%w: root %v is marked", ErrCorrupt, n.key)
				}
				if n.key < h.min.key {
					return fmt.Errorf("%w: root %v is smaller than minimum %v", ErrCorrupt, n.key, h.min.key)
				}
			} else if n.key < r.parent.key {
				return fmt.Errorf("%w: child %v is smaller than parent %v", ErrCorrupt, n.key, r.parent.key)
			}
			if !h.owns(n) {
				return fmt.Errorf("%w: node %v is not owned by this heap", ErrCorrupt, n.key)
			}
			if got := ringLen(n.child); got != n.rank {
				return fmt.Errorf("%w: node %v has rank %d but %d children", ErrCorrupt, n.key, n.rank, got)
			}
			if n.child != nil {
				rings = append(rings, ringFrame[K, V]{start: n.child, parent: n})
			}

			count++
			length++
			if count > h.size {
				return fmt.Errorf("%w: more nodes reachable than size %d", ErrCorrupt, h.size)
			}
			n = n.right
			if n == r.start {
				break
			}
		}
		if r.parent != nil && length != r.parent.rank {
			return fmt.Errorf("%w: child ring of %v has %d members", ErrCorrupt, r.parent.key, length)
		}
	}

	if count != h.size {
		return fmt.Errorf("%w: %d nodes reachable but size %d", ErrCorrupt, count, h.size)
	}
	return nil
}

// ringFrame is a ring waiting to be checked together with its owner.
type ringFrame[K Key, V any] struct {
	start  *Node[K, V]
	parent *Node[K, V]
}

func ringLen[K Key, V any](start *Node[K, V]) int {
	if start == nil {
		return 0
	}
	length := 1
	for n := start.right; n != start; n = n.right {
		length++
	}
	return length
}
