package fibheap

// Stats counts the structural work done by a heap. Links, Cuts and
// RootsScanned together measure the actual cost that the amortized bounds
// cover.
type Stats struct {
	Inserts        int
	Extracts       int
	DecreaseKeys   int
	Deletes        int
	Melds          int
	Consolidations int
	RootsScanned   int // Roots visited by consolidate
	Links          int // Roots made children of other roots
	Cuts           int // Non-roots moved to the root ring
	Marks          int // Mark bits set by cascading cuts
}

// Work returns the total structural work recorded.
func (s Stats) Work() int {
	return s.RootsScanned + s.Links + s.Cuts
}

// Potential returns roots + 2*marked for the current forest.
func (h *Heap[K, V]) Potential() int {
	potential := 0
	h.each(func(n *Node[K, V]) {
		if n.parent == nil {
			potential++
		}
		if n.marked {
			potential += 2
		}
	})
	return potential
}

// each calls fn on every node in the forest using an explicit worklist of
// rings.
func (h *Heap[K, V]) each(fn func(n *Node[K, V])) {
	if h.min == nil {
		return
	}
	rings := []*Node[K, V]{h.min}
	for len(rings) > 0 {
		start := rings[len(rings)-1]
		rings = rings[:len(rings)-1]
		for n := start; ; {
			if n.child != nil {
				rings = append(rings, n.child)
			}
			fn(n)
			n = n.right
			if n == start {
				break
			}
		}
	}
}
