package fibheap

import "github.com/davidvella/fibheap/monitoring"

// consolidate links roots of equal rank until every rank occurs at most once
// in the root ring, then recomputes the minimum. It also clears the stale
// parent pointers and marks left on children promoted by ExtractMin or Delete.
func (h *Heap[K, V]) consolidate() {
	if h.min == nil {
		return
	}

	var roots []*Node[K, V]
	for n := h.min; ; {
		roots = append(roots, n)
		n = n.right
		if n == h.min {
			break
		}
	}
	h.stats.Consolidations++
	h.stats.RootsScanned += len(roots)

	// ranked[r] is the root of rank r seen so far in this pass.
	ranked := make([]*Node[K, V], 0, 16)
	links := 0
	for _, n := range roots {
		n.parent = nil
		n.marked = false
		for n.rank < len(ranked) && ranked[n.rank] != nil {
			other := ranked[n.rank]
			ranked[n.rank] = nil
			n = h.link(n, other)
			links++
		}
		for len(ranked) <= n.rank {
			ranked = append(ranked, nil)
		}
		ranked[n.rank] = n
	}

	h.min = nil
	survivors := 0
	for _, n := range ranked {
		if n == nil {
			continue
		}
		survivors++
		if h.min == nil || n.key < h.min.key {
			h.min = n
		}
	}

	if h.opts.logger != nil {
		h.opts.logger.Log(monitoring.DEBUG, "consolidate", "consolidated root ring", map[string]interface{}{
			"roots_before": len(roots),
			"roots_after":  survivors,
			"links":        links,
		})
	}
}

// link makes the root with the larger key a child of the other and returns
// the winner. Ties go to a.
func (h *Heap[K, V]) link(a, b *Node[K, V]) *Node[K, V] {
	winner, loser := a, b
	if b.key < a.key {
		winner, loser = b, a
	}

	unlink(loser)
	loser.detach()
	loser.marked = false
	loser.parent = winner
	if winner.child == nil {
		winner.child = loser
	} else {
		splice(winner.child, loser)
	}
	winner.rank++

	h.stats.Links++
	return winner
}

// removeChild takes n out of its parent's child ring and detaches it.
func (h *Heap[K, V]) removeChild(n *Node[K, V]) {
	parent := n.parent
	rest := unlink(n)
	if parent.child == n {
		parent.child = rest
	}
	parent.rank--
	n.detach()
}

// cut moves the non-root n to the root ring.
func (h *Heap[K, V]) cut(n *Node[K, V]) {
	h.removeChild(n)
	n.marked = false
	h.addRoot(n)
	h.stats.Cuts++
}

// cascadingCut walks up from n, marking the first unmarked non-root it meets
// and cutting every marked one on the way.
func (h *Heap[K, V]) cascadingCut(n *Node[K, V]) {
	cuts := 0
	for n.parent != nil {
		if !n.marked {
			n.marked = true
			h.stats.Marks++
			break
		}
		parent := n.parent
		h.cut(n)
		cuts++
		n = parent
	}

	if cuts > 0 && h.opts.logger != nil {
		h.opts.logger.Log(monitoring.DEBUG, "cascading_cut", "promoted marked ancestors", map[string]interface{}{
			"cuts": cuts,
		})
	}
}
