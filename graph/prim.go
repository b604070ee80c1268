package graph

import (
	"math"

	"github.com/davidvella/fibheap"
)

// SpanningForest is a minimum spanning forest of an undirected graph.
type SpanningForest struct {
	Edges  []Edge
	Weight float64
}

// Prim computes a minimum spanning forest, growing one tree per connected
// component. Edges are read as undirected, so graphs should be built with
// AddUndirectedEdge.
func Prim(g *Graph, opts ...fibheap.Option) (*SpanningForest, error) {
	n := g.Order()
	forest := &SpanningForest{}

	best := make([]float64, n)
	via := make([]int, n)
	inTree := make([]bool, n)
	handles := make([]*fibheap.Node[float64, int], n)
	for v := range best {
		best[v] = math.Inf(1)
		via[v] = -1
	}

	h := fibheap.New[float64, int](opts...)
	for root := 0; root < n; root++ {
		if inTree[root] {
			continue
		}
		best[root] = 0
		var err error
		if handles[root], err = h.Push(root, 0); err != nil {
			return nil, err
		}

		for !h.Empty() {
			node, err := h.ExtractMin()
			if err != nil {
				return nil, err
			}
			u := node.Value()
			handles[u] = nil
			inTree[u] = true
			if via[u] != -1 {
				forest.Edges = append(forest.Edges, Edge{From: via[u], To: u, Weight: best[u]})
				forest.Weight += best[u]
			}

			for _, e := range g.adj[u] {
				if inTree[e.To] || e.Weight >= best[e.To] {
					continue
				}
				best[e.To] = e.Weight
				via[e.To] = u
				if handles[e.To] == nil {
					if handles[e.To], err = h.Push(e.To, e.Weight); err != nil {
						return nil, err
					}
					continue
				}
				if err := h.DecreaseKey(handles[e.To], e.Weight); err != nil {
					return nil, err
				}
			}
		}
	}

	return forest, nil
}
