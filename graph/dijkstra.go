package graph

import (
	"math"

	"github.com/davidvella/fibheap"
)

// Paths holds single-source shortest path distances and the predecessor tree.
type Paths struct {
	Source int
	Dist   []float64 // +Inf for unreachable vertices
	Prev   []int     // -1 for the source and unreachable vertices
}

// PathTo returns the vertices on the shortest path from Source to v, or nil if
// v is unreachable.
func (p *Paths) PathTo(v int) []int {
	if v < 0 || v >= len(p.Dist) || math.IsInf(p.Dist[v], 1) {
		return nil
	}
	var path []int
	for ; v != -1; v = p.Prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Dijkstra computes shortest paths from source. Vertices enter the heap when
// first reached and are lowered with DecreaseKey on every improvement.
func Dijkstra(g *Graph, source int, opts ...fibheap.Option) (*Paths, error) {
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}

	n := g.Order()
	paths := &Paths{
		Source: source,
		Dist:   make([]float64, n),
		Prev:   make([]int, n),
	}
	for v := range paths.Dist {
		paths.Dist[v] = math.Inf(1)
		paths.Prev[v] = -1
	}

	h := fibheap.New[float64, int](opts...)
	handles := make([]*fibheap.Node[float64, int], n)
	settled := make([]bool, n)

	paths.Dist[source] = 0
	var err error
	if handles[source], err = h.Push(source, 0); err != nil {
		return nil, err
	}

	for !h.Empty() {
		node, err := h.ExtractMin()
		if err != nil {
			return nil, err
		}
		u := node.Value()
		handles[u] = nil
		settled[u] = true

		for _, e := range g.adj[u] {
			if settled[e.To] {
				continue
			}
			d := paths.Dist[u] + e.Weight
			if d >= paths.Dist[e.To] {
				continue
			}
			paths.Dist[e.To] = d
			paths.Prev[e.To] = u
			if handles[e.To] == nil {
				if handles[e.To], err = h.Push(e.To, d); err != nil {
					return nil, err
				}
				continue
			}
			if err := h.DecreaseKey(handles[e.To], d); err != nil {
				return nil, err
			}
		}
	}

	return paths, nil
}
