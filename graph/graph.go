package graph

import (
	"errors"
	"fmt"
)

var (
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")
	ErrNegativeWeight   = errors.New("graph: negative edge weight")
)

// Edge is a weighted edge from From to To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is a weighted graph over vertices 0..Order()-1 stored as adjacency
// lists.
type Graph struct {
	adj [][]Edge
}

// New creates a graph with n vertices and no edges.
func New(n int) *Graph {
	return &Graph{adj: make([][]Edge, n)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

// AddEdge adds a directed edge. Weights must be non-negative.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("%w: %v on %d->%d", ErrNegativeWeight, weight, from, to)
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})
	return nil
}

// AddUndirectedEdge adds the edge in both directions.
func (g *Graph) AddUndirectedEdge(a, b int, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	return g.AddEdge(b, a, weight)
}

// Edges returns the edges leaving v.
func (g *Graph) Edges(v int) []Edge {
	return g.adj[v]
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	return nil
}
