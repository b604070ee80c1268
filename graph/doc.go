// Package graph provides weighted graphs and the classic algorithms that rely
// on cheap key decreases: Dijkstra's single-source shortest paths and Prim's
// minimum spanning forest. Both run in O(E + V log V) using a Fibonacci heap.
//
// Basic usage:
//
//	g := graph.New(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 7)
//
//	paths, err := graph.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(paths.Dist[2], paths.PathTo(2)) // 5 [0 1 2]
package graph
