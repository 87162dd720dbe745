// Package graph provides adjacency-matrix utilities for small directed
// graphs: degree vectors, sink/source pruning, exhaustive subgraph
// enumeration, random G(n,m) generation and conversion to and from gonum
// graphs.
//
// A graph with n vertices is an n x n *mat.Dense where entry (i, j) holds
// the number (or weight) of arcs from vertex i to vertex j. A companion
// active-vertex vector marks which vertices are still part of the graph
// with a non-zero entry.
//
// # Subgraph Enumeration
//
// IterateSubgraphs removes one arc at a time, strips every vertex left
// without an incoming or outgoing arc, and recurses. Each distinct state is
// visited once:
//
//	g, _ := graph.RandomDirected(10, 20, graph.WithSeed(2))
//	subs, err := graph.IterateSubgraphs(graph.ToMatrix(g),
//	    graph.WithMaxEdges(10),
//	    graph.WithRequiredVertices(2),
//	)
//
// IterateSubgraphsParallel returns the same set of subgraphs, fanning the
// top-level branches out over a worker pool.
package graph
