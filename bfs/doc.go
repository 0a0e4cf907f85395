// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from one or more starts.
//   - Returns a Result containing Order, Depth and Parent.
//   - Edge filtering (WithFilterEdge / WithMinWeight) restricts traversal to
//     admissible edges, e.g. arcs with positive residual capacity.
//   - Honors MaxDepth (d>0) and context cancellation.
//
// Determinism
//
//	core.Neighbors returns edges in insertion order and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
