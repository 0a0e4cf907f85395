// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface. It is the storage layer for the generalized
// time-expanded networks built by package gten and for the static flow
// computations in package flow.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 and
//     may be +Inf to model arcs that never bottleneck a cut
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrent readers
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	EdgesBetween(from, to string) []*Edge
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // outgoing edges, insertion order
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	AdjacencyList() map[string][]string
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // insertion order
//
//	// Cloning
//	CloneEmpty() *Graph // vertices + flags
//	Clone() *Graph      // deep copy
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN weight, or non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
