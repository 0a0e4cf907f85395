// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Configuration flags are immutable after NewGraph, so getters only need muVert.

package core

import "math"

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool

	VertexCount       int
	EdgeCount         int
	InfiniteEdgeCount int
	// TotalFiniteWeight sums the weights of all finite edges.
	TotalFiniteWeight float64
}

// Stats produces a deterministic snapshot of configuration flags and catalog
// sizes, classifying edges by whether their weight is +Inf.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, scan the edge catalog once.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if math.IsInf(e.Weight, 1) {
			stats.InfiniteEdgeCount++
			continue
		}
		stats.TotalFiniteWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
