// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gten/core"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexA), true, "HasVertex(A)")

	// duplicate insert is a no-op
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A) duplicate")
	MustEqualInt(t, g.VertexCount(), 1, "VertexCount after duplicate")

	MustErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID, "RemoveVertex(empty)")
	MustErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound, "RemoveVertex(missing)")
	MustNoError(t, g.RemoveVertex(VertexA), "RemoveVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexA), false, "HasVertex(A) after remove")
}

// TestGraph_AddEdgeConstraints verifies weight, loop and multi-edge policies.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	unweighted := core.NewGraph(core.WithDirected(true))
	_, err := unweighted.AddEdge(VertexA, VertexB, Weight1)
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge weight on unweighted")

	g := core.NewFlowGraph()
	_, err = g.AddEdge(VertexA, VertexB, math.NaN())
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge NaN")
	_, err = g.AddEdge(VertexA, VertexA, Weight1)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge loop")
	_, err = g.AddEdge(VertexEmpty, VertexA, Weight1)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge empty")

	_, err = g.AddEdge(VertexA, VertexB, Weight2)
	MustNoError(t, err, "AddEdge(A,B)")
	_, err = g.AddEdge(VertexA, VertexB, Weight5)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge parallel")

	// +Inf is a legal capacity
	id, err := g.AddEdge(VertexB, VertexC, math.Inf(1))
	MustNoError(t, err, "AddEdge(B,C,+Inf)")
	e, err := g.GetEdge(id)
	MustNoError(t, err, "GetEdge")
	MustEqualBool(t, e.Infinite(), true, "Edge.Infinite")
}

// TestGraph_DirectedNeighbors verifies outgoing-only neighborhoods on directed graphs.
func TestGraph_DirectedNeighbors(t *testing.T) {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge(VertexA, VertexB, Weight1)
	_, _ = g.AddEdge(VertexA, VertexC, Weight2)
	_, _ = g.AddEdge(VertexC, VertexA, Weight5)

	ids, err := g.NeighborIDs(VertexA)
	MustNoError(t, err, "NeighborIDs(A)")
	MustEqualStrings(t, ids, []string{VertexB, VertexC}, "NeighborIDs(A)")

	ids, err = g.NeighborIDs(VertexB)
	MustNoError(t, err, "NeighborIDs(B)")
	MustEqualInt(t, len(ids), 0, "NeighborIDs(B)")

	_, err = g.Neighbors(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(missing)")

	MustEqualBool(t, g.HasEdge(VertexC, VertexA), true, "HasEdge(C,A)")
	MustEqualBool(t, g.HasEdge(VertexB, VertexA), false, "HasEdge(B,A)")
}

// TestGraph_UndirectedMirror verifies that undirected edges are visible from both ends.
func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	id, err := g.AddEdge(VertexA, VertexB, Weight2)
	MustNoError(t, err, "AddEdge(A,B)")

	MustEqualBool(t, g.HasEdge(VertexB, VertexA), true, "mirror present")
	ids, _ := g.NeighborIDs(VertexB)
	MustEqualStrings(t, ids, []string{VertexA}, "NeighborIDs(B)")

	MustNoError(t, g.RemoveEdge(id), "RemoveEdge")
	MustEqualBool(t, g.HasEdge(VertexB, VertexA), false, "mirror removed")
	MustErrorIs(t, g.RemoveEdge(id), core.ErrEdgeNotFound, "RemoveEdge twice")
}

// TestGraph_EdgesOrder verifies numeric edge-ID ordering beyond nine edges.
func TestGraph_EdgesOrder(t *testing.T) {
	g := NewGraphFull()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(VertexA, VertexB, float64(i))
		MustNoError(t, err, "AddEdge")
	}
	edges := g.Edges()
	MustEqualInt(t, len(edges), 12, "len(Edges)")
	for i, e := range edges {
		if e.Weight != float64(i) {
			t.Fatalf("Edges()[%d].Weight = %g; want %d", i, e.Weight, i)
		}
	}
	MustEqualInt(t, len(g.EdgesBetween(VertexA, VertexB)), 12, "EdgesBetween")
}

// TestGraph_CloneIsDeep verifies Clone copies edges and CloneEmpty copies only vertices.
func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewFlowGraph()
	id, _ := g.AddEdge(VertexA, VertexB, Weight2)

	c := g.Clone()
	e, err := c.GetEdge(id)
	MustNoError(t, err, "clone GetEdge")
	e.Weight = 99

	orig, _ := g.GetEdge(id)
	if orig.Weight != Weight2 {
		t.Fatalf("Clone shares edge storage: original weight %g", orig.Weight)
	}

	empty := g.CloneEmpty()
	MustEqualInt(t, empty.VertexCount(), 2, "CloneEmpty vertices")
	MustEqualInt(t, empty.EdgeCount(), 0, "CloneEmpty edges")
	MustEqualBool(t, empty.Directed(), true, "CloneEmpty keeps flags")

	// IDs on the clone continue the sequence
	nid, _ := empty.AddEdge(VertexB, VertexA, Weight1)
	if nid == id {
		t.Fatalf("CloneEmpty reused edge ID %s", nid)
	}
}

// TestGraph_RemoveVertexDropsIncidentEdges verifies cascade deletion.
func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge(VertexA, VertexB, Weight1)
	_, _ = g.AddEdge(VertexB, VertexC, Weight1)
	_, _ = g.AddEdge(VertexC, VertexA, Weight1)

	MustNoError(t, g.RemoveVertex(VertexB), "RemoveVertex(B)")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount after remove")
	MustEqualBool(t, g.HasEdge(VertexC, VertexA), true, "unrelated edge kept")
}

// TestGraph_Stats verifies the infinite/finite classification.
func TestGraph_Stats(t *testing.T) {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge(VertexA, VertexB, Weight2)
	_, _ = g.AddEdge(VertexB, VertexC, math.Inf(1))
	_, _ = g.AddEdge(VertexC, VertexD, Weight5)

	s := g.Stats()
	MustEqualInt(t, s.VertexCount, 4, "VertexCount")
	MustEqualInt(t, s.EdgeCount, 3, "EdgeCount")
	MustEqualInt(t, s.InfiniteEdgeCount, 1, "InfiniteEdgeCount")
	if s.TotalFiniteWeight != 7 {
		t.Fatalf("TotalFiniteWeight = %g; want 7", s.TotalFiniteWeight)
	}

	g.Clear()
	MustEqualInt(t, g.VertexCount(), 0, "VertexCount after Clear")
	MustEqualBool(t, g.Weighted(), true, "flags survive Clear")
}

// TestGraph_FlagsAndAdjacencyList verifies the configuration accessors and
// the adjacency snapshot, including isolated vertices.
func TestGraph_FlagsAndAdjacencyList(t *testing.T) {
	fg := core.NewFlowGraph()
	MustEqualBool(t, fg.Looped(), false, "Looped on flow graph")
	MustEqualBool(t, fg.Multigraph(), false, "Multigraph on flow graph")

	g := NewGraphFull()
	MustEqualBool(t, g.Looped(), true, "Looped on full graph")
	MustEqualBool(t, g.Multigraph(), true, "Multigraph on full graph")

	_, _ = g.AddEdge(VertexA, VertexC, Weight1)
	_, _ = g.AddEdge(VertexA, VertexB, Weight2)
	_, _ = g.AddEdge(VertexA, VertexB, Weight5)
	_, _ = g.AddEdge(VertexB, VertexB, Weight1)
	MustNoError(t, g.AddVertex(VertexD), "AddVertex(D)")

	adj := g.AdjacencyList()
	MustEqualInt(t, len(adj), 4, "AdjacencyList keys")
	MustEqualStrings(t, adj[VertexA], []string{VertexB, VertexC}, "AdjacencyList[A]")
	MustEqualStrings(t, adj[VertexB], []string{VertexB}, "AdjacencyList[B]")
	MustEqualInt(t, len(adj[VertexC]), 0, "AdjacencyList[C]")
	if _, ok := adj[VertexD]; !ok {
		t.Fatalf("AdjacencyList missing isolated vertex %q", VertexD)
	}
}
