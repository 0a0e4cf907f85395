// Package dijkstra_test validates input checks, multi-source distances,
// MaxDistance, edge filters and infinite weights.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gten/core"
	"github.com/katalvlaran/gten/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewFlowGraph())
	if !errors.Is(err, dijkstra.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrUnweightedGraph) {
		t.Fatalf("expected ErrUnweightedGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewFlowGraph(), dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("A", "B", -1)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_BadMaxDistance(t *testing.T) {
	g := core.NewFlowGraph()
	_ = g.AddVertex("A")
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	if !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Fatalf("expected ErrBadMaxDistance, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

// diamond: A→B 1, A→C 4, B→C 2, C→D 1, B→D 5.
func diamond() *core.Graph {
	g := core.NewFlowGraph()
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"C", "D", 1}, {"B", "D", 5},
	} {
		_, _ = g.AddEdge(e.from, e.to, e.w)
	}
	return g
}

func TestDijkstra_Diamond(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(diamond(), dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}
	for v, d := range want {
		if dist[v] != d {
			t.Errorf("dist[%s] = %v, want %v", v, dist[v], d)
		}
	}
	if prev["D"] != "C" || prev["C"] != "B" || prev["B"] != "A" || prev["A"] != "" {
		t.Errorf("unexpected predecessors %v", prev)
	}
}

func TestDijkstra_MultiSource(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(diamond(), dijkstra.Sources("A", "C"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("prev must be nil without WithReturnPath")
	}
	if dist["C"] != 0 || dist["D"] != 1 || dist["B"] != 1 {
		t.Errorf("unexpected distances %v", dist)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := diamond()
	_ = g.AddVertex("Z")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["Z"], 1) || !math.IsInf(dist["A"], 1) {
		t.Errorf("expected +Inf for unreachable vertices, got %v", dist)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(diamond(), dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 3 || !math.IsInf(dist["D"], 1) {
		t.Errorf("unexpected distances %v", dist)
	}
}

func TestDijkstra_FilterEdge(t *testing.T) {
	skipBC := func(from, to string, _ float64) bool { return !(from == "B" && to == "C") }
	dist, _, err := dijkstra.Dijkstra(diamond(), dijkstra.Source("A"), dijkstra.WithFilterEdge(skipBC))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 4 || dist["D"] != 5 {
		t.Errorf("unexpected distances %v", dist)
	}
}

func TestDijkstra_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 2)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 4 {
		t.Errorf("dist[A] = %v, want 4", dist["A"])
	}
}

func TestDijkstra_InfiniteWeight(t *testing.T) {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("A", "B", math.Inf(1))
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["B"], 1) {
		t.Errorf("dist[B] = %v, want +Inf", dist["B"])
	}
}
