package flow_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gten/core"
	"github.com/katalvlaran/gten/flow"
)

// ExampleDinic_simple demonstrates Dinic on a single-edge network.
// Graph: s→t with capacity 7
func ExampleDinic_simple() {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("s", "t", 7)

	maxFlow, _, _ := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 7
}

// ExampleDinic_medium demonstrates Dinic on a network with two augmenting paths.
// Graph:
//
//	s→a(5)→t(4)
//	s→b(3)→t(6)
//
// Expected max-flow = 4 + 3 = 7
func ExampleDinic_medium() {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("s", "a", 5)
	_, _ = g.AddEdge("a", "t", 4)
	_, _ = g.AddEdge("s", "b", 3)
	_, _ = g.AddEdge("b", "t", 6)

	maxFlow, _, _ := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 7
}

// ExampleEdmondsKarp shows an infinite arc that is bottlenecked downstream.
func ExampleEdmondsKarp() {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("s", "a", math.Inf(1))
	_, _ = g.AddEdge("a", "t", 2.5)

	maxFlow, _, _ := flow.EdmondsKarp(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 2.5
}

// ExampleEngine_MinCut computes a two-source, one-sink minimum cut.
func ExampleEngine_MinCut() {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("s1", "m", 2)
	_, _ = g.AddEdge("s2", "m", 2)
	_, _ = g.AddEdge("m", "t", 3)

	eng, _ := flow.NewEngine(flow.AlgorithmDinic, flow.DefaultOptions())
	res, _ := eng.MinCut(context.Background(), g, []string{"s1", "s2"}, []string{"t"})
	fmt.Println(res.Value, res.SourceSide, res.CutEdges)
	// Output:
	// 3 [m s1 s2] [[m t]]
}
