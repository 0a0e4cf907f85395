package flow_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gten/core"
	"github.com/katalvlaran/gten/flow"
)

// buildLayeredGraph mimics the shape of a time-expanded network: `layers`
// copies of `width` nodes, +Inf vertical arcs between consecutive copies of
// a node, and random finite horizontal arcs from layer i to layers ≥ i.
func buildLayeredGraph(width, layers int, p, maxWeight float64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewFlowGraph()
	id := func(v, i int) string { return fmt.Sprintf("%d^%d", v, i) }
	for i := 0; i < layers; i++ {
		for v := 0; v < width; v++ {
			_ = g.AddVertex(id(v, i))
			if i+1 < layers {
				_, _ = g.AddEdge(id(v, i), id(v, i+1), math.Inf(1))
			}
		}
	}
	for i := 0; i < layers; i++ {
		for j := i; j < layers; j++ {
			for u := 0; u < width; u++ {
				for v := 0; v < width; v++ {
					if u != v && r.Float64() < p {
						_, _ = g.AddEdge(id(u, i), id(v, j), r.Float64()*maxWeight+1)
					}
				}
			}
		}
	}

	return g
}

// BenchmarkMinCut measures both algorithms behind the multi-terminal engine.
func BenchmarkMinCut(b *testing.B) {
	cases := []struct {
		name          string
		width, layers int
		edgeProb      float64
		seed          int64
	}{
		{"Small", 20, 3, 0.05, 42},
		{"Medium", 50, 4, 0.02, 4242},
		{"Large", 100, 5, 0.01, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			g := buildLayeredGraph(tc.width, tc.layers, tc.edgeProb, 10, tc.seed)
			var sources, sinks []string
			for i := 0; i < tc.layers; i++ {
				sources = append(sources, fmt.Sprintf("0^%d", i))
				sinks = append(sinks, fmt.Sprintf("%d^%d", tc.width-1, i))
			}

			for _, alg := range []flow.Algorithm{flow.AlgorithmEdmondsKarp, flow.AlgorithmDinic} {
				eng, err := flow.NewEngine(alg, flow.DefaultOptions())
				if err != nil {
					b.Fatal(err)
				}
				b.Run(string(alg), func(b *testing.B) {
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						_, _ = eng.MinCut(context.Background(), g, sources, sinks)
					}
				})
			}
		})
	}
}
