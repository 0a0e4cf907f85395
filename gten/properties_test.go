package gten_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/gten/builder"
	"github.com/katalvlaran/gten/core"
	"github.com/katalvlaran/gten/gten"
	"github.com/katalvlaran/gten/network"
)

// randomNetwork builds a seeded network on n nodes with small integer
// capacities and transit times.
func randomNetwork(n int, seed int64) *network.Network {
	net, _, err := builder.BuildNetwork(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithUniformCapacity(0, 4),
			builder.WithUniformTransit(0, 3),
		},
		builder.RandomSparse(n, 0.3, 1, 1),
	)
	if err != nil {
		panic(err)
	}
	return net
}

// randomBreakpoints returns k strictly increasing values starting at 0.
func randomBreakpoints(k int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	out := make([]int, k)
	for i := 1; i < k; i++ {
		out[i] = out[i-1] + 1 + r.Intn(4)
	}
	return out
}

func TestBuildProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 40
	properties := gopter.NewProperties(params)

	properties.Property("row counts and non-negative capacities", prop.ForAll(
		func(n, k int, seed int64) bool {
			net := randomNetwork(n, seed)
			bps := randomBreakpoints(k, seed)
			g, err := gten.Build(context.Background(), net, bps)
			if err != nil {
				return false
			}
			st := g.Stats()
			if st.Vertical != len(net.Nodes())*(k-1) || st.Horizontal != len(net.Arcs)*k*(k+1)/2 {
				return false
			}
			if len(gten.BuildVertical(net.Nodes(), bps)) != st.Vertical {
				return false
			}
			for _, r := range g.Rows() {
				if r.Capacity < 0 || r.Length != r.Head.Layer-r.Tail.Layer {
					return false
				}
				if r.Kind == gten.Horizontal && r.Head.Layer == k && r.Capacity != 0 {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 5),
		gen.IntRange(1, 5),
		gen.Int64Range(1, 1<<30),
	))

	properties.Property("cut capacity is additive over disjoint tail sets", prop.ForAll(
		func(n int, seed int64) bool {
			r := rand.New(rand.NewSource(seed))
			g := core.NewFlowGraph()
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("x%d", i)
				_ = g.AddVertex(ids[i])
			}
			for i := range ids {
				for j := range ids {
					if i != j && r.Intn(2) == 0 {
						_, _ = g.AddEdge(ids[i], ids[j], float64(r.Intn(10)))
					}
				}
			}
			var a, b []string
			for _, id := range ids {
				if r.Intn(2) == 0 {
					a = append(a, id)
				} else {
					b = append(b, id)
				}
			}
			to := ids[:n/2+1]
			whole := gten.CutCapacity(g, append(append([]string{}, a...), b...), to)
			return whole == gten.CutCapacity(g, a, to)+gten.CutCapacity(g, b, to)
		},
		gen.IntRange(2, 8),
		gen.Int64Range(1, 1<<30),
	))

	properties.TestingRun(t)
}

func TestCutCapacityDeduplicates(t *testing.T) {
	g := core.NewFlowGraph()
	_, _ = g.AddEdge("a", "b", 2)
	_, _ = g.AddEdge("a", "c", 3)
	_, _ = g.AddEdge("c", "b", 5)

	if got := gten.CutCapacity(g, []string{"a", "a", "missing"}, []string{"b", "b", "c"}); got != 5 {
		t.Fatalf("CutCapacity = %v, want 5", got)
	}
	if got := gten.CutCapacity(g, nil, []string{"b"}); got != 0 {
		t.Fatalf("empty tail set: got %v", got)
	}
}
