// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/gten/core"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: ErrSourceNotFound, ErrSinkNotFound, EdgeError, ErrUnboundedFlow
//     or the context error
//
// Options:
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//   - Logger:  one debug event per augmenting path
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
	opts.normalize()
	rn, maxFlow, err := edmondsKarp(g, source, sink, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	residual, err = buildCoreResidualFromCapMap(rn, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// edmondsKarp runs the algorithm on normalized opts and returns the final
// residual network.
func edmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*residualNet, float64, error) {
	if !g.HasVertex(source) {
		return nil, 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, 0, ErrSinkNotFound
	}

	rn, err := buildCapMap(g, opts)
	if err != nil {
		return nil, 0, err
	}

	var maxFlow float64
	for {
		path, bottle, err := bfsAugmentingPath(opts.Ctx, rn, source, sink, opts.Epsilon)
		if err != nil {
			return nil, maxFlow, err
		}
		if len(path) == 0 {
			break
		}
		if math.IsInf(bottle, 1) {
			return nil, maxFlow, ErrUnboundedFlow
		}
		for i := 0; i < len(path)-1; i++ {
			rn.push(path[i], path[i+1], bottle)
		}
		maxFlow += bottle
		opts.Logger.Debug().
			Str("algorithm", string(AlgorithmEdmondsKarp)).
			Strs("path", path).
			Float64("pushed", bottle).
			Float64("total", maxFlow).
			Msg("augmented")
	}

	return rn, maxFlow, nil
}

// bfsAugmentingPath finds the shortest (fewest-arc) path source→sink whose
// residual arcs all exceed eps, and returns it with its bottleneck.
// A nil path means the sink is unreachable.
func bfsAugmentingPath(
	ctx context.Context,
	rn *residualNet,
	source, sink string,
	eps float64,
) ([]string, float64, error) {
	parent := make(map[string]string)
	bottleneck := map[string]float64{source: math.Inf(1)}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		u := queue[i]
		for _, v := range rn.adj[u] {
			if _, seen := bottleneck[v]; seen {
				continue
			}
			c := rn.capMap[u][v]
			if c <= eps {
				continue
			}
			parent[v] = u
			bottleneck[v] = math.Min(bottleneck[u], c)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
					path[l], path[r] = path[r], path[l]
				}

				return path, bottleneck[sink], nil
			}
			queue = append(queue, v)
		}
	}

	return nil, 0, nil
}
