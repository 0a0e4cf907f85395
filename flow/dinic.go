// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/gten/core"
)

// Dinic computes the maximum flow from source to sink in the directed,
// weighted graph g using Dinic's algorithm (level graph + blocking flows).
// Capacities are float64 and may be +Inf.
//
// It returns:
//   - maxFlow       : the total flow value
//   - residualGraph : a *core.Graph of remaining capacities, inheriting the
//     configuration flags of g
//   - err           : ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     ErrUnboundedFlow or the context error
//
// Steps:
//  1. Normalize options and validate that source and sink exist.
//  2. Build the residual network via buildCapMap.
//  3. Repeat until the sink is unreachable:
//     a. BFS from source over arcs with capacity > Epsilon to assign levels.
//     b. DFS-based blocking flow along level-increasing arcs, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//  4. Convert the residual network back into a *core.Graph.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residualGraph *core.Graph, err error) {
	opts.normalize()
	rn, maxFlow, err := dinic(g, source, sink, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	residualGraph, err = buildCoreResidualFromCapMap(rn, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// dinic runs the algorithm and returns the final residual network.
// opts must already be normalized.
func dinic(g *core.Graph, source, sink string, opts FlowOptions) (*residualNet, float64, error) {
	ctx := opts.Ctx
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
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return nil, maxFlow, err
		}

		level := dinicLevels(rn, source, opts.Epsilon)
		if _, ok := level[sink]; !ok || source == sink {
			break
		}

		iter := make(map[string]int, len(level))
		for {
			if err = ctx.Err(); err != nil {
				return nil, maxFlow, err
			}
			pushed := dfsDinicPush(ctx, rn, level, iter, source, sink, math.Inf(1), opts.Epsilon)
			if pushed <= opts.Epsilon {
				break
			}
			if math.IsInf(pushed, 1) {
				return nil, maxFlow, ErrUnboundedFlow
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug().
				Str("algorithm", string(AlgorithmDinic)).
				Float64("pushed", pushed).
				Float64("total", maxFlow).
				Msg("augmented")
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
	if err = ctx.Err(); err != nil {
		return nil, maxFlow, err
	}

	return rn, maxFlow, nil
}

// dinicLevels assigns BFS distances from source over residual arcs with
// capacity above eps. Unreached vertices are absent from the map.
func dinicLevels(rn *residualNet, source string, eps float64) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range rn.adj[u] {
			if _, seen := level[v]; seen || rn.capMap[u][v] <= eps {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// dfsDinicPush pushes one blocking-flow path along the level graph and
// returns the amount sent. iter[u] only advances past arcs that are
// saturated or lead to dead ends, so every arc is scanned once per phase.
func dfsDinicPush(
	ctx context.Context,
	rn *residualNet,
	level map[string]int,
	iter map[string]int,
	u, sink string,
	available, eps float64,
) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	nbrs := rn.adj[u]
	for ; iter[u] < len(nbrs); iter[u]++ {
		v := nbrs[iter[u]]
		lv, ok := level[v]
		if !ok || lv != level[u]+1 {
			continue
		}
		capUV := rn.capMap[u][v]
		if capUV <= eps {
			continue
		}
		pushed := dfsDinicPush(ctx, rn, level, iter, v, sink, math.Min(available, capUV), eps)
		if pushed > eps {
			if !math.IsInf(pushed, 1) {
				rn.push(u, v, pushed)
			}

			return pushed
		}
	}

	return 0
}
