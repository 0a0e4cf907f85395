// SPDX-License-Identifier: MIT
//
// File: utils.go
// Role: Residual-network construction shared by Dinic and Edmonds–Karp, plus
//       conversion of the final residual state back into a *core.Graph.
// Determinism:
//   - Adjacency slices are sorted, so augmenting paths and the resulting
//     flow decomposition are reproducible for identical input.

package flow

import (
	"math"
	"sort"

	"github.com/katalvlaran/gten/core"
)

// residualNet is the mutable state of a max-flow run.
//
//	capMap[u][v]: remaining residual capacity u→v (may be +Inf).
//	net[u][v]:    net flow pushed u→v (net[v][u] == -net[u][v]).
//	orig[u][v]:   aggregated original capacity u→v.
//	adj[u]:       sorted IDs of every v with an arc u→v or v→u.
type residualNet struct {
	capMap map[string]map[string]float64
	net    map[string]map[string]float64
	orig   map[string]map[string]float64
	adj    map[string][]string
}

// buildCapMap constructs the residual network of g, aggregating parallel
// edges and ignoring loops.
//
// Steps:
//  1. Initialize one inner map per vertex (O(V)).
//  2. For each vertex u in sorted order:
//     a. Check ctx.Err() for early cancellation.
//     b. For each outgoing edge: skip self-loops, reject capacity < -Epsilon
//     with EdgeError, otherwise capMap[u][v] += weight.
//  3. Drop aggregated capacities ≤ Epsilon and build sorted adjacency,
//     including reverse directions so flow can be cancelled.
//
// Complexity:
//
//	Time:   O(V + E log d_max).
//	Memory: O(V + E).
func buildCapMap(g *core.Graph, opts FlowOptions) (*residualNet, error) {
	ctx := opts.Ctx
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	rn := &residualNet{
		capMap: make(map[string]map[string]float64, len(vertices)),
		net:    make(map[string]map[string]float64, len(vertices)),
		orig:   make(map[string]map[string]float64, len(vertices)),
		adj:    make(map[string][]string, len(vertices)),
	}
	for _, u := range vertices {
		rn.capMap[u] = make(map[string]float64)
		rn.net[u] = make(map[string]float64)
		rn.orig[u] = make(map[string]float64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			if e.From == e.To {
				continue
			}
			v := e.To
			if !e.Directed && e.To == u {
				v = e.From
			}
			if e.Weight < -opts.Epsilon {
				return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
			}
			rn.orig[u][v] += e.Weight
		}
		for v, c := range rn.orig[u] {
			if c <= opts.Epsilon {
				delete(rn.orig[u], v)
				continue
			}
			rn.capMap[u][v] = c
		}
	}

	seen := make(map[string]map[string]struct{}, len(vertices))
	link := func(a, b string) {
		if seen[a] == nil {
			seen[a] = make(map[string]struct{})
		}
		if _, ok := seen[a][b]; ok {
			return
		}
		seen[a][b] = struct{}{}
		rn.adj[a] = append(rn.adj[a], b)
	}
	for u, inner := range rn.orig {
		for v := range inner {
			link(u, v)
			link(v, u)
		}
	}
	for u := range rn.adj {
		sort.Strings(rn.adj[u])
	}

	return rn, nil
}

// push moves amount units of flow along u→v, updating residual capacities
// and the net-flow ledger. Infinite capacities stay infinite.
func (rn *residualNet) push(u, v string, amount float64) {
	rn.capMap[u][v] -= amount
	rn.capMap[v][u] += amount
	rn.net[u][v] += amount
	rn.net[v][u] -= amount
}

// arcFlow reports the flow carried by the original arc u→v: the positive
// part of the net flow, capped by the original capacity.
func (rn *residualNet) arcFlow(u, v string) float64 {
	f := math.Max(0, rn.net[u][v])
	if c := rn.orig[u][v]; f > c {
		f = c
	}

	return f
}

// buildCoreResidualFromCapMap constructs a new *core.Graph holding every
// residual arc with capacity strictly above Epsilon. Vertices and
// configuration flags are inherited from g via CloneEmpty.
//
// Complexity: O(V + E_res log E_res).
func buildCoreResidualFromCapMap(rn *residualNet, g *core.Graph, opts FlowOptions) (*core.Graph, error) {
	residual := g.CloneEmpty()
	for _, u := range residual.Vertices() {
		for _, v := range rn.adj[u] {
			if c := rn.capMap[u][v]; c > opts.Epsilon {
				if _, err := residual.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return residual, nil
}
