// SPDX-License-Identifier: MIT

package pipeline

import (
	"math"

	"github.com/katalvlaran/gten/core"
	"github.com/katalvlaran/gten/dijkstra"
	"github.com/katalvlaran/gten/network"
)

// EarliestArrival returns the shortest transit time from any source to any
// sink over arcs with positive capacity, or +Inf when no sink is reachable.
// No flow can arrive before it, so a horizon at or below it admits only
// the zero cut over time.
func EarliestArrival(net *network.Network, terms network.Terminals) (float64, error) {
	g := core.NewFlowGraph()
	for _, v := range terms.All() {
		if err := g.AddVertex(v); err != nil {
			return 0, err
		}
	}
	for _, a := range net.Arcs {
		if net.Capacity[a] <= 0 {
			continue
		}
		if _, err := g.AddEdge(a.Tail, a.Head, net.TransitTime[a]); err != nil {
			return 0, err
		}
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Sources(terms.Sources...))
	if err != nil {
		return 0, err
	}
	best := math.Inf(1)
	for _, t := range terms.Sinks {
		best = math.Min(best, dist[t])
	}
	return best, nil
}
