// SPDX-License-Identifier: MIT

package gten

import (
	"github.com/katalvlaran/gten/core"
)

// CutCapacity sums the weights of the edges of g whose tail is in from and
// whose head is in to. Both sets are deduplicated; IDs missing from g
// contribute nothing. An +Inf edge makes the result +Inf.
//
// Complexity: O(Σ deg(v)) over v ∈ from.
func CutCapacity(g *core.Graph, from, to []string) float64 {
	heads := make(map[string]struct{}, len(to))
	for _, w := range to {
		heads[w] = struct{}{}
	}
	tails := make(map[string]struct{}, len(from))
	var total float64
	for _, v := range from {
		if _, dup := tails[v]; dup {
			continue
		}
		tails[v] = struct{}{}
		edges, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if e.From != v {
				continue
			}
			if _, ok := heads[e.To]; ok {
				total += e.Weight
			}
		}
	}
	return total
}
