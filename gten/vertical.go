// SPDX-License-Identifier: MIT

package gten

import "math"

// BuildVertical returns the holdover arcs (v^i, v^{i+1}) for every node and
// every consecutive pair of layers: |nodes|·(k−1) rows of infinite
// capacity and length 1, node-major.
func BuildVertical(nodes []string, breakpoints []int) []Arc {
	k := len(breakpoints)
	if k < 2 {
		return nil
	}
	out := make([]Arc, 0, len(nodes)*(k-1))
	for _, v := range nodes {
		for i := 1; i < k; i++ {
			out = append(out, Arc{
				Tail:      TimeNode{Node: v, Layer: i},
				Head:      TimeNode{Node: v, Layer: i + 1},
				Capacity:  math.Inf(1),
				Length:    1,
				AlphaTail: breakpoints[i-1],
				AlphaHead: breakpoints[i],
				Kind:      Vertical,
			})
		}
	}
	return out
}
