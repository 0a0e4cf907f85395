// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: TimeNode, arc rows of the generalized time-expanded network, and
// build statistics.

package gten

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gten/network"
)

// ErrBreakpoints is returned when a breakpoint list is empty, unsorted,
// duplicated or negative.
var ErrBreakpoints = errors.New("gten: invalid breakpoints")

// TimeNode is the copy of a network node at one layer. Layers are numbered
// 1..k for k breakpoints; layer i stands for the breakpoint T̃[i-1].
type TimeNode struct {
	Node  string
	Layer int
}

// ID renders the time node as "v^i", the vertex ID used in graphs.
func (n TimeNode) ID() string { return fmt.Sprintf("%s^%d", n.Node, n.Layer) }

// Kind separates holdover arcs from arcs derived from network arcs.
type Kind int

const (
	// Vertical arcs join v^i to v^{i+1}; they have infinite capacity.
	Vertical Kind = iota
	// Horizontal arcs join v^i to w^j (i ≤ j) for a network arc (v,w).
	Horizontal
)

func (k Kind) String() string {
	if k == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Arc is one row of the GTEN arc table.
type Arc struct {
	Tail, Head TimeNode

	// Capacity is the arc capacity; +Inf for vertical arcs.
	Capacity float64

	// Length is Head.Layer − Tail.Layer.
	Length int

	// AlphaTail and AlphaHead are the breakpoint values of the endpoint layers.
	AlphaTail, AlphaHead int

	Kind Kind

	// Original is the network arc a horizontal row was derived from; zero
	// for vertical rows.
	Original network.Arc

	// OriginalCapacity and OriginalTransitTime copy the network attributes
	// of Original.
	OriginalCapacity    float64
	OriginalTransitTime float64
}

// BuildStats summarises a window-capacity build.
type BuildStats struct {
	// Passes is the number of capacity passes run (one per arc length).
	Passes int

	// Clipped counts horizontal capacities whose window subtraction went
	// negative and were set to zero.
	Clipped int

	// Vertical and Horizontal count the rows of each kind.
	Vertical   int
	Horizontal int
}

// checkBreakpoints requires a non-empty, strictly increasing, non-negative list.
func checkBreakpoints(bps []int) error {
	if len(bps) == 0 {
		return fmt.Errorf("%w: empty list", ErrBreakpoints)
	}
	for i, b := range bps {
		if b < 0 {
			return fmt.Errorf("%w: negative value %d", ErrBreakpoints, b)
		}
		if i > 0 && bps[i-1] >= b {
			return fmt.Errorf("%w: %d follows %d", ErrBreakpoints, b, bps[i-1])
		}
	}
	return nil
}
