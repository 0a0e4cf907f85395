// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Arc, Network and Terminals: the dynamic flow network a caller supplies.
// Determinism:
//   - Arcs keep insertion order; Nodes() is sorted.
// Concurrency:
//   - A Network is built by one goroutine and treated as read-only afterwards;
//     every downstream component only reads it.

package network

import (
	"fmt"
	"math"
	"sort"
)

// Inf is the capacity sentinel for arcs that must never bottleneck a cut.
var Inf = math.Inf(1)

// Arc is an ordered (tail, head) pair. Arcs are keyed uniquely by the pair;
// parallel arcs are not supported.
type Arc struct {
	Tail string
	Head string
}

// String renders the arc as "(tail,head)".
func (a Arc) String() string { return fmt.Sprintf("(%s,%s)", a.Tail, a.Head) }

// Network is a directed graph whose arcs carry a capacity per time unit and
// a transit time.
type Network struct {
	// Arcs lists every arc in insertion order.
	Arcs []Arc

	// Capacity maps each arc to its capacity (≥ 0, possibly Inf).
	Capacity map[Arc]float64

	// TransitTime maps each arc to its transit time (≥ 0 for input arcs).
	TransitTime map[Arc]float64
}

// New returns an empty Network ready for AddArc.
func New() *Network {
	return &Network{
		Capacity:    make(map[Arc]float64),
		TransitTime: make(map[Arc]float64),
	}
}

// AddArc appends the arc tail→head with the given capacity and transit time.
//
// Errors (all ErrMalformedInput):
//   - empty tail or head, self-loop
//   - duplicate (tail, head) pair
//   - NaN or negative capacity, NaN or negative transit time
func (n *Network) AddArc(tail, head string, capacity, transit float64) error {
	const op = "AddArc"
	a := Arc{Tail: tail, Head: head}
	if err := checkArc(op, a, capacity, transit, true); err != nil {
		return err
	}
	if n.Capacity == nil {
		n.Capacity = make(map[Arc]float64)
	}
	if n.TransitTime == nil {
		n.TransitTime = make(map[Arc]float64)
	}
	if _, dup := n.Capacity[a]; dup {
		return arcError(op, a, "duplicate arc")
	}
	n.Arcs = append(n.Arcs, a)
	n.Capacity[a] = capacity
	n.TransitTime[a] = transit

	return nil
}

// Nodes returns every node touched by an arc, sorted by ID.
func (n *Network) Nodes() []string {
	seen := make(map[string]struct{}, 2*len(n.Arcs))
	out := make([]string, 0, 2*len(n.Arcs))
	for _, a := range n.Arcs {
		for _, v := range [2]string{a.Tail, a.Head} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// HasNode reports whether some arc touches v.
func (n *Network) HasNode(v string) bool {
	for _, a := range n.Arcs {
		if a.Tail == v || a.Head == v {
			return true
		}
	}

	return false
}

// Terminals is the partition of the terminal set into sources S+ and sinks S-.
type Terminals struct {
	Sources []string
	Sinks   []string
}

// All returns S+ followed by S-, the terminal list subsets are drawn from.
func (t Terminals) All() []string {
	out := make([]string, 0, len(t.Sources)+len(t.Sinks))
	out = append(out, t.Sources...)

	return append(out, t.Sinks...)
}

// checkArc validates one arc's endpoints and numeric attributes. Negative
// transit times are only accepted when input is false (synthetic arcs).
func checkArc(op string, a Arc, capacity, transit float64, input bool) error {
	switch {
	case a.Tail == "" || a.Head == "":
		return arcError(op, a, "empty node ID")
	case a.Tail == a.Head:
		return arcError(op, a, "self-loop")
	case math.IsNaN(capacity):
		return arcError(op, a, "capacity is NaN")
	case capacity < 0:
		return arcError(op, a, fmt.Sprintf("negative capacity %g", capacity))
	case math.IsNaN(transit) || math.IsInf(transit, 0):
		return arcError(op, a, fmt.Sprintf("transit time %g is not finite", transit))
	case input && transit < 0:
		return arcError(op, a, fmt.Sprintf("negative transit time %g", transit))
	}

	return nil
}
