// SPDX-License-Identifier: MIT
//
// File: lp.go
// Role: LPOracle, the min-cut-over-time LP solved with gonum's simplex.
// Determinism:
//   - Variables and rows follow net.Arcs order, then super arcs in terminal
//     order; nodes are sorted. Identical input yields identical output.
// Concurrency:
//   - LPOracle is immutable; Solve allocates all state per call and is safe
//     for concurrent use.

package mincut

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/gten/network"
)

// LPOracle is the reference Oracle: it augments the network with a super
// node ψ and solves the LP in standard form with the simplex method.
type LPOracle struct {
	opts Options
}

// NewLPOracle builds an LPOracle from DefaultOptions and the given options.
func NewLPOracle(opts ...Option) (*LPOracle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &LPOracle{opts: o}, nil
}

// lpArc is one row of the LP: an original arc or a super arc.
type lpArc struct {
	tail, head string
	cost       float64
	transit    float64
	original   bool
}

// Solve runs one min-cut-over-time solve.
//
// Implementation:
//   - Stage 1: Build the arc list: net.Arcs, then ψ→s (u=∞, τ=0) for each
//     s ∈ sPlusX and t→ψ (u=∞, τ=−T) for each t ∈ sMinusX.
//   - Stage 2: Standard form over x = [y | α | slack]:
//     y_a + α_v − α_w − s_a = −τ_a per arc, α_s = 0 / α_t = T per pin.
//     Rows with a negative right-hand side are negated.
//   - Stage 3: lp.Simplex; map gonum's ErrInfeasible to ErrInfeasible and
//     every other failure (or ctx expiry) to ErrSolver.
//   - Stage 4: Strip ψ, round α to the nearest integer, clamp y at 0.
//
// Complexity: one dense simplex over (A+P) rows and (2A+N) columns.
func (o *LPOracle) Solve(ctx context.Context, net *network.Network, T int, sPlusX, sMinusX []string) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolver, err)
	}
	if net == nil || len(net.Arcs) == 0 {
		return nil, &network.InputError{Op: "Solve", Reason: "network has no arcs"}
	}
	if T <= 0 {
		return nil, &network.InputError{Op: "Solve", Reason: fmt.Sprintf("horizon must be positive, got %d", T)}
	}
	psi := o.opts.SuperNode
	if net.HasNode(psi) {
		return nil, &network.InputError{Op: "Solve", Node: psi, Reason: "node ID collides with the super node"}
	}
	for _, v := range append(append([]string{}, sPlusX...), sMinusX...) {
		if !net.HasNode(v) {
			return nil, &network.InputError{Op: "Solve", Node: v, Reason: "terminal is not a network node"}
		}
	}
	pins := make(map[string]float64, len(sPlusX)+len(sMinusX))
	for _, s := range sPlusX {
		pins[s] = 0
	}
	for _, t := range sMinusX {
		if v, ok := pins[t]; ok && v != float64(T) {
			return nil, fmt.Errorf("%w: node %q pinned to both 0 and %d", ErrInfeasible, t, T)
		}
		pins[t] = float64(T)
	}

	arcs := o.lpArcs(net, T, sPlusX, sMinusX)
	nodes, col := lpNodes(arcs)

	c, A, b := standardForm(arcs, nodes, col, sPlusX, sMinusX, pins)

	type result struct {
		x   []float64
		err error
	}
	done := make(chan result, 1)
	go func() {
		_, x, err := lp.Simplex(c, A, b, o.opts.Tolerance, nil)
		done <- result{x: x, err: err}
	}()

	var x []float64
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrSolver, ctx.Err())
	case r := <-done:
		switch {
		case errors.Is(r.err, lp.ErrInfeasible):
			return nil, fmt.Errorf("%w: %w", ErrInfeasible, r.err)
		case r.err != nil:
			return nil, fmt.Errorf("%w: %w", ErrSolver, r.err)
		}
		x = r.x
	}

	return o.decode(net, arcs, nodes, col, x), nil
}

func (o *LPOracle) lpArcs(net *network.Network, T int, sPlusX, sMinusX []string) []lpArc {
	arcs := make([]lpArc, 0, len(net.Arcs)+len(sPlusX)+len(sMinusX))
	for _, a := range net.Arcs {
		arcs = append(arcs, lpArc{
			tail:     a.Tail,
			head:     a.Head,
			cost:     o.finite(net.Capacity[a]),
			transit:  net.TransitTime[a],
			original: true,
		})
	}
	seen := make(map[network.Arc]struct{}, len(sPlusX)+len(sMinusX))
	add := func(tail, head string, transit float64) {
		k := network.Arc{Tail: tail, Head: head}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		arcs = append(arcs, lpArc{tail: tail, head: head, cost: o.opts.InfCapacity, transit: transit})
	}
	for _, s := range sPlusX {
		add(o.opts.SuperNode, s, 0)
	}
	for _, t := range sMinusX {
		add(t, o.opts.SuperNode, -float64(T))
	}

	return arcs
}

// lpNodes returns the sorted list of nodes touched by arcs (ψ included when
// a super arc exists) and each node's offset from the first α column.
func lpNodes(arcs []lpArc) ([]string, map[string]int) {
	seen := make(map[string]struct{}, len(arcs))
	var nodes []string
	for _, a := range arcs {
		for _, v := range [2]string{a.tail, a.head} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				nodes = append(nodes, v)
			}
		}
	}
	sort.Strings(nodes)
	col := make(map[string]int, len(nodes))
	for i, v := range nodes {
		col[v] = i
	}

	return nodes, col
}

func standardForm(
	arcs []lpArc,
	nodes []string,
	col map[string]int,
	sPlusX, sMinusX []string,
	pins map[string]float64,
) ([]float64, *mat.Dense, []float64) {
	nA, nN := len(arcs), len(nodes)
	pinned := make([]string, 0, len(pins))
	seen := make(map[string]struct{}, len(pins))
	for _, v := range append(append([]string{}, sPlusX...), sMinusX...) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			pinned = append(pinned, v)
		}
	}

	rows, cols := nA+len(pinned), 2*nA+nN
	alpha0, slack0 := nA, nA+nN
	A := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)

	for r, a := range arcs {
		c[r] = a.cost
		sign := 1.0
		if a.transit > 0 {
			sign = -1
		}
		A.Set(r, r, sign)
		A.Set(r, alpha0+col[a.tail], A.At(r, alpha0+col[a.tail])+sign)
		A.Set(r, alpha0+col[a.head], A.At(r, alpha0+col[a.head])-sign)
		A.Set(r, slack0+r, -sign)
		b[r] = -a.transit * sign
	}
	for k, v := range pinned {
		r := nA + k
		A.Set(r, alpha0+col[v], 1)
		b[r] = pins[v]
	}

	return c, A, b
}

func (o *LPOracle) decode(net *network.Network, arcs []lpArc, nodes []string, col map[string]int, x []float64) *Solution {
	nA := len(arcs)
	sol := &Solution{
		Alpha: make(map[string]int, len(nodes)),
		Flow:  make(map[network.Arc]float64, len(net.Arcs)),
	}
	for _, v := range nodes {
		if v == o.opts.SuperNode {
			continue
		}
		sol.Alpha[v] = int(math.Round(x[nA+col[v]]))
	}
	for r, a := range arcs {
		if !a.original {
			continue
		}
		y := x[r]
		if y < o.opts.Tolerance*1e3 {
			y = 0
		}
		sol.Flow[network.Arc{Tail: a.tail, Head: a.head}] = y
		sol.Value += a.cost * y
	}

	return sol
}

func (o *LPOracle) finite(capacity float64) float64 {
	if math.IsInf(capacity, 1) {
		return o.opts.InfCapacity
	}
	return capacity
}
