// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Oracle capability, Solution, OracleFunc adapter and sentinel errors.

package mincut

import (
	"context"
	"errors"

	"github.com/katalvlaran/gten/network"
)

// Sentinel errors for oracle calls.
var (
	// ErrInfeasible indicates that no feasible potential exists for the
	// requested terminal relabelling. Aggregation treats it as "contributes
	// no breakpoints".
	ErrInfeasible = errors.New("mincut: infeasible subproblem")

	// ErrSolver indicates a solver failure (timeout, cancellation, numerical
	// instability). It always wraps the underlying cause and must never be
	// replaced by a default result.
	ErrSolver = errors.New("mincut: solver failure")
)

// Solution is the result of one min-cut-over-time solve.
type Solution struct {
	// Alpha maps every node of the network (super node excluded) to its
	// potential rounded to the nearest integer.
	Alpha map[string]int

	// Flow maps every original arc to its LP variable y_a ≥ 0.
	Flow map[network.Arc]float64

	// Value is the objective Σ u_a·y_a over the original arcs, the value of
	// the minimum cut over time.
	Value float64
}

// Values returns the distinct α values of the solution, unsorted.
func (s *Solution) Values() []int {
	seen := make(map[int]struct{}, len(s.Alpha))
	out := make([]int, 0, len(s.Alpha))
	for _, a := range s.Alpha {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	return out
}

// Oracle solves the parametric min-cut-over-time LP
//
//	min Σ u_a·y_a
//	s.t. y_a + α_v − α_w ≥ −τ_a   for every arc a = (v,w)
//	     α_s = 0 for s ∈ sPlusX,  α_t = T for t ∈ sMinusX
//	     y ≥ 0, α ≥ 0
//
// Implementations must be deterministic and safe for concurrent use.
type Oracle interface {
	Solve(ctx context.Context, net *network.Network, T int, sPlusX, sMinusX []string) (*Solution, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, net *network.Network, T int, sPlusX, sMinusX []string) (*Solution, error)

// Solve calls f.
func (f OracleFunc) Solve(ctx context.Context, net *network.Network, T int, sPlusX, sMinusX []string) (*Solution, error) {
	return f(ctx, net, T, sPlusX, sMinusX)
}
