// SPDX-License-Identifier: MIT
//
// File: aggregate.go
// Role: BreakpointAggregator: union of oracle potentials over every valid
// terminal subset.
// Determinism:
//   - Subsets are solved in any order but reported in enumeration order;
//     Breakpoints is sorted ascending and deduplicated.
// Concurrency:
//   - With Workers > 1 the oracle runs under an errgroup with that limit;
//     each goroutine writes only its own outcome slot.

package breakpoints

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gten/metrics"
	"github.com/katalvlaran/gten/mincut"
	"github.com/katalvlaran/gten/network"
	"github.com/katalvlaran/gten/subsets"
)

// SubsetOutcome is the diagnostic record of one valid subset.
type SubsetOutcome struct {
	// X is the subset, in enumeration order.
	X []string

	// SPlusX and SMinusX are the pinned sources (S+ ∩ X) and sinks (S- \ X).
	SPlusX  []string
	SMinusX []string

	// Alphas is the sorted set of clamped potentials; nil when infeasible.
	Alphas []int

	// Value is the minimum cut over time for this relabelling.
	Value float64

	// Infeasible is set when the oracle reported no feasible potential.
	Infeasible bool
}

// Result is the output of Aggregate.
type Result struct {
	// Breakpoints is the sorted, duplicate-free set T̃.
	Breakpoints []int

	// Subsets holds one outcome per valid subset, in enumeration order.
	Subsets []SubsetOutcome

	// Infeasible counts the subsets that contributed nothing.
	Infeasible int

	// Clamped counts potentials that fell outside [0,T] and were clamped.
	Clamped int
}

// Aggregate computes the breakpoint set T̃ for net, terms and horizon T.
//
// Implementation:
//   - Stage 1: Validate the network and partition; fail fast on bad input.
//   - Stage 2: Enumerate the valid subsets X and solve each one with
//     (S+ ∩ X, S- \ X) as the pinned sources and sinks.
//   - Stage 3: Skip infeasible subsets; abort on any other oracle error.
//   - Stage 4: Clamp each α into [0,T], union, sort.
//
// Complexity: (2^|S+|−1)(2^|S-|−1) oracle calls.
func Aggregate(ctx context.Context, net *network.Network, terms network.Terminals, T int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := network.Validate(net, terms); err != nil {
		return nil, err
	}
	if T <= 0 {
		return nil, &network.InputError{Op: "Aggregate", Reason: fmt.Sprintf("horizon must be positive, got %d", T)}
	}
	if o.Oracle == nil {
		lpo, err := mincut.NewLPOracle()
		if err != nil {
			return nil, err
		}
		o.Oracle = lpo
	}
	oracle := mincut.Instrumented(o.Oracle, o.Metrics)

	xs, err := subsets.Enumerate(terms.Sources, terms.Sinks)
	if err != nil {
		return nil, err
	}
	outcomes := make([]SubsetOutcome, len(xs))
	solve := func(ctx context.Context, i int) error {
		plus, minus := subsets.Split(xs[i], terms.Sources, terms.Sinks)
		outcomes[i] = SubsetOutcome{X: xs[i], SPlusX: plus, SMinusX: minus}

		sol, err := oracle.Solve(ctx, net, T, plus, minus)
		switch {
		case errors.Is(err, mincut.ErrInfeasible):
			outcomes[i].Infeasible = true
			o.Metrics.RecordSubset(metrics.StatusInfeasible)
			o.Logger.Warn().Strs("subset", xs[i]).Err(err).Msg("infeasible subset skipped")
			return nil
		case err != nil:
			o.Metrics.RecordSubset(metrics.StatusError)
			return fmt.Errorf("breakpoints: subset %v: %w", xs[i], err)
		}
		outcomes[i].Alphas = sortedValues(sol.Values())
		outcomes[i].Value = sol.Value
		o.Metrics.RecordSubset(metrics.StatusOptimal)
		o.Logger.Debug().
			Strs("subset", xs[i]).
			Strs("sources", plus).
			Strs("sinks", minus).
			Ints("alphas", outcomes[i].Alphas).
			Float64("value", sol.Value).
			Msg("subset solved")
		return nil
	}

	if o.Workers <= 1 {
		for i := range xs {
			if err := solve(ctx, i); err != nil {
				return nil, err
			}
		}
	} else {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(o.Workers)
		for i := range xs {
			i := i // per-iteration copy (pre-Go 1.22 loop semantics)
			eg.Go(func() error { return solve(gctx, i) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	res := &Result{Subsets: outcomes}
	set := make(map[int]struct{})
	if o.HorizonClosure {
		set[T] = struct{}{}
	}
	for i := range outcomes {
		if outcomes[i].Infeasible {
			res.Infeasible++
			continue
		}
		clamped := make([]int, 0, len(outcomes[i].Alphas))
		for _, a := range outcomes[i].Alphas {
			c := clamp(a, T)
			if c != a {
				res.Clamped++
			}
			set[c] = struct{}{}
			clamped = append(clamped, c)
		}
		outcomes[i].Alphas = sortedValues(clamped)
	}
	res.Breakpoints = make([]int, 0, len(set))
	for v := range set {
		res.Breakpoints = append(res.Breakpoints, v)
	}
	sort.Ints(res.Breakpoints)

	o.Metrics.SetBreakpoints(len(res.Breakpoints))
	o.Logger.Debug().
		Ints("breakpoints", res.Breakpoints).
		Int("subsets", len(outcomes)).
		Int("infeasible", res.Infeasible).
		Msg("breakpoints aggregated")

	return res, nil
}

func clamp(a, T int) int {
	switch {
	case a < 0:
		return 0
	case a > T:
		return T
	}
	return a
}

// sortedValues sorts and deduplicates vs in place.
func sortedValues(vs []int) []int {
	sort.Ints(vs)
	out := vs[:0]
	for i, v := range vs {
		if i == 0 || v != vs[i-1] {
			out = append(out, v)
		}
	}
	return out
}
