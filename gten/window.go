// SPDX-License-Identifier: MIT
//
// File: window.go
// Role: WindowCapacityEngine: horizontal arc capacities of the GTEN.
// Determinism:
//   - Row order is fixed (vertical rows, then horizontal rows by network arc,
//     tail layer, head layer); every pass reads one table version and writes
//     the next, so the result does not depend on Workers.
// Concurrency:
//   - Rows of one length are independent: the window of (v^i, w^j) only holds
//     strictly shorter copies of (v,w). They run under an errgroup.

package gten

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gten/metrics"
	"github.com/katalvlaran/gten/network"
)

// WindowEngine assigns capacities to the horizontal arcs of a GTEN.
type WindowEngine struct {
	// MaxLength caps the arc lengths that get a window pass; 0 means every
	// length. MaxLength = 1 stops after the first window pass.
	MaxLength int

	// Workers bounds concurrent row evaluations within a pass; ≤ 1 is
	// sequential.
	Workers int

	// Logger receives clipping and pass diagnostics.
	Logger zerolog.Logger

	// Metrics, if non-nil, records pass durations, clipped capacities and
	// arc counts.
	Metrics *metrics.Registry
}

type rowUpdate struct {
	row      int
	capacity float64
	clipped  bool
}

// Build lays out the GTEN arc table for net over breakpoints and assigns
// capacities. With k breakpoints and α(i) = breakpoints[i-1]:
//
//   - vertical rows: see BuildVertical.
//   - every (v^i, w^j), 1 ≤ i ≤ j ≤ k, starts at capacity 0.
//   - length 0, i < k: max(0, u·(α(i+1) − α(i) − τ)).
//   - length ℓ ≥ 1, j = i+ℓ < k: max(0, u·(α(j+1) − α(i) − τ)) minus the
//     capacity already offered from {v^i..v^j} to {w^i..w^j}, clipped at 0.
//   - rows touching layer k keep capacity 0.
//
// Each length is one pass producing one table version.
//
// Complexity: O(A·k²) rows; pass ℓ evaluates O(A·k) windows.
func (e *WindowEngine) Build(ctx context.Context, net *network.Network, breakpoints []int) (*Table, BuildStats, error) {
	var stats BuildStats
	if err := checkBreakpoints(breakpoints); err != nil {
		return nil, stats, err
	}
	if net == nil || len(net.Arcs) == 0 {
		return nil, stats, &network.InputError{Op: "Build", Reason: "network has no arcs"}
	}
	k := len(breakpoints)
	alpha := func(layer int) int { return breakpoints[layer-1] }

	rows := BuildVertical(net.Nodes(), breakpoints)
	stats.Vertical = len(rows)
	byLength := make(map[int][]int)
	for _, a := range net.Arcs {
		for i := 1; i <= k; i++ {
			for j := i; j <= k; j++ {
				byLength[j-i] = append(byLength[j-i], len(rows))
				rows = append(rows, Arc{
					Tail:                TimeNode{Node: a.Tail, Layer: i},
					Head:                TimeNode{Node: a.Head, Layer: j},
					Length:              j - i,
					AlphaTail:           alpha(i),
					AlphaHead:           alpha(j),
					Kind:                Horizontal,
					Original:            a,
					OriginalCapacity:    net.Capacity[a],
					OriginalTransitTime: net.TransitTime[a],
				})
			}
		}
	}
	stats.Horizontal = len(rows) - stats.Vertical
	table := NewTable(rows)

	last := max(k-2, 0)
	if e.MaxLength > 0 && e.MaxLength < last {
		last = e.MaxLength
	}
	for ell := 0; ell <= last; ell++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		start := time.Now()
		updates, err := e.pass(ctx, table, byLength[ell], ell, k, alpha)
		if err != nil {
			return nil, stats, err
		}
		caps := make(map[int]float64, len(updates))
		clipped := 0
		for _, u := range updates {
			caps[u.row] = u.capacity
			if u.clipped {
				clipped++
			}
		}
		table = table.WithCapacities(caps)
		stats.Passes++
		stats.Clipped += clipped
		e.Metrics.RecordWindowPass(ell, time.Since(start))
		e.Metrics.AddClipped(clipped)
		e.Logger.Debug().
			Int("length", ell).
			Int("rows", len(updates)).
			Int("clipped", clipped).
			Int("version", table.Version()).
			Msg("window pass done")
	}
	e.Metrics.SetArcs(stats.Vertical, stats.Horizontal)

	return table, stats, nil
}

// pass evaluates every row of length ell whose head is below layer k,
// reading capacities from table.
func (e *WindowEngine) pass(
	ctx context.Context,
	table *Table,
	idx []int,
	ell, k int,
	alpha func(int) int,
) ([]rowUpdate, error) {
	var live []int
	for _, r := range idx {
		if table.Row(r).Head.Layer < k {
			live = append(live, r)
		}
	}
	out := make([]rowUpdate, len(live))
	if len(live) == 0 {
		return out, nil
	}

	eval := func(n int) {
		r := table.Row(live[n])
		i, j := r.Tail.Layer, r.Head.Layer
		base := holdover(r.OriginalCapacity, float64(alpha(j+1)-alpha(i))-r.OriginalTransitTime)
		out[n] = rowUpdate{row: live[n], capacity: base}
	}
	if ell == 0 {
		for n := range live {
			eval(n)
		}
		return out, nil
	}

	g, err := table.Graph()
	if err != nil {
		return nil, err
	}
	window := func(n int) {
		eval(n)
		r := table.Row(live[n])
		var from, to []string
		for l := r.Tail.Layer; l <= r.Head.Layer; l++ {
			from = append(from, TimeNode{Node: r.Tail.Node, Layer: l}.ID())
			to = append(to, TimeNode{Node: r.Head.Node, Layer: l}.ID())
		}
		capacity, clipped := subtract(out[n].capacity, CutCapacity(g, from, to))
		out[n].capacity, out[n].clipped = capacity, clipped
		if clipped {
			e.Logger.Debug().
				Str("tail", r.Tail.ID()).
				Str("head", r.Head.ID()).
				Msg("negative window capacity clipped to zero")
		}
	}

	if e.Workers <= 1 {
		for n := range live {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			window(n)
		}
		return out, nil
	}
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.Workers)
	for n := range live {
		n := n // per-iteration copy (pre-Go 1.22 loop semantics)
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			window(n)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// holdover is max(0, u·delta) with 0·∞ taken as 0.
func holdover(u, delta float64) float64 {
	if delta <= 0 || u == 0 {
		return 0
	}
	return u * delta
}

// subtract returns base − window clipped at 0, and whether clipping
// happened. An infinite base keeps its value unless the window is also
// infinite, in which case nothing is left to offer.
func subtract(base, window float64) (float64, bool) {
	switch {
	case math.IsInf(base, 1) && math.IsInf(window, 1):
		return 0, false
	case math.IsInf(base, 1):
		return base, false
	}
	v := base - window
	if v < 0 {
		return 0, true
	}
	return v, false
}
