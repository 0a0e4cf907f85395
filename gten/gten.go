// SPDX-License-Identifier: MIT
//
// File: gten.go
// Role: Assembly of the generalized time-expanded network and its static
// max-flow payoff.

package gten

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gten/core"
	"github.com/katalvlaran/gten/flow"
	"github.com/katalvlaran/gten/metrics"
	"github.com/katalvlaran/gten/network"
)

// Option configures Build.
type Option func(*WindowEngine)

// WithMaxLength limits window passes to arc lengths ≤ n (0 = all).
func WithMaxLength(n int) Option {
	return func(e *WindowEngine) { e.MaxLength = n }
}

// WithWorkers sets the per-pass concurrency.
func WithWorkers(n int) Option {
	return func(e *WindowEngine) { e.Workers = n }
}

// WithLogger sets the build logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *WindowEngine) { e.Logger = l }
}

// WithMetrics attaches a metrics registry to the build and to MaxFlow.
func WithMetrics(reg *metrics.Registry) Option {
	return func(e *WindowEngine) { e.Metrics = reg }
}

// Network is a built GTEN: the final arc table plus the breakpoints and
// nodes it was laid out over.
type Network struct {
	table       *Table
	breakpoints []int
	nodes       []string
	stats       BuildStats
	metrics     *metrics.Registry
	logger      zerolog.Logger
}

// Build assembles the GTEN of net over breakpoints.
//
// Errors:
//   - ErrBreakpoints for an empty or non-increasing breakpoint list.
//   - network.ErrMalformedInput for a network without arcs.
//   - ctx errors from the window passes.
func Build(ctx context.Context, net *network.Network, breakpoints []int, opts ...Option) (*Network, error) {
	e := &WindowEngine{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.MaxLength < 0 || e.Workers < 0 {
		return nil, fmt.Errorf("gten: max length and workers must be non-negative, got %d and %d", e.MaxLength, e.Workers)
	}
	table, stats, err := e.Build(ctx, net, breakpoints)
	if err != nil {
		return nil, err
	}

	return &Network{
		table:       table,
		breakpoints: append([]int(nil), breakpoints...),
		nodes:       net.Nodes(),
		stats:       stats,
		metrics:     e.Metrics,
		logger:      e.Logger,
	}, nil
}

// Rows returns every arc row: vertical rows first, then horizontal rows.
func (n *Network) Rows() []Arc { return n.table.Rows() }

// Table returns the final table version.
func (n *Network) Table() *Table { return n.table }

// Breakpoints returns a copy of T̃.
func (n *Network) Breakpoints() []int { return append([]int(nil), n.breakpoints...) }

// Layers returns k, the number of breakpoints.
func (n *Network) Layers() int { return len(n.breakpoints) }

// Stats returns the build statistics.
func (n *Network) Stats() BuildStats { return n.stats }

// Graph returns a fresh core.Graph of the GTEN.
func (n *Network) Graph() (*core.Graph, error) { return n.table.Graph() }

// TerminalNodes maps network nodes to the IDs of all their layer copies,
// layer-major within each node. Nodes absent from the network are skipped.
func (n *Network) TerminalNodes(ids []string) []string {
	known := make(map[string]struct{}, len(n.nodes))
	for _, v := range n.nodes {
		known[v] = struct{}{}
	}
	var out []string
	for _, v := range ids {
		if _, ok := known[v]; !ok {
			continue
		}
		for l := 1; l <= len(n.breakpoints); l++ {
			out = append(out, TimeNode{Node: v, Layer: l}.ID())
		}
	}
	return out
}

// MaxFlow runs a static max-flow from every copy of S+ to every copy of S-.
// A nil engine selects Dinic with default options.
func (n *Network) MaxFlow(ctx context.Context, terms network.Terminals, engine flow.Engine) (*flow.CutResult, error) {
	if engine == nil {
		var err error
		if engine, err = flow.NewEngine(flow.AlgorithmDinic, flow.DefaultOptions()); err != nil {
			return nil, err
		}
	}
	g, err := n.Graph()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := engine.MinCut(ctx, g, n.TerminalNodes(terms.Sources), n.TerminalNodes(terms.Sinks))
	if err != nil {
		return nil, err
	}
	n.metrics.RecordStaticFlow(string(engine.Algorithm()), res.Value, time.Since(start))
	n.logger.Debug().
		Str("algorithm", string(engine.Algorithm())).
		Float64("value", res.Value).
		Int("cut_edges", len(res.CutEdges)).
		Msg("static max-flow done")

	return res, nil
}
