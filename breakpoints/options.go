// SPDX-License-Identifier: MIT

package breakpoints

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gten/metrics"
	"github.com/katalvlaran/gten/mincut"
)

// Options configures Aggregate.
type Options struct {
	// Oracle solves one subset; nil means a default mincut.LPOracle.
	Oracle mincut.Oracle

	// Workers bounds concurrent oracle calls; 0 or 1 runs sequentially.
	Workers int

	// Logger receives per-subset diagnostics. The zero value discards.
	Logger zerolog.Logger

	// Metrics, if non-nil, records oracle calls, subset outcomes and the
	// breakpoint count.
	Metrics *metrics.Registry

	// HorizonClosure adds T to the breakpoint set even when no feasible
	// subset produced it.
	HorizonClosure bool

	err error
}

// Option mutates Options; invalid values are reported by Aggregate.
type Option func(*Options)

// DefaultOptions returns sequential aggregation with the LP oracle,
// a discarding logger, no metrics and horizon closure enabled.
func DefaultOptions() Options {
	return Options{
		Logger:         zerolog.Nop(),
		HorizonClosure: true,
	}
}

// WithOracle replaces the oracle.
func WithOracle(o mincut.Oracle) Option {
	return func(opts *Options) {
		if o == nil {
			opts.err = fmt.Errorf("breakpoints: nil oracle")
			return
		}
		opts.Oracle = o
	}
}

// WithWorkers sets the number of concurrent oracle calls (must be ≥ 0).
func WithWorkers(n int) Option {
	return func(opts *Options) {
		if n < 0 {
			opts.err = fmt.Errorf("breakpoints: workers must be non-negative, got %d", n)
			return
		}
		opts.Workers = n
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *Options) { opts.Logger = l }
}

// WithMetrics attaches a metrics registry.
func WithMetrics(reg *metrics.Registry) Option {
	return func(opts *Options) { opts.Metrics = reg }
}

// WithHorizonClosure toggles whether T is always a breakpoint.
func WithHorizonClosure(on bool) Option {
	return func(opts *Options) { opts.HorizonClosure = on }
}
