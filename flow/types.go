// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, EdgeError and FlowOptions shared by every max-flow routine.

package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for max-flow execution.
var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrUnboundedFlow is returned when an augmenting path consists solely of
	// infinite-capacity arcs, so the maximum flow is +Inf.
	ErrUnboundedFlow = errors.New("flow: unbounded flow along an all-infinite path")

	// ErrReservedVertex is returned when the input graph already contains a
	// vertex named SuperSource or SuperSink.
	ErrReservedVertex = errors.New("flow: reserved vertex ID present in graph")

	// ErrUnknownAlgorithm is returned by NewEngine for an unsupported Algorithm.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// DefaultEpsilon is the capacity below which residual arcs count as saturated.
const DefaultEpsilon = 1e-9

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation and deadlines (nil means context.Background()).
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Logger: receives one debug event per augmentation.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Logger               zerolog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// Epsilon 1e-9, a disabled logger and no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
		Logger:  zerolog.Nop(),
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
