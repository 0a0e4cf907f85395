// SPDX-License-Identifier: MIT
// Package: gten/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCapacityFn sets the per-arc capacity generator. Panics on nil.
func WithCapacityFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) { c.capacityFn = fn }
}

// WithTransitFn sets the per-arc transit-time generator. Panics on nil.
func WithTransitFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTransitFn(nil)")
	}
	return func(c *builderConfig) { c.transitFn = fn }
}
