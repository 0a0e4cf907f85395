// SPDX-License-Identifier: MIT
// Package: gten/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn     ("v0","v1",...)
//   • rng        = nil             (pure unless seeded)
//   • capacityFn = constant 1
//   • transitFn  = constant 1

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	capacityFn WeightFn
	transitFn  WeightFn
}

const (
	defaultCapacity = 1.0
	defaultTransit  = 1.0
)

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		capacityFn: ConstantWeightFn(defaultCapacity),
		transitFn:  ConstantWeightFn(defaultTransit),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
