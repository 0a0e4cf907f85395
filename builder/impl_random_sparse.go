// SPDX-License-Identifier: MIT
// Package: gten/builder
//
// impl_random_sparse.go - RandomSparse(n, p, sources, sinks): Erdős–Rényi
// arcs over n nodes plus a guaranteed source-to-sink backbone.
//
// Contract:
//   • n ≥ sources+sinks, sources ≥ 1, sinks ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability); 0 < p < 1 needs an RNG.
//   • Nodes 0..sources-1 are S+, the last `sinks` nodes are S-.
//   • Every ordered pair (i,j), i≠j, is tried in (i asc, j asc) order.
//   • Backbone: arc (i, i+1) is always present so every sink is reachable.
//
// Determinism: fixed trial order; identical output for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gten/network"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling a random dynamic network with
// the given terminal counts.
func RandomSparse(n int, p float64, sources, sinks int) Constructor {
	return func(net *network.Network, terms *network.Terminals, cfg builderConfig) error {
		if sources < 1 || sinks < 1 || n < sources+sinks {
			return fmt.Errorf("%s: n=%d, sources=%d, sinks=%d: %w",
				methodRandomSparse, n, sources, sinks, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				backbone := j == i+1
				if !backbone {
					if p == probMin {
						continue
					}
					if p < probMax && cfg.rng.Float64() > p {
						continue
					}
				}
				if err := addArc(methodRandomSparse, net, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		for i := 0; i < sources; i++ {
			terms.Sources = append(terms.Sources, cfg.idFn(i))
		}
		for i := n - sinks; i < n; i++ {
			terms.Sinks = append(terms.Sinks, cfg.idFn(i))
		}

		return nil
	}
}
