// SPDX-License-Identifier: MIT
// Package: gten/builder
//
// impl_path.go - Path(n): v0→v1→…→v(n-1), S+ = {v0}, S- = {v(n-1)}.
//
// Determinism:
//   - Arcs are emitted in increasing index order; attributes are drawn in
//     that order from cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gten/network"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path of n nodes and
// registers its ends as terminals.
func Path(n int) Constructor {
	return func(net *network.Network, terms *network.Terminals, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addArc(methodPath, net, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}
		terms.Sources = append(terms.Sources, cfg.idFn(0))
		terms.Sinks = append(terms.Sinks, cfg.idFn(n-1))

		return nil
	}
}
