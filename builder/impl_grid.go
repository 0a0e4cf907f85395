// SPDX-License-Identifier: MIT
// Package: gten/builder
//
// impl_grid.go - Grid(rows, cols): a rows×cols lattice of one-way arcs
// pointing right and down.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices).
//   • Node IDs use the fixed scheme "r,c" (row-major), not cfg.idFn.
//   • For each (r,c): arc to (r,c+1), then arc to (r+1,c), where present.
//   • S+ = {"0,0"}, S- = {"rows-1,cols-1"}.
//
// Complexity: O(rows·cols) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gten/network"
)

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	gridIDFormat = "%d,%d"
)

// Grid returns a Constructor that builds a right/down lattice with opposite
// corners as terminals.
func Grid(rows, cols int) Constructor {
	return func(net *network.Network, terms *network.Terminals, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d too small: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFormat, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addArc(methodGrid, net, cfg, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addArc(methodGrid, net, cfg, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		terms.Sources = append(terms.Sources, id(0, 0))
		terms.Sinks = append(terms.Sinks, id(rows-1, cols-1))

		return nil
	}
}
