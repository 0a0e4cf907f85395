// SPDX-License-Identifier: MIT

package mincut

import "fmt"

// Defaults for LPOracle.
const (
	// DefaultTolerance is the simplex pivot tolerance.
	DefaultTolerance = 1e-10

	// DefaultInfCapacity replaces +Inf capacities in the objective, both on
	// the super arcs and on input arcs declared with network.Inf.
	DefaultInfCapacity = 1e4

	// DefaultSuperNode is the ID of the synthetic node ψ.
	DefaultSuperNode = "__psi__"
)

// Options configures an LPOracle.
type Options struct {
	// Tolerance is passed to the simplex solver.
	Tolerance float64

	// InfCapacity is the finite stand-in for +Inf capacities.
	InfCapacity float64

	// SuperNode is the ID of the synthetic node ψ; it must not occur in
	// the network.
	SuperNode string

	err error
}

// Option mutates Options; invalid values are recorded and reported by
// NewLPOracle.
type Option func(*Options)

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:   DefaultTolerance,
		InfCapacity: DefaultInfCapacity,
		SuperNode:   DefaultSuperNode,
	}
}

// WithTolerance sets the simplex tolerance (must be > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("mincut: tolerance must be positive, got %g", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithInfCapacity sets the finite capacity used for +Inf arcs (must be > 0).
func WithInfCapacity(c float64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("mincut: infinite-capacity stand-in must be positive, got %g", c)
			return
		}
		o.InfCapacity = c
	}
}

// WithSuperNode sets the ID of the synthetic node ψ (must be non-empty).
func WithSuperNode(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.err = fmt.Errorf("mincut: super node ID is empty")
			return
		}
		o.SuperNode = id
	}
}
