// SPDX-License-Identifier: MIT
// Package: gten/network
//
// errors.go — the MalformedInput sentinel and its typed carrier.
//
// Error policy:
//   • Every validation failure satisfies errors.Is(err, ErrMalformedInput).
//   • errors.As(err, &*InputError) recovers the offending arc, set or node.
//   • Validation fails fast: the first violation found is returned.

package network

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a caller contract violation in the dynamic
// network or the terminal partition. It is never recoverable; the pipeline
// aborts before any solve is attempted.
var ErrMalformedInput = errors.New("network: malformed input")

// Set names used in InputError.Set.
const (
	SetSources = "S+"
	SetSinks   = "S-"
)

// InputError identifies the arc, terminal set or node behind a MalformedInput.
type InputError struct {
	// Op is the operation that detected the problem ("AddArc", "Validate").
	Op string

	// Arc is the offending arc, or the zero Arc when the problem is a set.
	Arc Arc

	// Set is SetSources or SetSinks when a terminal set is at fault.
	Set string

	// Node is the offending node, if any.
	Node string

	// Reason is a short human-readable description.
	Reason string
}

func (e *InputError) Error() string {
	switch {
	case e.Set != "" && e.Node != "":
		return fmt.Sprintf("network: %s: set %s, node %q: %s", e.Op, e.Set, e.Node, e.Reason)
	case e.Set != "":
		return fmt.Sprintf("network: %s: set %s: %s", e.Op, e.Set, e.Reason)
	case e.Arc != (Arc{}):
		return fmt.Sprintf("network: %s: arc %s: %s", e.Op, e.Arc, e.Reason)
	case e.Node != "":
		return fmt.Sprintf("network: %s: node %q: %s", e.Op, e.Node, e.Reason)
	default:
		return fmt.Sprintf("network: %s: %s", e.Op, e.Reason)
	}
}

// Unwrap makes errors.Is(err, ErrMalformedInput) hold for every InputError.
func (e *InputError) Unwrap() error { return ErrMalformedInput }

func arcError(op string, a Arc, reason string) error {
	return &InputError{Op: op, Arc: a, Reason: reason}
}

func setError(op, set, node, reason string) error {
	return &InputError{Op: op, Set: set, Node: node, Reason: reason}
}
