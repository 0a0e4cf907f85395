// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gten/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexD     = "D"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight5 = 5.0
)

// NewGraphFull returns a graph configured for broad contract coverage.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
	}
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustEqualBool fails the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
}

// MustEqualStrings fails the test if the slices differ in length or content.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v; want %v", op, got, want)
		}
	}
}
