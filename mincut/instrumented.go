// SPDX-License-Identifier: MIT

package mincut

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/gten/metrics"
	"github.com/katalvlaran/gten/network"
)

type instrumented struct {
	next Oracle
	reg  *metrics.Registry
}

// Instrumented wraps an Oracle so every call records its outcome
// (optimal / infeasible / error) and duration in reg. A nil reg returns
// the oracle unchanged.
func Instrumented(next Oracle, reg *metrics.Registry) Oracle {
	if reg == nil {
		return next
	}
	return &instrumented{next: next, reg: reg}
}

func (i *instrumented) Solve(ctx context.Context, net *network.Network, T int, sPlusX, sMinusX []string) (*Solution, error) {
	start := time.Now()
	sol, err := i.next.Solve(ctx, net, T, sPlusX, sMinusX)
	status := metrics.StatusOptimal
	switch {
	case errors.Is(err, ErrInfeasible):
		status = metrics.StatusInfeasible
	case err != nil:
		status = metrics.StatusError
	}
	i.reg.RecordOracleSolve(status, time.Since(start))

	return sol, err
}
