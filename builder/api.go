// SPDX-License-Identifier: MIT
// Package: gten/builder
//
// api.go - entry point and Constructor type.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates the network,
//     resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical networks and terminal sets.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gten/network"
)

// Constructor adds arcs and terminals to a network under construction.
type Constructor func(net *network.Network, terms *network.Terminals, cfg builderConfig) error

// BuildNetwork creates an empty network, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildNetwork: %w" and returned.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Network, network.Terminals, error) {
	net := network.New()
	var terms network.Terminals
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, network.Terminals{}, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, &terms, cfg); err != nil {
			return nil, network.Terminals{}, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return net, terms, nil
}

// addArc draws capacity and transit time from cfg and appends tail→head.
func addArc(method string, net *network.Network, cfg builderConfig, tail, head string) error {
	u := cfg.capacityFn(cfg.rng)
	tau := cfg.transitFn(cfg.rng)
	if err := net.AddArc(tail, head, u, tau); err != nil {
		return fmt.Errorf("%s: AddArc(%s→%s, u=%g, τ=%g): %w", method, tail, head, u, tau, err)
	}
	return nil
}
