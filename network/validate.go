// SPDX-License-Identifier: MIT

package network

import "fmt"

// Validate checks a network and its terminal partition before any solve.
// It fails fast with an *InputError (errors.Is ErrMalformedInput) on:
//
//   - nil network or no arcs
//   - an arc without a capacity or transit-time entry
//   - an arc with invalid endpoints or attributes (see AddArc)
//   - a duplicate arc in Arcs
//   - empty S+ or S-, a duplicated terminal, S+ ∩ S- ≠ ∅
//   - a terminal that no arc touches
//
// Complexity: O(A + |S|).
func Validate(net *Network, terms Terminals) error {
	const op = "Validate"
	if net == nil {
		return &InputError{Op: op, Reason: "nil network"}
	}
	if len(net.Arcs) == 0 {
		return &InputError{Op: op, Reason: "network has no arcs"}
	}

	seen := make(map[Arc]struct{}, len(net.Arcs))
	nodes := make(map[string]struct{}, 2*len(net.Arcs))
	for _, a := range net.Arcs {
		if _, dup := seen[a]; dup {
			return arcError(op, a, "duplicate arc")
		}
		seen[a] = struct{}{}
		u, ok := net.Capacity[a]
		if !ok {
			return arcError(op, a, "missing capacity")
		}
		tau, ok := net.TransitTime[a]
		if !ok {
			return arcError(op, a, "missing transit time")
		}
		if err := checkArc(op, a, u, tau, true); err != nil {
			return err
		}
		nodes[a.Tail] = struct{}{}
		nodes[a.Head] = struct{}{}
	}

	if len(terms.Sources) == 0 {
		return setError(op, SetSources, "", "empty terminal set")
	}
	if len(terms.Sinks) == 0 {
		return setError(op, SetSinks, "", "empty terminal set")
	}
	member := make(map[string]string, len(terms.Sources)+len(terms.Sinks))
	check := func(set string, list []string) error {
		for _, v := range list {
			if prev, dup := member[v]; dup {
				if prev == set {
					return setError(op, set, v, "duplicated terminal")
				}
				return setError(op, set, v, fmt.Sprintf("terminal also in %s", prev))
			}
			member[v] = set
			if _, ok := nodes[v]; !ok {
				return setError(op, set, v, "terminal not in network")
			}
		}
		return nil
	}
	if err := check(SetSources, terms.Sources); err != nil {
		return err
	}

	return check(SetSinks, terms.Sinks)
}
