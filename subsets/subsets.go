// SPDX-License-Identifier: MIT
//
// File: subsets.go
// Role: Enumeration of the valid terminal subsets X ⊆ S+ ∪ S-.
// Determinism:
//   - Subsets are produced by increasing size, then by position in S+ ++ S-
//     (the order of lexicographic index combinations).
// Complexity:
//   - There are exactly (2^|S+| − 1)·(2^|S-| − 1) valid subsets; a full walk
//     visits all 2^(|S+|+|S-|) subsets once.

package subsets

import (
	"errors"
	"fmt"
)

// MaxTerminals bounds |S+| + |S-| so every count fits in an int.
const MaxTerminals = 62

// ErrTooManyTerminals is returned when |S+| + |S-| exceeds MaxTerminals.
var ErrTooManyTerminals = errors.New("subsets: too many terminals")

// Each calls fn for every valid subset X of sources ++ sinks, that is every
// X with S+ ∩ X ≠ ∅ and S- \ X ≠ ∅, in deterministic order. The slice
// passed to fn is freshly allocated and may be retained. A non-nil error
// from fn stops the walk and is returned unchanged.
//
// Implementation:
//   - Stage 1: For r = 1..n, advance an index combination c[0] < … < c[r-1].
//   - Stage 2: A combination is valid iff c[0] < |S+| (it holds a source)
//     and it holds fewer than |S-| sink indices.
func Each(sources, sinks []string, fn func(x []string) error) error {
	terms := make([]string, 0, len(sources)+len(sinks))
	terms = append(terms, sources...)
	terms = append(terms, sinks...)
	n, p := len(terms), len(sources)
	if n > MaxTerminals {
		return fmt.Errorf("%w: %d > %d", ErrTooManyTerminals, n, MaxTerminals)
	}
	if p == 0 || p == n {
		return nil
	}

	for r := 1; r <= n; r++ {
		idx := make([]int, r)
		for i := range idx {
			idx[i] = i
		}
		for {
			if idx[0] < p && r-countBelow(idx, p) < n-p {
				x := make([]string, r)
				for i, k := range idx {
					x[i] = terms[k]
				}
				if err := fn(x); err != nil {
					return err
				}
			}
			if !nextCombination(idx, n) {
				break
			}
		}
	}

	return nil
}

// Enumerate returns every valid subset in the order produced by Each.
func Enumerate(sources, sinks []string) ([][]string, error) {
	var out [][]string
	err := Each(sources, sinks, func(x []string) error {
		out = append(out, x)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the closed-form number of valid subsets,
// (2^|S+| − 1)·(2^|S-| − 1), without enumerating them.
func Count(sources, sinks []string) (int, error) {
	p, m := len(sources), len(sinks)
	if p+m > MaxTerminals {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyTerminals, p+m, MaxTerminals)
	}

	return ((1 << p) - 1) * ((1 << m) - 1), nil
}

// Split derives the relabelled terminal sets of X: S+ ∩ X and S- \ X, each
// in the order of the original lists.
func Split(x, sources, sinks []string) (sPlusX, sMinusX []string) {
	in := make(map[string]struct{}, len(x))
	for _, v := range x {
		in[v] = struct{}{}
	}
	for _, s := range sources {
		if _, ok := in[s]; ok {
			sPlusX = append(sPlusX, s)
		}
	}
	for _, t := range sinks {
		if _, ok := in[t]; !ok {
			sMinusX = append(sMinusX, t)
		}
	}

	return sPlusX, sMinusX
}

// countBelow returns how many sorted indices are < p.
func countBelow(idx []int, p int) int {
	c := 0
	for _, k := range idx {
		if k >= p {
			break
		}
		c++
	}

	return c
}

// nextCombination advances idx to the next r-combination of {0..n-1} in
// lexicographic order, reporting false after the last one.
func nextCombination(idx []int, n int) bool {
	r := len(idx)
	i := r - 1
	for i >= 0 && idx[i] == n-r+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < r; j++ {
		idx[j] = idx[j-1] + 1
	}

	return true
}
