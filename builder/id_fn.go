// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index. It must be
// pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "v" followed by the decimal index, e.g. 0→"v0".
func DefaultIDFn(idx int) string {
	return "v" + strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}
