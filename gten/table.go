// SPDX-License-Identifier: MIT

package gten

import (
	"github.com/katalvlaran/gten/core"
)

// Table is an immutable, versioned list of arc rows. Capacity updates
// produce a new version; earlier versions stay valid, so a pass can read
// one version while building the next.
type Table struct {
	version int
	rows    []Arc
}

// NewTable returns version 0 holding a copy of rows.
func NewTable(rows []Arc) *Table {
	return &Table{rows: append([]Arc(nil), rows...)}
}

// Version is 0 for a fresh table and grows by one per WithCapacities.
func (t *Table) Version() int { return t.version }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i by value.
func (t *Table) Row(i int) Arc { return t.rows[i] }

// Rows returns a copy of every row in table order.
func (t *Table) Rows() []Arc { return append([]Arc(nil), t.rows...) }

// WithCapacities returns the next version with the capacities of the given
// row indices replaced. Indices out of range are ignored.
func (t *Table) WithCapacities(caps map[int]float64) *Table {
	next := &Table{version: t.version + 1, rows: t.Rows()}
	for i, c := range caps {
		if i >= 0 && i < len(next.rows) {
			next.rows[i].Capacity = c
		}
	}
	return next
}

// Graph builds a directed weighted core.Graph with one vertex per time node
// and one edge per row, weighted by capacity. Zero-capacity rows are kept.
func (t *Table) Graph() (*core.Graph, error) {
	g := core.NewFlowGraph()
	for _, r := range t.rows {
		for _, v := range [2]string{r.Tail.ID(), r.Head.ID()} {
			if !g.HasVertex(v) {
				if err := g.AddVertex(v); err != nil {
					return nil, err
				}
			}
		}
		if _, err := g.AddEdge(r.Tail.ID(), r.Head.ID(), r.Capacity); err != nil {
			return nil, err
		}
	}
	return g, nil
}
