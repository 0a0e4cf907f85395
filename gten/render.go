// SPDX-License-Identifier: MIT

package gten

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

var renderHeader = []string{"tail", "head", "capacity", "length", "alpha_v", "alpha_w", "kind"}

// Render writes the arc table as an ASCII grid, one line per row.
func (n *Network) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(renderHeader)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range n.table.rows {
		tw.Append([]string{
			r.Tail.ID(),
			r.Head.ID(),
			formatCapacity(r.Capacity),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.AlphaTail),
			strconv.Itoa(r.AlphaHead),
			r.Kind.String(),
		})
	}
	tw.Render()
}

func formatCapacity(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
