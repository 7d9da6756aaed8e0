package hull

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of hull statistics.
func (h *EncodedHull) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Buffer", "Elements", "Size"})
	table.Append([]string{"Triangles", strconv.Itoa(h.TriangleCount), fmtSize(len(h.TriangleData))})
	table.Append([]string{"Tree nodes", fmt.Sprintf("%d + sentinel", h.TreeNodeCountMinusOne), fmtSize(len(h.TreeData))})
	table.SetFooter([]string{"Total", " ", fmtSize(len(h.TriangleData) + len(h.TreeData))})

	table.Render()
	return buf.String()
}

// Format a byte count with the appropriate byte/kb/mb unit.
func fmtSize(numBytes int) string {
	size := float32(numBytes)
	if size < 1e3 {
		return fmt.Sprintf("%3d bytes", numBytes)
	} else if size < 1e6 {
		return fmt.Sprintf("%3.1f kb", size/1e3)
	}
	return fmt.Sprintf("%5.1f mb", size/1e6)
}
