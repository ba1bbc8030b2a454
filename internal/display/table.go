package display

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// VariantTable renders the variant list (suffix plus the attributes each
// variant overrides) for the dry-run preview.
func VariantTable(rows [][]string) string {
	return renderTable(table.Row{"Variant", "Overrides"}, rows)
}

// PlanTable renders the video invocation summary as setting/value pairs.
func PlanTable(rows [][]string) string {
	return renderTable(table.Row{"Setting", "Value"}, rows)
}

func renderTable(header table.Row, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
