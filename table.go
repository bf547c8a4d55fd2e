package projreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// summaryColumn is one column of the console summary table.
type summaryColumn struct {
	header   string
	field    string
	def      string
	maxWidth int
}

var summaryColumns = []summaryColumn{
	{header: "Project", field: FieldTitle, def: "Unknown", maxWidth: 40},
	{header: "PM", field: FieldProjectManager, def: "Unknown", maxWidth: 16},
	{header: "Health", field: FieldOverallStatus, def: "g", maxWidth: 12},
	{header: "Priority", field: FieldPriority, def: "Unknown", maxWidth: 10},
	{header: "Last Updated", field: FieldDateUpdated, def: UnknownDate, maxWidth: 16},
}

// writeTable renders a rounded-border summary of records, one line each,
// sized by display width so wide characters stay aligned.
func writeTable(w io.Writer, records []Record) error {
	header := make([]string, len(summaryColumns))
	widths := make([]int, len(summaryColumns))
	for i, col := range summaryColumns {
		header[i] = col.header
		widths[i] = runewidth.StringWidth(col.header)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(summaryColumns))
		for j, col := range summaryColumns {
			cell := singleLine(r.Lookup(col.field, col.def))
			if runewidth.StringWidth(cell) > col.maxWidth {
				cell = runewidth.Truncate(cell, col.maxWidth, "...")
			}
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
			row[j] = cell
		}
		rows[i] = row
	}

	if err := drawHLine(w, widths, "╭", "┬", "╮"); err != nil {
		return err
	}
	if err := drawRow(w, header, widths); err != nil {
		return err
	}
	if err := drawHLine(w, widths, "├", "┼", "┤"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	if err := drawHLine(w, widths, "╰", "┴", "╯"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d projects\n", len(records))
	return err
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func drawHLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("│")
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(cells[i], width))
		sb.WriteString(" │")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
