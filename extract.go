package projreport

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

const zeroWidthSpace = "\u200b"

// Cell is a single spreadsheet cell. Column is the key shared by every cell
// in the same column, including the label cell in the header row.
type Cell struct {
	Column  string
	Content string
}

// GridRow is one spreadsheet row with its cells in document order.
type GridRow struct {
	ID    string
	Cells []Cell
}

// Grid is the raw two-dimensional cell structure of a spreadsheet. The first
// row holds the field labels.
type Grid struct {
	Rows []GridRow
}

// Document is a fetched document: its title and its first spreadsheet.
type Document struct {
	Title string
	Grid  Grid
}

// Fetcher retrieves a document by identifier.
type Fetcher interface {
	FetchDocument(ctx context.Context, id string) (*Document, error)
}

// ExtractOptions controls how a [Grid] is turned into records.
type ExtractOptions struct {
	// Strict fails on a data cell whose column has no header label instead
	// of dropping it.
	Strict bool
	// SkipBlank drops rows where every value is empty.
	SkipBlank bool
}

// NormalizeField turns a header label into a field name: zero-width spaces
// are removed, spaces become underscores and the result is lowercased.
func NormalizeField(label string) string {
	label = strings.ReplaceAll(label, zeroWidthSpace, "")
	return strings.ToLower(strings.ReplaceAll(label, " ", "_"))
}

// Extract converts g into records using the first row as the header.
func Extract(g Grid) ([]Record, error) {
	return ExtractWith(g, ExtractOptions{})
}

// ExtractWith converts g into records using the first row as the header.
// Every record carries every header field; a header column missing from a
// data row is stored as "".
func ExtractWith(g Grid, opts ExtractOptions) ([]Record, error) {
	if len(g.Rows) == 0 {
		return nil, nil
	}

	header := g.Rows[0]
	names := make(map[string]string, len(header.Cells))
	keys := make([]string, 0, len(header.Cells))
	for _, c := range header.Cells {
		if _, dup := names[c.Column]; dup {
			continue
		}
		name := NormalizeField(c.Content)
		names[c.Column] = name
		keys = append(keys, name)
	}

	records := make([]Record, 0, len(g.Rows)-1)
	for i, row := range g.Rows[1:] {
		values := make(map[string]string, len(keys))
		for _, c := range row.Cells {
			name, ok := names[c.Column]
			if !ok {
				if opts.Strict {
					return nil, &ColumnError{Row: i + 2, RowID: row.ID, Column: c.Column}
				}
				log.WithFields(log.Fields{
					"row":    i + 2,
					"row_id": row.ID,
					"column": c.Column,
				}).Debug("Dropping cell without header label")
				continue
			}
			values[name] = strings.ReplaceAll(c.Content, zeroWidthSpace, "")
		}

		pairs := make([]KeyValue, len(keys))
		blank := true
		for j, k := range keys {
			v := values[k]
			if v != "" {
				blank = false
			}
			pairs[j] = KeyValue{Key: k, Value: v}
		}
		if opts.SkipBlank && blank {
			continue
		}
		records = append(records, NewRecord(pairs...))
	}
	return records, nil
}
