// Package xlsx reads the project-status sheet from a local Excel workbook,
// for offline runs against an exported copy of the Quip document.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bjaus/projreport"
	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// Workbook is a [projreport.Fetcher] over an .xlsx file.
type Workbook struct {
	Path string
}

// Open returns a Workbook reading path.
func Open(path string) *Workbook {
	return &Workbook{Path: path}
}

// FetchDocument reads the named sheet, or the first sheet when sheet is
// empty. Cells are keyed by their column letter and rows by their 1-based
// row number.
func (w *Workbook) FetchDocument(ctx context.Context, sheet string) (*projreport.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var grid projreport.Grid
	for r, row := range rows {
		gr := projreport.GridRow{ID: strconv.Itoa(r + 1)}
		for c, value := range row {
			col, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return nil, err
			}
			gr.Cells = append(gr.Cells, projreport.Cell{Column: col, Content: value})
		}
		grid.Rows = append(grid.Rows, gr)
	}

	return &projreport.Document{
		Title: fmt.Sprintf("%s (%s)", filepath.Base(w.Path), sheet),
		Grid:  grid,
	}, nil
}
