package projreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrNoRecords         = errors.New("no records")
	ErrUnknownColumn     = errors.New("column has no header label")
	ErrInvalidRoster     = errors.New("invalid roster")
)

// ColumnError reports a data cell whose column is missing from the header row.
type ColumnError struct {
	Row    int // 1-based spreadsheet row
	RowID  string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("row %d (id %q): column %q: %v", e.Row, e.RowID, e.Column, ErrUnknownColumn)
}

func (e *ColumnError) Unwrap() error {
	return ErrUnknownColumn
}
