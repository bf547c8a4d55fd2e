package projreport

import (
	"encoding/csv"
	"fmt"
	"io"
)

// writeCSV writes a header row taken from the first record's keys followed by
// one row per record. Fields missing from a later record are written empty.
func writeCSV(w io.Writer, records []Record, comma rune) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: delimited output needs a header record", ErrNoRecords)
	}
	header := records[0].Keys()
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Row(header)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
