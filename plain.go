package projreport

import (
	"fmt"
	"io"
	"strings"
)

const (
	plainSeparator = "-------------------"
	plainMaxValue  = 50
)

// RenderPlain renders every field of every record on its own line, values
// cut to 50 characters, with a separator line after each record.
func RenderPlain(records []Record) string {
	var sb strings.Builder
	_ = writePlain(&sb, records)
	return sb.String()
}

func writePlain(w io.Writer, records []Record) error {
	for _, r := range records {
		for _, kv := range r.Pairs() {
			if _, err := fmt.Fprintf(w, "%s => %s\n", kv.Key, truncateRunes(kv.Value, plainMaxValue)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", plainSeparator); err != nil {
			return err
		}
	}
	return nil
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
