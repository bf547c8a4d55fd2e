package projreport

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format represents an output format.
type Format string

const (
	Wiki     Format = "wiki"
	Markdown Format = "markdown"
	Plain    Format = "plain"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Wiki, Markdown, Plain, CSV, TSV, Table, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each record using a Go
// text/template executed against the record's field map.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Renderer renders record collections. The zero value uses [DefaultRoster].
type Renderer struct {
	Roster *Roster
}

// Write renders records in format f to w.
func (r Renderer) Write(w io.Writer, f Format, records []Record) error {
	switch f {
	case Wiki:
		return writeWiki(w, records, r.Roster)
	case Markdown:
		return writeMarkdown(w, records)
	case Plain:
		return writePlain(w, records)
	case CSV:
		return writeCSV(w, records, ',')
	case TSV:
		return writeCSV(w, records, '\t')
	case Table:
		return writeTable(w, records)
	case JSON:
		return writeJSON(w, records)
	case JSONL:
		return writeJSONL(w, records)
	case YAML:
		return writeYAML(w, records)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, records)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders records in format f and returns the bytes.
func (r Renderer) Marshal(f Format, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Write(&buf, f, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
