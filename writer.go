package projreport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Output file names, written under the output directory with an optional
// prefix.
const (
	MarkdownFile = "markdown_export.txt"
	WikiFile     = "wiki_export.txt"
	CSVFile      = "mycsvfile.csv"

	FilteredPrefix   = "filtered_"
	UnfilteredPrefix = "unfiltered_"
)

// Writer saves rendered reports to a directory.
type Writer struct {
	Dir      string
	Renderer Renderer
}

// Save writes the markdown, wiki and CSV renders of records to w.Dir, each
// file name prefixed with prefix. The directory is created when missing.
// An empty collection is rejected before anything is written since the CSV
// header comes from the first record.
func (w Writer) Save(records []Record, prefix string) error {
	if len(records) == 0 {
		return fmt.Errorf("save %s reports: %w", prefix, ErrNoRecords)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}
	outputs := []struct {
		name   string
		format Format
	}{
		{MarkdownFile, Markdown},
		{WikiFile, Wiki},
		{CSVFile, CSV},
	}
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := w.Renderer.Write(&buf, out.format, records); err != nil {
			return fmt.Errorf("render %s: %w", out.format, err)
		}
		path := filepath.Join(w.Dir, prefix+out.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"path":    path,
			"records": len(records),
		}).Debug("Wrote report")
	}
	return nil
}
