package projreport

import (
	"io"
	"strings"
	"text/template"
)

const markdownDefaultURL = "https://fburl/ens_project_status"

var markdownBlock = template.Must(template.New("markdown").Parse("# [{{.Title}}]({{.URL}})\n" +
	"## Report Updated on {{.DateUpdated}}\n" +
	"## ( {{.Priority}} Priority and PMed by {{.ProjectManager}})\n" +
	"{{.Updates}}\n" +
	"* * *\n\n"))

type markdownFields struct {
	URL            string
	Title          string
	DateUpdated    string
	Priority       string
	ProjectManager string
	Updates        string
}

// NormalizeMarkdown rewrites the spreadsheet's "#" list markers as markdown
// bullets. "#*" is replaced before "#" so nested markers collapse to a single
// "*".
func NormalizeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "#*", "*")
	return strings.ReplaceAll(s, "#", "*")
}

// RenderMarkdown renders records as a markdown post, one block per project.
func RenderMarkdown(records []Record) string {
	var sb strings.Builder
	_ = writeMarkdown(&sb, records)
	return sb.String()
}

func writeMarkdown(w io.Writer, records []Record) error {
	for _, r := range records {
		f := markdownFields{
			URL:            r.Lookup(FieldURL, markdownDefaultURL),
			Title:          r.Lookup(FieldTitle, "Unknown"),
			DateUpdated:    r.Lookup(FieldDateUpdated, UnknownDate),
			Priority:       r.Lookup(FieldPriority, "Unknown"),
			ProjectManager: r.Lookup(FieldProjectManager, "Unknown"),
			Updates:        NormalizeMarkdown(r.Lookup(FieldUpdates, "Unknown")),
		}
		if err := markdownBlock.Execute(w, f); err != nil {
			return err
		}
	}
	return nil
}
