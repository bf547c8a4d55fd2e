package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bjaus/projreport"
	"github.com/bjaus/projreport/config"
	"github.com/bjaus/projreport/quip"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeConfig(t *testing.T, dir string, settings map[string]string) string {
	t.Helper()
	b, err := json.Marshal(settings)
	require.NoError(t, err)
	path := filepath.Join(dir, "config_settings.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func writeWorkbook(t *testing.T, dir string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(dir, "status.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QUIP_API_KEY", "")
	t.Setenv("QUIP_DOC_ID", "")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

var statusRows = [][]any{
	{"Title", "Project Manager", "Overall Status", "Updates", "Ignore In Reports"},
	{"Billing", "Tad", "g", "# shipped v2", "f"},
	{"Archive", "Chad", "Complete", "done", "f"},
	{"Legacy", "Gene", "y", "nothing new", "TRUE"},
}

func TestRunFromWorkbook(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, map[string]string{})
	book := writeWorkbook(t, dir, statusRows)
	outDir := filepath.Join(dir, "output")

	_, err := execute(t, cfg, "--xlsx", book, "--output", outDir)
	require.NoError(t, err)

	for _, prefix := range []string{projreport.FilteredPrefix, projreport.UnfilteredPrefix} {
		for _, name := range []string{projreport.MarkdownFile, projreport.WikiFile, projreport.CSVFile} {
			assert.FileExists(t, filepath.Join(outDir, prefix+name))
		}
	}

	csv, err := os.ReadFile(filepath.Join(outDir, projreport.FilteredPrefix+projreport.CSVFile))
	require.NoError(t, err)
	assert.Equal(t,
		"title,project_manager,overall_status,updates,ignore_in_reports\n"+
			"Billing,Tad,g,# shipped v2,f\n",
		string(csv))

	wiki, err := os.ReadFile(filepath.Join(outDir, projreport.UnfilteredPrefix+projreport.WikiFile))
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(wiki, []byte("|-\n")))
	assert.Contains(t, string(wiki), "{{#person:thickman}}")
}

func TestRunVerbosePrintsReports(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, map[string]string{"output_dir": filepath.Join(dir, "out")})
	book := writeWorkbook(t, dir, statusRows)

	out, err := execute(t, cfg, "-v", "--xlsx", book, "--print", "jsonl")
	require.NoError(t, err)
	assert.Contains(t, out, "WIKI FORMAT")
	assert.Contains(t, out, "MARKDOWN FORMAT")
	assert.Contains(t, out, "SIMPLE FORMAT")
	assert.Contains(t, out, "# [Billing](https://fburl/ens_project_status)")
	assert.Contains(t, out, `{"title":"Billing","project_manager":"Tad"`)
	assert.NotContains(t, out, "# [Archive]")
}

func TestRunFromQuip(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/1/threads/{id}", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(quip.ThreadDocument{
			Thread: quip.Thread{ID: chi.URLParam(req, "id"), Title: "Status"},
			HTML: `<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody>` +
				`<tr id="r1"><td>Title</td><td>Updates</td></tr>` +
				`<tr id="r2"><td>Search</td><td>indexed</td></tr>` +
				`</tbody></table>`,
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	dir := t.TempDir()
	cfg := writeConfig(t, dir, map[string]string{
		"quip_api_key":  "file-key",
		"quip_base_url": srv.URL,
		"output_dir":    filepath.Join(dir, "out"),
	})

	_, err := execute(t, cfg, "--quip_doc_id", "doc1")
	require.NoError(t, err)
	md, err := os.ReadFile(filepath.Join(dir, "out", projreport.FilteredPrefix+projreport.MarkdownFile))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# [Search]")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	book := writeWorkbook(t, dir, [][]any{
		{"Title", "Overall Status"},
		{"Archive", "Complete"},
	})
	cfg := writeConfig(t, dir, map[string]string{"output_dir": filepath.Join(dir, "out")})

	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"missing config": {
			args:    []string{filepath.Join(dir, "nope.json")},
			wantErr: config.ErrConfigNotFound,
		},
		"missing quip settings": {
			args:    []string{cfg},
			wantErr: config.ErrMissingSetting,
		},
		"empty filtered set": {
			args:    []string{cfg, "--xlsx", book},
			wantErr: projreport.ErrNoRecords,
		},
		"bad print format": {
			args:    []string{cfg, "--xlsx", book, "--print", "xml"},
			wantErr: projreport.ErrUnsupportedFormat,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunTooManyArgs(t *testing.T) {
	_, err := execute(t, "a.json", "b.json")
	assert.Error(t, err)
}
