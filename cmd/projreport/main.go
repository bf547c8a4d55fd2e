package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/projreport"
	"github.com/bjaus/projreport/config"
	"github.com/bjaus/projreport/quip"
	"github.com/bjaus/projreport/xlsx"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	verbose    bool
	apiKey     string
	docID      string
	outputDir  string
	rosterFile string
	xlsxPath   string
	sheet      string
	strict     bool
	skipBlank  bool
	print      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "projreport [config_file]",
		Short: "Convert a quip document to misc report formats",
		Long: `projreport pulls the project status spreadsheet from a Quip document and
writes filtered and unfiltered wiki, markdown and CSV reports.

Projects marked Complete, with updates of None, or with ignore_in_reports
set are left out of the filtered set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{
				FullTimestamp: true,
			})
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), out, path, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging and print every report format")
	f.StringVar(&opts.apiKey, "quip_api_key", "", "API key for quip.")
	f.StringVar(&opts.docID, "quip_doc_id", "", "Quip document ID.")
	f.StringVar(&opts.outputDir, "output", "", "Output directory (default \"output\")")
	f.StringVar(&opts.rosterFile, "roster", "", "YAML roster of people and status markers")
	f.StringVar(&opts.xlsxPath, "xlsx", "", "Read the spreadsheet from a local workbook instead of Quip")
	f.StringVar(&opts.sheet, "sheet", "", "Workbook sheet to read with --xlsx (default: first sheet)")
	f.BoolVar(&opts.strict, "strict", false, "Fail on cells whose column has no header label")
	f.BoolVar(&opts.skipBlank, "skip-blank", false, "Skip rows with no values")
	f.StringVar(&opts.print, "print", "", "Also print the filtered projects in this format")
	return cmd
}

func run(ctx context.Context, out io.Writer, configPath string, opts options) error {
	settings, err := config.Load(configPath, config.Overrides{
		QuipAPIKey: opts.apiKey,
		QuipDocID:  opts.docID,
		OutputDir:  opts.outputDir,
		RosterFile: opts.rosterFile,
	})
	if err != nil {
		return err
	}

	var printFormat projreport.Format
	if opts.print != "" {
		if printFormat, err = projreport.ParseFormat(opts.print); err != nil {
			return err
		}
	}

	roster := projreport.DefaultRoster()
	if settings.RosterFile != "" {
		if roster, err = projreport.LoadRoster(settings.RosterFile); err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
	}

	fetcher, id, err := newFetcher(settings, opts)
	if err != nil {
		return err
	}

	doc, err := fetcher.FetchDocument(ctx, id)
	if err != nil {
		return err
	}
	log.Infof("Loading %s", doc.Title)

	projects, err := projreport.ExtractWith(doc.Grid, projreport.ExtractOptions{
		Strict:    opts.strict,
		SkipBlank: opts.skipBlank,
	})
	if err != nil {
		return err
	}
	filtered := projreport.Filter(projects, projreport.Include)
	log.WithFields(log.Fields{
		"projects": len(projects),
		"filtered": len(filtered),
	}).Info("Extracted projects")

	renderer := projreport.Renderer{Roster: roster}
	if opts.verbose {
		if err := dumpReports(out, renderer, filtered); err != nil {
			return err
		}
	}
	if printFormat != "" {
		if err := renderer.Write(out, printFormat, filtered); err != nil {
			return err
		}
	}

	w := projreport.Writer{Dir: settings.OutputDir, Renderer: renderer}
	if err := w.Save(filtered, projreport.FilteredPrefix); err != nil {
		return err
	}
	if err := w.Save(projects, projreport.UnfilteredPrefix); err != nil {
		return err
	}
	log.WithField("dir", settings.OutputDir).Info("Files saved to the output folder")
	return nil
}

func newFetcher(settings *config.Settings, opts options) (projreport.Fetcher, string, error) {
	if opts.xlsxPath != "" {
		log.WithFields(log.Fields{
			"workbook": opts.xlsxPath,
			"sheet":    opts.sheet,
		}).Debug("Reading local workbook")
		return xlsx.Open(opts.xlsxPath), opts.sheet, nil
	}
	if err := settings.Validate(); err != nil {
		return nil, "", err
	}
	log.WithFields(log.Fields{
		"doc": settings.QuipDocID,
		"key": settings.MaskedKey(),
	}).Debug("Trying quip document")
	return quip.NewClient(settings.QuipAPIKey, quip.WithBaseURL(settings.QuipBaseURL)), settings.QuipDocID, nil
}

func dumpReports(w io.Writer, r projreport.Renderer, records []projreport.Record) error {
	sections := []struct {
		banner string
		format projreport.Format
	}{
		{"WIKI FORMAT", projreport.Wiki},
		{"MARKDOWN FORMAT", projreport.Markdown},
		{"SIMPLE FORMAT", projreport.Plain},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "-------------------\n%-16s\n-------------------\n\n", s.banner); err != nil {
			return err
		}
		if err := r.Write(w, s.format, records); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}
