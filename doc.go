// Package projreport turns a project-status spreadsheet into weekly reports.
//
// A [Fetcher] supplies a [Document] whose [Grid] holds a header row of field
// labels followed by one row per project. [Extract] normalizes the labels
// (spaces become underscores, lowercase) and builds one [Record] per data
// row. [Include] decides whether a project belongs in the filtered report.
//
// # Rendering
//
// Every renderer is a pure function of the record list:
//
//   - [RenderWiki] — wiki table with status markers and person references
//     looked up in a [Roster]
//   - [RenderMarkdown] — markdown post, one block per project
//   - [RenderPlain] — key/value dump for the console
//
// Missing fields never fail a render; each renderer substitutes its own
// default for the field.
//
// [Renderer] dispatches on a [Format] and adds CSV, TSV, a console summary
// table, JSON, JSONL, YAML and go-template output:
//
//	f, err := projreport.ParseFormat(flagValue)
//	err = projreport.Renderer{Roster: roster}.Write(os.Stdout, f, records)
//
// # Roster
//
// The person and status tables are data, not code. [DefaultRoster] returns
// the table compiled into the binary; [LoadRoster] reads a replacement YAML
// file:
//
//	people:
//	  tad: thickman
//	person_fallback: unknown
//	statuses:
//	  r: "[[Image:RedCircle.png|20px]]"
//	status_fallback: NA
//
// # Output
//
// [Writer.Save] writes the markdown, wiki and CSV renders to a directory.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoRecords] — delimited output of an empty collection
//   - [ErrUnknownColumn] — strict extraction found a cell without a header
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrInvalidRoster] — roster file is not valid YAML
package projreport
