// Package tablefit renders record data, a list of column names plus rows of
// values, in multiple output formats, and fits text tables to the display.
//
// Supported formats are Table, CSV, TSV, JSON, JSONL, YAML, Markdown, HTML,
// Value, Shell and GoTemplate. The entry points are [WriteList] for many rows and [WriteOne]
// for a single record, plus [WriteListIter] and [WriteListChan] for rows that
// arrive over time:
//
//	cols := []string{"ID", "Name", "Description"}
//	rows := [][]any{{1, "web", "frontend servers"}}
//	tablefit.WriteList(os.Stdout, tablefit.Table, cols, rows, tablefit.Options{
//		Width: tablefit.TerminalWidth(os.Stdout),
//	})
//
// # Table
//
// Lists render one column per name with a header row. Each column's alignment
// comes from the [Kind] of its value in the first row: numbers are right
// aligned, everything else left aligned. A single record renders as a
// two-column Field/Value table.
//
// Border characters are chosen with [BorderStyle]; [BorderASCII] is the
// default.
//
// # Fitting to the display
//
// When [Options.Width] reports a display width and the table is wider, the
// columns wider than their fair share of the display are shrunk and their text
// wrapped. Columns that already fit are left alone. The space left for the wide
// columns is shared out by water-filling: each keeps at least the width of its
// header, then a common level is raised until the space runs out. See
// [PlanWidths] for the algorithm on its own.
//
// No column is shrunk below [ListMinWidth] (lists) or [OneMinWidth] (single
// records). The table overflows the display rather than go narrower.
//
// [Options.MaxWidth] skips fitting and caps every column at a fixed width.
//
// # Other formats
//
//   - CSV and TSV: header row then one line per row; lists only
//   - JSON and YAML: an object per record with keys in column order
//   - JSONL: one compact JSON object per line
//   - Markdown: GitHub-flavored table with alignment markers
//   - HTML: a <table> with text-align styles from the column alignment
//   - Value: bare values, space separated
//   - Shell: name="value" lines for eval in a shell
//   - GoTemplate: a [text/template] executed per row against a map keyed by
//     column name
//
// Use [ParseFormat] to convert a CLI flag string into a [Format] and
// [SupportsOne] to check whether it renders single records.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format or border name, or a list-only
//     format given a single record
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrColumnMismatch]: a row with a different number of values than columns
package tablefit
