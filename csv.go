package tablefit

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, columns []string, rows [][]any, opts Options) error {
	cw := newCSVWriter(w, opts)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(cellStrings(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newCSVWriter(w io.Writer, opts Options) *csv.Writer {
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	return cw
}

// writeCSVRow writes a single row and flushes it, for streaming.
func writeCSVRow(w io.Writer, row []string, opts Options) error {
	cw := newCSVWriter(w, opts)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
