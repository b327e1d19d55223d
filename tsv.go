package tablefit

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, columns []string, rows [][]any) error {
	if err := writeTSVRow(w, columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTSVRow(w, cellStrings(row)); err != nil {
			return err
		}
	}
	return nil
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\n", " ")

// writeTSVRow writes one line. Tabs and newlines inside cells become spaces so
// every row stays on one line.
func writeTSVRow(w io.Writer, cells []string) error {
	clean := make([]string, len(cells))
	for i, cell := range cells {
		clean[i] = tsvReplacer.Replace(cell)
	}
	_, err := fmt.Fprintln(w, strings.Join(clean, "\t"))
	return err
}
