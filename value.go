package tablefit

import (
	"fmt"
	"io"
	"strings"
)

// writeValueList writes each row's values separated by spaces, one row per line.
func writeValueList(w io.Writer, rows [][]any) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(cellStrings(row), " ")); err != nil {
			return err
		}
	}
	return nil
}

// writeValueOne writes each value on its own line.
func writeValueOne(w io.Writer, values []any) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, cellString(v)); err != nil {
			return err
		}
	}
	return nil
}
