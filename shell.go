package tablefit

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// shellName turns a column name into a variable name.
func shellName(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), " ", "_")
}

func writeShell(w io.Writer, columns []string, values []any, opts Options) error {
	for i, column := range columns {
		name := shellName(column)
		if len(opts.Variables) > 0 && !slices.Contains(opts.Variables, name) {
			continue
		}
		value := strings.ReplaceAll(cellString(values[i]), `"`, `\"`)
		if _, err := fmt.Fprintf(w, "%s%s=\"%s\"\n", opts.Prefix, name, value); err != nil {
			return err
		}
	}
	return nil
}

func writeShellList(w io.Writer, columns []string, rows [][]any, opts Options) error {
	for i, row := range rows {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeShell(w, columns, row, opts); err != nil {
			return err
		}
	}
	return nil
}
