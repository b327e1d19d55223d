package tablefit

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteListIter formats rows from an iterator and writes them to w as they
// arrive. For formats where rows are independent (CSV, TSV, JSONL, Value,
// Shell, GoTemplate) each row is written immediately. JSON rows are streamed as
// array elements. Table, Markdown, HTML and YAML need every row for layout, so
// rows are collected first.
func WriteListIter(w io.Writer, f Format, columns []string, seq iter.Seq[[]any], opts Options) error {
	switch f {
	case Table, Markdown, HTML, YAML:
		return streamCollect(w, f, columns, seq, opts)
	case CSV:
		if err := writeCSVRow(w, columns, opts); err != nil {
			return err
		}
		return streamRows(columns, seq, func(row []any) error {
			return writeCSVRow(w, cellStrings(row), opts)
		})
	case TSV:
		if err := writeTSVRow(w, columns); err != nil {
			return err
		}
		return streamRows(columns, seq, func(row []any) error {
			return writeTSVRow(w, cellStrings(row))
		})
	case JSONL:
		return streamRows(columns, seq, func(row []any) error {
			return writeJSONL(w, []record{{columns: columns, values: row}})
		})
	case Value:
		return streamRows(columns, seq, func(row []any) error {
			return writeValueList(w, [][]any{row})
		})
	case Shell:
		first := true
		return streamRows(columns, seq, func(row []any) error {
			if !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			first = false
			return writeShell(w, columns, row, opts)
		})
	case JSON:
		return streamJSON(w, columns, seq, opts)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamRows(columns, seq, func(row []any) error {
				return writeGoTemplate(w, tmpl, []record{{columns: columns, values: row}})
			})
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteListChan formats rows from a channel and writes them to w.
// It is a thin wrapper around [WriteListIter].
func WriteListChan(w io.Writer, f Format, columns []string, ch <-chan []any, opts Options) error {
	return WriteListIter(w, f, columns, chanToIter(ch), opts)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// streamRows calls fn for every row, stopping at the first error. Rows are
// checked against the column count as they arrive.
func streamRows(columns []string, seq iter.Seq[[]any], fn func([]any) error) error {
	i := 0
	for row := range seq {
		if len(row) != len(columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrColumnMismatch, i, len(row), len(columns))
		}
		if err := fn(row); err != nil {
			return err
		}
		i++
	}
	return nil
}

func streamCollect(w io.Writer, f Format, columns []string, seq iter.Seq[[]any], opts Options) error {
	var rows [][]any
	for row := range seq {
		rows = append(rows, row)
	}
	return WriteList(w, f, columns, rows, opts)
}

// streamJSON writes the same bytes writeJSON writes for the whole list, one
// array element at a time.
func streamJSON(w io.Writer, columns []string, seq iter.Seq[[]any], opts Options) error {
	open, sep, closing := "[", ",", "]\n"
	if opts.Indent != "" {
		open, sep, closing = "[\n"+opts.Indent, ",\n"+opts.Indent, "\n]\n"
	}
	first := true
	err := streamRows(columns, seq, func(row []any) error {
		b, err := marshalJSONElement(record{columns: columns, values: row}, opts)
		if err != nil {
			return err
		}
		lead := sep
		if first {
			lead = open
		}
		first = false
		if _, err := io.WriteString(w, lead); err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	})
	if err != nil {
		return err
	}
	if first {
		closing = "[]\n"
	}
	_, err = io.WriteString(w, closing)
	return err
}
