package tablefit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrColumnMismatch    = errors.New("value count does not match columns")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Value    Format = "value"
	Shell    Format = "shell"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, CSV, TSV, JSON, JSONL, YAML, Markdown, HTML, Value, Shell}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template is executed against a map keyed by column name.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// SupportsOne reports whether f can render a single record. CSV and TSV only
// render lists.
func SupportsOne(f Format) bool {
	if strings.HasPrefix(string(f), goTemplatePrefix) {
		return true
	}
	switch f {
	case Table, JSON, JSONL, YAML, Markdown, HTML, Value, Shell:
		return true
	default:
		return false
	}
}

// Options tunes rendering. The zero value renders an ASCII table that is not
// fitted to any display.
type Options struct {
	// MaxWidth caps every table column at this width. Zero fits the table to
	// the display reported by Width instead.
	MaxWidth int

	// Width reports the display width tables are fitted to. Nil means the
	// width is unknown and tables render at their natural width.
	Width WidthFunc

	// Border selects the table border characters.
	Border BorderStyle

	// Indent pretty-prints JSON with this indent string and sets the YAML
	// indentation to its length. Empty means compact JSON and default YAML.
	Indent string

	// Delimiter overrides the CSV field delimiter. Zero means comma.
	Delimiter rune

	// Prefix is prepended to every variable name in Shell format.
	Prefix string

	// Variables restricts Shell format to these variable names.
	Variables []string

	// Logger receives debug output about table fitting.
	Logger logr.Logger
}

// WriteList formats rows of values, one value per column, and writes them to w.
func WriteList(w io.Writer, f Format, columns []string, rows [][]any, opts Options) error {
	if err := checkRows(columns, rows); err != nil {
		return err
	}
	switch f {
	case Table:
		return writeTableList(w, columns, rows, opts)
	case CSV:
		return writeCSV(w, columns, rows, opts)
	case TSV:
		return writeTSV(w, columns, rows)
	case JSON:
		return writeJSON(w, records(columns, rows), opts)
	case JSONL:
		return writeJSONL(w, records(columns, rows))
	case YAML:
		return writeYAML(w, records(columns, rows), opts)
	case Markdown:
		return writeMarkdown(w, columns, cellRows(rows), columnAlignments(columns, rows))
	case HTML:
		return writeHTML(w, columns, cellRows(rows), columnAlignments(columns, rows))
	case Value:
		return writeValueList(w, rows)
	case Shell:
		return writeShellList(w, columns, rows, opts)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, records(columns, rows))
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteOne formats a single record, one value per column, and writes it to w.
func WriteOne(w io.Writer, f Format, columns []string, values []any, opts Options) error {
	if err := checkRecord(columns, values); err != nil {
		return err
	}
	switch f {
	case Table:
		return writeTableOne(w, columns, values, opts)
	case JSON:
		return writeJSON(w, record{columns: columns, values: values}, opts)
	case JSONL:
		return writeJSONL(w, []record{{columns: columns, values: values}})
	case YAML:
		return writeYAML(w, record{columns: columns, values: values}, opts)
	case Markdown:
		g := recordGrid(columns, values, opts.Border)
		return writeMarkdown(w, g.header, g.rows, g.aligns)
	case HTML:
		g := recordGrid(columns, values, opts.Border)
		return writeHTML(w, g.header, g.rows, g.aligns)
	case Value:
		return writeValueOne(w, values)
	case Shell:
		return writeShell(w, columns, values, opts)
	case CSV, TSV:
		return fmt.Errorf("%w: format %q cannot render a single record", ErrUnsupportedFormat, f)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, []record{{columns: columns, values: values}})
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// MarshalList formats rows and returns the bytes.
func MarshalList(f Format, columns []string, rows [][]any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteList(&buf, f, columns, rows, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalOne formats a single record and returns the bytes.
func MarshalOne(f Format, columns []string, values []any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteOne(&buf, f, columns, values, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableList(w io.Writer, columns []string, rows [][]any, opts Options) error {
	g := listGrid(columns, rows, opts.Border)
	l := fitLayout(g, opts.MaxWidth, ListMinWidth, opts.Width, opts.Logger)
	return g.render(w, l)
}

func writeTableOne(w io.Writer, columns []string, values []any, opts Options) error {
	g := recordGrid(columns, values, opts.Border)
	l := fitLayout(g, opts.MaxWidth, OneMinWidth, opts.Width, opts.Logger)
	return g.render(w, l)
}

func cellRows(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = cellStrings(row)
	}
	return out
}
