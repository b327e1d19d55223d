package tablefit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the semantic type of a value, used to pick a column's alignment.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// KindOf classifies v. Go integer types are integers, float types are floats,
// and everything else, booleans included, is text.
func KindOf(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return KindInteger
	case float32, float64:
		return KindFloat
	default:
		return KindText
	}
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// AlignmentFor returns the alignment used for columns of kind k: numbers are
// right aligned, text is left aligned.
func AlignmentFor(k Kind) Alignment {
	switch k {
	case KindInteger, KindFloat:
		return AlignRight
	default:
		return AlignLeft
	}
}

// columnAlignments decides each column's alignment from the first row.
func columnAlignments(columns []string, rows [][]any) []Alignment {
	aligns := make([]Alignment, len(columns))
	if len(rows) == 0 {
		return aligns
	}
	for i, v := range rows[0] {
		if i < len(aligns) {
			aligns[i] = AlignmentFor(KindOf(v))
		}
	}
	return aligns
}

// cellString converts a value to the text shown in a cell.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeNewlines(val)
	case []byte:
		return normalizeNewlines(string(val))
	case fmt.Stringer:
		return normalizeNewlines(val.String())
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		var buf bytes.Buffer
		if err := encodeJSONValue(&buf, v); err == nil {
			return buf.String()
		}
	}
	return fmt.Sprint(v)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", " ")
}

func cellStrings(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cellString(v)
	}
	return out
}

func checkRows(columns []string, rows [][]any) error {
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrColumnMismatch, i, len(row), len(columns))
		}
	}
	return nil
}

func checkRecord(columns []string, values []any) error {
	if len(values) != len(columns) {
		return fmt.Errorf("%w: record has %d values, want %d", ErrColumnMismatch, len(values), len(columns))
	}
	return nil
}

// record is one row keyed by column name. It marshals to JSON and YAML with
// keys in column order.
type record struct {
	columns []string
	values  []any
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONValue(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSONValue(&buf, r.values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSONValue appends v to buf without HTML escaping or a trailing newline.
func encodeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

func (r record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, name := range r.columns {
		var key, val yaml.Node
		if err := key.Encode(name); err != nil {
			return nil, err
		}
		if err := val.Encode(r.values[i]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// asMap returns the record as a plain map, for template execution.
func (r record) asMap() map[string]any {
	m := make(map[string]any, len(r.columns))
	for i, name := range r.columns {
		m[name] = r.values[i]
	}
	return m
}

func records(columns []string, rows [][]any) []record {
	out := make([]record, len(rows))
	for i, row := range rows {
		out[i] = record{columns: columns, values: row}
	}
	return out
}
