package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	errNoInput    = errors.New("no input data")
	errInputShape = errors.New("input must be a mapping or a sequence of mappings")
	errNoColumns  = errors.New("no recognized column names")
)

// dataset is decoded input: either many rows or, when single is set, one
// record in rows[0].
type dataset struct {
	columns []string
	rows    [][]any
	single  bool
}

// decodeInput reads JSON or YAML. A sequence of mappings becomes a list whose
// columns are the keys in the order they are first seen; a mapping becomes a
// single record.
func decodeInput(r io.Reader) (dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return dataset{}, errNoInput
		}
		return dataset{}, fmt.Errorf("decode input: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.MappingNode:
		columns, values, err := decodeMapping(root)
		if err != nil {
			return dataset{}, err
		}
		return dataset{columns: columns, rows: [][]any{values}, single: true}, nil
	case yaml.SequenceNode:
		return decodeSequence(root)
	default:
		return dataset{}, errInputShape
	}
}

func decodeMapping(node *yaml.Node) ([]string, []any, error) {
	columns := make([]string, 0, len(node.Content)/2)
	values := make([]any, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v any
		if err := node.Content[i+1].Decode(&v); err != nil {
			return nil, nil, fmt.Errorf("decode %q: %w", node.Content[i].Value, err)
		}
		columns = append(columns, node.Content[i].Value)
		values = append(values, v)
	}
	return columns, values, nil
}

func decodeSequence(node *yaml.Node) (dataset, error) {
	var columns []string
	index := map[string]int{}
	items := make([]map[string]any, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return dataset{}, fmt.Errorf("%w: element %d is not a mapping", errInputShape, i)
		}
		cols, values, err := decodeMapping(item)
		if err != nil {
			return dataset{}, fmt.Errorf("element %d: %w", i, err)
		}
		m := make(map[string]any, len(cols))
		for j, name := range cols {
			if _, ok := index[name]; !ok {
				index[name] = len(columns)
				columns = append(columns, name)
			}
			m[name] = values[j]
		}
		items = append(items, m)
	}

	rows := make([][]any, len(items))
	for i, m := range items {
		row := make([]any, len(columns))
		for name, v := range m {
			row[index[name]] = v
		}
		rows[i] = row
	}
	return dataset{columns: columns, rows: rows}, nil
}

// selectColumns keeps the columns named in want, in their original order.
// Names that do not exist are ignored, but at least one must match.
func (d dataset) selectColumns(want []string) (dataset, error) {
	if len(want) == 0 {
		return d, nil
	}
	var keep []int
	for i, name := range d.columns {
		if slices.Contains(want, name) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return dataset{}, fmt.Errorf("%w in %s, recognized columns are %s",
			errNoColumns, strings.Join(want, ", "), strings.Join(d.columns, ", "))
	}

	out := dataset{single: d.single, rows: make([][]any, len(d.rows))}
	for _, i := range keep {
		out.columns = append(out.columns, d.columns[i])
	}
	for r, row := range d.rows {
		selected := make([]any, len(keep))
		for j, i := range keep {
			selected[j] = row[i]
		}
		out.rows[r] = selected
	}
	return out, nil
}
