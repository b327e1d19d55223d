package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInput(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want dataset
	}{
		"json list": {
			in: `[{"b": 1, "a": 2}, {"c": 3, "a": 4}]`,
			want: dataset{
				columns: []string{"b", "a", "c"},
				rows:    [][]any{{1, 2, nil}, {nil, 4, 3}},
			},
		},
		"yaml list": {
			in: "- name: web\n  up: true\n- name: db\n  load: 0.5\n",
			want: dataset{
				columns: []string{"name", "up", "load"},
				rows:    [][]any{{"web", true, nil}, {"db", nil, 0.5}},
			},
		},
		"single record": {
			in: "name: web\ntags: [a, b]\n",
			want: dataset{
				columns: []string{"name", "tags"},
				rows:    [][]any{{"web", []any{"a", "b"}}},
				single:  true,
			},
		},
		"empty list": {
			in:   "[]",
			want: dataset{rows: [][]any{}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := decodeInput(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeInputErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      string
		wantErr error
	}{
		"empty":           {in: "", wantErr: errNoInput},
		"scalar":          {in: "hello", wantErr: errInputShape},
		"list of scalars": {in: "[1, 2]", wantErr: errInputShape},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := decodeInput(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecodeInputSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := decodeInput(strings.NewReader(`{"a": [1, 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode input")
}

func TestSelectColumns(t *testing.T) {
	t.Parallel()
	d := dataset{
		columns: []string{"a", "b", "c"},
		rows:    [][]any{{1, 2, 3}, {4, 5, 6}},
	}

	got, err := d.selectColumns(nil)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	got, err = d.selectColumns([]string{"c", "a", "zzz"})
	require.NoError(t, err)
	assert.Equal(t, dataset{
		columns: []string{"a", "c"},
		rows:    [][]any{{1, 3}, {4, 6}},
	}, got)

	_, err = d.selectColumns([]string{"zzz"})
	require.ErrorIs(t, err, errNoColumns)
	assert.Contains(t, err.Error(), "a, b, c")
}

func TestSelectColumnsKeepsSingle(t *testing.T) {
	t.Parallel()
	d := dataset{columns: []string{"a", "b"}, rows: [][]any{{1, 2}}, single: true}
	got, err := d.selectColumns([]string{"b"})
	require.NoError(t, err)
	assert.True(t, got.single)
	assert.Equal(t, [][]any{{2}}, got.rows)
}
