package tablefit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestWrapCellWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is a full-width character (2 columns) that can never fit a column
	// of width 1; each one still lands on its own line.
	lines := wrapCell("你好", 1)
	assert.Equal(t, []string{"你", "好"}, lines)
}

func TestWrapCellNoWrap(t *testing.T) {
	t.Parallel()
	lines := wrapCell("hi", 0)
	assert.Equal(t, []string{"hi"}, lines)
}

func TestWrapCellFits(t *testing.T) {
	t.Parallel()
	lines := wrapCell("hi", 5)
	assert.Equal(t, []string{"hi"}, lines)
}

func TestWrapCellBasic(t *testing.T) {
	t.Parallel()
	lines := wrapCell("Hello", 3)
	assert.Equal(t, []string{"Hel", "lo"}, lines)
}

func TestWrapCellWords(t *testing.T) {
	t.Parallel()
	lines := wrapCell("hello big world", 9)
	assert.Equal(t, []string{"hello big", "world"}, lines)
}

func TestWrapCellNewlines(t *testing.T) {
	t.Parallel()
	lines := wrapCell("one\ntwo", 10)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestWrapCellKeepsBlankLines(t *testing.T) {
	t.Parallel()
	lines := wrapCell("a\n          \nb", 3)
	assert.Equal(t, []string{"a", "", "b"}, lines)
}

func TestRenderWideBlankLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	g := listGrid([]string{"a"}, [][]any{{"x\n" + strings.Repeat(" ", 12) + "\ny"}}, BorderASCII)
	require.NoError(t, g.render(&buf, layout{maxWidth: 4}))
	want := strings.Join([]string{
		"+------+",
		"| a    |",
		"+------+",
		"| x    |",
		"|      |",
		"| y    |",
		"+------+",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestAlignStyle(t *testing.T) {
	t.Parallel()
	aligns := []Alignment{AlignLeft, AlignRight, AlignCenter}
	assert.Empty(t, alignStyle(aligns, 0))
	assert.Equal(t, ` style="text-align: right"`, alignStyle(aligns, 1))
	assert.Equal(t, ` style="text-align: center"`, alignStyle(aligns, 2))
	assert.Empty(t, alignStyle(aligns, 3))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignCell("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", alignCell("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "abcdef", alignCell("abcdef", 3, AlignRight))
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  Kind
	}{
		"int":     {value: 3, want: KindInteger},
		"int64":   {value: int64(3), want: KindInteger},
		"uint8":   {value: uint8(3), want: KindInteger},
		"float64": {value: 3.5, want: KindFloat},
		"float32": {value: float32(3.5), want: KindFloat},
		"string":  {value: "3", want: KindText},
		"bool":    {value: true, want: KindText},
		"nil":     {value: nil, want: KindText},
		"time":    {value: time.Time{}, want: KindText},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, KindOf(tc.value))
		})
	}
}

func TestColumnAlignments(t *testing.T) {
	t.Parallel()
	aligns := columnAlignments(
		[]string{"ID", "Name", "Score"},
		[][]any{{1, "web", 0.5}, {"two", 2, "x"}},
	)
	assert.Equal(t, []Alignment{AlignRight, AlignLeft, AlignRight}, aligns)
	assert.Equal(t, []Alignment{AlignLeft}, columnAlignments([]string{"ID"}, nil))
}

func TestCellString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"nil":         {value: nil, want: ""},
		"string":      {value: "web", want: "web"},
		"crlf":        {value: "a\r\nb", want: "a\nb"},
		"lone cr":     {value: "a\rb", want: "a b"},
		"bytes":       {value: []byte("raw"), want: "raw"},
		"int":         {value: 42, want: "42"},
		"float":       {value: 2.5, want: "2.5"},
		"bool":        {value: false, want: "false"},
		"map":         {value: map[string]any{"a": 1}, want: `{"a":1}`},
		"slice":       {value: []any{"x", 2}, want: `["x",2]`},
		"stringer":    {value: KindFloat, want: "float"},
		"nested crlf": {value: []string{"a\r\nb"}, want: `["a\r\nb"]`},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cellString(tc.value))
		})
	}
}

func TestRecordMarshalJSONKeepsColumnOrder(t *testing.T) {
	t.Parallel()
	r := record{columns: []string{"z", "a", "m"}, values: []any{1, "two", nil}}
	b, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"two","m":null}`, string(b))
}

func TestRecordMarshalJSONNoHTMLEscape(t *testing.T) {
	t.Parallel()
	r := record{columns: []string{"<k>"}, values: []any{map[string]any{"a": "x&y"}}}
	b, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"<k>":{"a":"x&y"}}`, string(b))
	assert.Equal(t, `{"a":"x&y"}`, cellString(map[string]any{"a": "x&y"}))
}

func TestRenderEmptyGrid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	g := listGrid([]string{"a"}, nil, BorderASCII)
	require.NoError(t, g.render(&buf, layout{}))
	assert.Empty(t, buf.String())
}

func TestRenderMultilineCell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	g := listGrid([]string{"a", "b"}, [][]any{{"one\ntwo", "x"}}, BorderASCII)
	require.NoError(t, g.render(&buf, layout{}))
	want := strings.Join([]string{
		"+-----+---+",
		"| a   | b |",
		"+-----+---+",
		"| one | x |",
		"| two |   |",
		"+-----+---+",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestGridWidthsMinimumWinsOverCap(t *testing.T) {
	t.Parallel()
	g := listGrid([]string{"a", "b"}, [][]any{{strings.Repeat("x", 20), "y"}}, BorderASCII)
	assert.Equal(t, []int{8, 8}, g.widths(layout{minWidth: 8, maxWidth: 4}))
	assert.Equal(t, []int{10, 8}, g.widths(layout{minWidth: 8, maxWidths: map[string]int{"a": 10}}))
	assert.Equal(t, []int{20, 1}, g.widths(layout{}))
}

func TestWriteCSVRowSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := writeCSVRow(&buf, []string{"a", "b"}, Options{})
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n", buf.String())
}

func TestWriteCSVRowError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Small data: flush error hit via cw.Error().
	err := writeCSVRow(w, []string{"a", "b"}, Options{})
	assert.Error(t, err)
}

func TestWriteCSVRowLargeDataError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Large data exceeds bufio buffer (4096 bytes), causing cw.Write to fail.
	big := strings.Repeat("x", 5000)
	err := writeCSVRow(w, []string{big}, Options{})
	assert.Error(t, err)
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
