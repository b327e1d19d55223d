package tablefit

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderASCII   BorderStyle = iota // +-|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"ascii":   BorderASCII,
	"rounded": BorderRounded,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name: ascii, rounded, heavy or double.
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: border %q", ErrUnsupportedFormat, s)
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// grid is the immutable input of the table renderer: a header, the rows of
// cell text and one alignment per column.
type grid struct {
	header []string
	rows   [][]string
	aligns []Alignment
	border BorderStyle
}

// layout carries the width settings applied when a grid is rendered.
type layout struct {
	minWidth  int
	maxWidth  int            // uniform cap for every column, 0 for none
	maxWidths map[string]int // per-column caps
}

func listGrid(columns []string, rows [][]any, border BorderStyle) grid {
	return grid{
		header: columns,
		rows:   cellRows(rows),
		aligns: columnAlignments(columns, rows),
		border: border,
	}
}

func recordGrid(columns []string, values []any, border BorderStyle) grid {
	cells := make([][]string, len(columns))
	for i, name := range columns {
		cells[i] = []string{name, cellString(values[i])}
	}
	return grid{
		header: []string{"Field", "Value"},
		rows:   cells,
		aligns: []Alignment{AlignLeft, AlignLeft},
		border: border,
	}
}

func (g grid) chars() borderChars {
	if bc, ok := borderSets[g.border]; ok {
		return bc
	}
	return borderSets[BorderASCII]
}

// naturalWidths returns the widest line of each column, header included.
func (g grid) naturalWidths() []int {
	widths := make([]int, len(g.header))
	for i, h := range g.header {
		widths[i] = textWidth(h)
	}
	for _, row := range g.rows {
		for i, cell := range row {
			if w := textWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// widths applies l to the natural widths. Caps are applied first and the
// minimum last, so the minimum wins over a smaller cap.
func (g grid) widths(l layout) []int {
	widths := g.naturalWidths()
	for i, name := range g.header {
		if l.maxWidth > 0 && widths[i] > l.maxWidth {
			widths[i] = l.maxWidth
		}
		if m, ok := l.maxWidths[name]; ok && m > 0 && widths[i] > m {
			widths[i] = m
		}
		if widths[i] < l.minWidth {
			widths[i] = l.minWidth
		}
	}
	return widths
}

// firstLine returns the top border the grid renders with l. A grid without
// rows renders nothing and has no first line.
func (g grid) firstLine(l layout) (string, bool) {
	if len(g.rows) == 0 {
		return "", false
	}
	bc := g.chars()
	return hLine(g.widths(l), bc.topLeft, bc.horizontal, bc.topTee, bc.topRight), true
}

// render writes the grid. Nothing is written for a grid without rows.
func (g grid) render(w io.Writer, l layout) error {
	if len(g.rows) == 0 {
		return nil
	}
	bc := g.chars()
	widths := g.widths(l)

	if _, err := fmt.Fprintln(w, hLine(widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)); err != nil {
		return err
	}
	if err := drawRow(w, g.header, widths, g.aligns, bc.vertical); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, hLine(widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)); err != nil {
		return err
	}
	for _, row := range g.rows {
		if err := drawRow(w, row, widths, g.aligns, bc.vertical); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, hLine(widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight))
	return err
}

func hLine(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+cellPadding))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

func drawRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	wrapped := make([][]string, len(widths))
	lines := 1
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		wrapped[i] = wrapCell(cell, width)
		lines = max(lines, len(wrapped[i]))
	}
	for line := range lines {
		var sb strings.Builder
		sb.WriteString(vert)
		for i, width := range widths {
			cell := ""
			if line < len(wrapped[i]) {
				cell = wrapped[i][line]
			}
			align := AlignLeft
			if i < len(aligns) {
				align = aligns[i]
			}
			sb.WriteString(" ")
			sb.WriteString(alignCell(cell, width, align))
			sb.WriteString(" ")
			sb.WriteString(vert)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// textWidth is the display width of the widest line in s.
func textWidth(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, runewidth.StringWidth(line))
	}
	return n
}

// wrapCell breaks s into lines no wider than width. Words are kept whole when
// they fit, longer words are split.
func wrapCell(s string, width int) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if width <= 0 || runewidth.StringWidth(line) <= width {
			lines = append(lines, line)
			continue
		}
		broken := wrap.String(wordwrap.String(line, width), width)
		n := len(lines)
		for _, part := range strings.Split(broken, "\n") {
			// A rune wider than the column is pushed to its own line,
			// leaving an empty one in front of it.
			if part = strings.TrimRight(part, " "); part != "" {
				lines = append(lines, part)
			}
		}
		// A blank line stays a blank line.
		if len(lines) == n {
			lines = append(lines, "")
		}
	}
	return lines
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
