package tablefit

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeMarkdown(w io.Writer, header []string, rows [][]string, aligns []Alignment) error {
	if len(rows) == 0 {
		return nil
	}
	numCols := len(header)

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, numCols)
	for i, col := range header {
		widths[i] = max(3, runewidth.StringWidth(col))
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = escapeMarkdownRow(row)
		for j, cell := range cells[i] {
			if w := runewidth.StringWidth(cell); j < numCols && w > widths[j] {
				widths[j] = w
			}
		}
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range cells {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

// escapeMarkdownRow keeps each cell on one line and its pipes literal.
func escapeMarkdownRow(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		cell = strings.ReplaceAll(cell, "|", `\|`)
		out[i] = strings.ReplaceAll(cell, "\n", "<br>")
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
