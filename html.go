package tablefit

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, header []string, rows [][]string, aligns []Alignment) error {
	if len(rows) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if err := writeHTMLRow(w, "th", header, aligns); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeHTMLRow(w, "td", row, aligns); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []Alignment) error {
	var sb strings.Builder
	sb.WriteString("    <tr>\n")
	for i, cell := range cells {
		text := strings.ReplaceAll(html.EscapeString(cell), "\n", "<br>")
		fmt.Fprintf(&sb, "      <%s%s>%s</%s>\n", tag, alignStyle(aligns, i), text, tag)
	}
	sb.WriteString("    </tr>")
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
