package tablefit

import (
	"unicode/utf8"

	"github.com/go-logr/logr"
)

// fitLayout decides the layout g renders with. A positive maxWidth caps every
// column and skips fitting. Otherwise, when the display width is known and the
// grid is wider than it, the too-wide columns are shrunk to a plan made by
// PlanWidths. No column is ever narrower than minWidth.
func fitLayout(g grid, maxWidth, minWidth int, width WidthFunc, log logr.Logger) layout {
	l := layout{minWidth: minWidth}
	if maxWidth > 0 {
		l.maxWidth = maxWidth
		return l
	}
	if width == nil {
		return l
	}
	displayWidth, ok := width()
	if !ok || displayWidth <= 0 {
		return l
	}

	line, ok := g.firstLine(l)
	if !ok {
		return l
	}
	if utf8.RuneCountInString(line) <= displayWidth {
		return l
	}
	bc := g.chars()
	natural, ok := measureWidths(line, g.header, bc.topLeft+bc.topTee+bc.topRight)
	if !ok {
		log.V(1).Info("unable to measure grid, leaving widths unchanged", "line", line)
		return l
	}

	l.maxWidths = PlanWidths(g.header, natural, displayWidth, minWidth)
	log.V(1).Info("fitted table to display",
		"displayWidth", displayWidth,
		"naturalWidth", utf8.RuneCountInString(line),
		"plan", l.maxWidths,
	)
	return l
}
