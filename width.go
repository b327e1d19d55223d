package tablefit

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Fixed overhead of a bordered grid: every cell carries one space of padding on
// each side plus one divider, and the row is closed by one trailing border.
const (
	cellPadding    = 2
	columnOverhead = cellPadding + 1
	trailingBorder = 1
)

// Minimum column widths used when fitting tables to the display. Lists use a
// small floor so many columns still fit; single records use a larger one so the
// Field column stays readable.
const (
	ListMinWidth = 8
	OneMinWidth  = 16
)

// WidthPlan maps a column name to the maximum width it is rendered at.
// Columns that are absent keep their natural width.
type WidthPlan map[string]int

// budget is the space available to cell content once the grid's own
// characters are accounted for.
type budget struct {
	usable  int // total content width
	optimal int // usable split evenly across all columns
}

func newBudget(displayWidth, columns int) budget {
	if columns < 0 {
		columns = 0
	}
	usable := max(0, displayWidth-trailingBorder-columnOverhead*columns)
	if columns == 0 {
		return budget{usable: usable}
	}
	return budget{usable: usable, optimal: usable / columns}
}

// MeasureWidths recovers the content width of each column from the first line
// of a grid rendered with the given border style, e.g. "+----+------+".
// It reports false when the line is not a border line or has fewer segments
// than there are columns.
func MeasureWidths(firstLine string, columns []string, border BorderStyle) (map[string]int, bool) {
	bc, ok := borderSets[border]
	if !ok {
		return nil, false
	}
	return measureWidths(firstLine, columns, bc.topLeft+bc.topTee+bc.topRight)
}

func measureWidths(line string, columns []string, dividers string) (map[string]int, bool) {
	runes := []rune(line)
	if len(runes) < 2 || !strings.ContainsRune(dividers, runes[0]) || !strings.ContainsRune(dividers, runes[len(runes)-1]) {
		return nil, false
	}
	var segments []int
	n := 0
	for _, r := range runes[1:] {
		if strings.ContainsRune(dividers, r) {
			segments = append(segments, n)
			n = 0
			continue
		}
		n++
	}
	if len(segments) < len(columns) {
		return nil, false
	}
	widths := make(map[string]int, len(columns))
	for i, name := range columns {
		widths[name] = max(0, segments[i]-cellPadding)
	}
	return widths, true
}

// selectShrink splits columns into those that already fit within the optimal
// width, which keep their natural width, and candidates that must shrink. It
// returns the candidates in column order and the budget left for them.
func selectShrink(b budget, natural map[string]int, columns []string) ([]string, int) {
	var candidates []string
	remaining := b.usable
	for _, name := range columns {
		w := natural[name]
		if w <= b.optimal {
			remaining -= w
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates, remaining
}

type floorWidth struct {
	name  string
	width int
}

// allocate shares remaining between the candidates by water-filling: every
// candidate first gets its header width, then a common level is raised until
// the budget runs out. Integer remainders go one unit at a time to the
// candidates sitting at the level, narrowest header first.
func allocate(candidates []string, remaining int) map[string]int {
	plan := make(map[string]int, len(candidates))
	if len(candidates) == 0 {
		return plan
	}

	floors := make([]floorWidth, len(candidates))
	slack := remaining
	for i, name := range candidates {
		floors[i] = floorWidth{name: name, width: runewidth.StringWidth(name)}
		slack -= floors[i].width
	}
	sort.SliceStable(floors, func(i, j int) bool { return floors[i].width < floors[j].width })

	if slack <= 0 {
		for _, f := range floors {
			plan[f.name] = f.width
		}
		return plan
	}

	level := floors[0].width
	modulo := 0
	for pos := 1; pos <= len(floors); pos++ {
		if pos < len(floors) {
			if cost := pos * (floors[pos].width - level); cost < slack {
				slack -= cost
				level = floors[pos].width
				continue
			}
		}
		level += slack / pos
		modulo = slack % pos
		break
	}

	for _, f := range floors {
		w := f.width
		if w <= level {
			w = level
			if modulo > 0 {
				w++
				modulo--
			}
		}
		plan[f.name] = w
	}
	return plan
}

// PlanWidths decides the maximum width of each column so a grid with the given
// natural content widths fits displayWidth. Columns at or below their fair
// share are left out of the plan; the others share what remains. No entry is
// below minWidth, so the grid may still overflow when the display is too narrow.
func PlanWidths(columns []string, natural map[string]int, displayWidth, minWidth int) WidthPlan {
	b := newBudget(displayWidth, len(columns))
	candidates, remaining := selectShrink(b, natural, columns)
	plan := make(WidthPlan, len(candidates))
	for name, w := range allocate(candidates, remaining) {
		plan[name] = max(minWidth, w)
	}
	return plan
}
