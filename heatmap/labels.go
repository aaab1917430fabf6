package heatmap

import (
	"fmt"
	"strings"
	"time"
)

// All label generators emit SVG fragments positioned relative to the grid
// origin; the renderer wraps them in a single translated group.

// yearLegend renders one bold line summing every count in the window,
// above the grid. Its font size tracks the cell size, not the label font.
func yearLegend(data []DataPoint, g *Geometry, f Formatter) string {
	total := 0
	for _, d := range data {
		total += d.Count
	}
	return fmt.Sprintf(`  <text x="0" y="%g" class="legend">%s</text>`+"\n",
		-2*g.CellSize, f.YearLegend(total))
}

// monthLabels renders one label per month boundary crossed in [start, end],
// below the grid, aligned to the column of the month's first Monday.
func monthLabels(start, end time.Time, g *Geometry, f Formatter, fontSize float64) string {
	var sb strings.Builder

	y := float64(DayCount)*g.Step() + fontSize
	floor := mondayFloor(start)

	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	for !cursor.After(last) {
		fm := firstMonday(cursor)
		// Skip months whose first Monday falls outside the rendered span.
		if !fm.Before(floor) && !fm.After(end) {
			x := float64(weekDistance(start, fm)) * g.Step()
			sb.WriteString(fmt.Sprintf(`  <text x="%g" y="%g" class="label">%s</text>`+"\n",
				x, y, f.MonthLabel(cursor.Month())))
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return sb.String()
}

// firstMonday returns the first Monday on or after the given month start.
func firstMonday(monthStart time.Time) time.Time {
	ahead := (8 - int(monthStart.Weekday())) % 7
	return monthStart.AddDate(0, 0, ahead)
}

// weekdayRows lists the alternating rows that carry a weekday label.
var weekdayRows = []time.Weekday{time.Monday, time.Wednesday, time.Friday, time.Sunday}

// weekdayLabels renders four labels to the right of the grid, one for
// every other row, right-aligned with a middle baseline.
func weekdayLabels(g *Geometry, f Formatter) string {
	var sb strings.Builder

	x := float64(g.WeekCount)*g.Step() + g.CellSize
	for i, day := range weekdayRows {
		y := (2*float64(i) + 0.5) * g.Step()
		sb.WriteString(fmt.Sprintf(`  <text x="%g" y="%g" class="label" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			x, y, f.WeekdayLabel(day)))
	}

	return sb.String()
}
