package heatmap

import (
	"fmt"
	"strings"
	"time"
)

// Cell is the ephemeral per-day render record. Cells are built fresh into
// one slice per render pass and replaced wholesale on the next; no cell
// outlives the pass that produced it.
type Cell struct {
	Week  int     // column index, 0-based from the start week
	Day   int     // row index, Monday=0 .. Sunday=6
	X     float64 // left edge relative to the grid origin
	Y     float64 // top edge relative to the grid origin
	Color string
	Date  time.Time
	Count int
}

// buildCells produces one cell per calendar day in the data's span.
// Days with no matching data point render with count 0; the comparison
// ignores time-of-day.
func buildCells(data []DataPoint, g *Geometry, scale ColorScale) []Cell {
	start := data[0].Date
	end := truncateToMidnight(data[len(data)-1].Date)
	counts := indexCounts(data)

	cells := make([]Cell, 0, g.WeekCount*DayCount)
	for day := truncateToMidnight(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		count := counts[day.Format("2006-01-02")] // missing days read as 0
		week := weekDistance(start, day)
		row := dayIndex(day)
		cells = append(cells, Cell{
			Week:  week,
			Day:   row,
			X:     float64(week) * g.Step(),
			Y:     float64(row) * g.Step(),
			Color: scale(count),
			Date:  day,
			Count: count,
		})
	}
	return cells
}

// cellsSVG renders the day cells as rounded rectangles. Each rect carries
// a title element so static SVG consumers get hover text too.
func cellsSVG(cells []Cell, g *Geometry, f Formatter) string {
	var sb strings.Builder

	for _, c := range cells {
		sb.WriteString(fmt.Sprintf(`  <rect x="%g" y="%g" width="%g" height="%g" rx="2" ry="2" fill="%s" data-date="%s" data-count="%d">`+"\n",
			c.X, c.Y, g.CellSize, g.CellSize, c.Color, c.Date.Format("2006-01-02"), c.Count))
		sb.WriteString(fmt.Sprintf(`    <title>%s</title>`+"\n", f.CellTooltip(c.Date, c.Count)))
		sb.WriteString(`  </rect>` + "\n")
	}

	return sb.String()
}
