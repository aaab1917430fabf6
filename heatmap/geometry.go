package heatmap

import (
	"fmt"
	"time"

	"github.com/stsysd/shibafu/model"
)

// Layout constants shared by every generator.
const (
	// CellGap is the fixed spacing between adjacent cells (px).
	CellGap = 3.0
	// DayCount is the number of rows: one per weekday, Monday first.
	DayCount = 7
	// MaxCellSize caps the solved cell size so narrow date ranges on
	// wide canvases do not produce oversized cells.
	MaxCellSize = 14.0
)

// Geometry holds the derived layout constants for one render pass.
// It is recomputed on every render and never cached across renders.
type Geometry struct {
	WeekCount int     // number of week columns, Monday-aligned, inclusive
	CellSize  float64 // side of each day cell (px)
	MarginTop float64 // grid origin offset from the canvas top
	Width     float64 // canvas width as supplied by the caller
	Height    float64 // canvas height, a fixed function of CellSize
}

// ResolveGeometry derives the layout for the given data and target width.
// data must be non-empty and in ascending order by date; the first and
// last elements bound the calendar span. A width of zero or less is
// rejected so the caller can retain its previous geometry.
func ResolveGeometry(data []DataPoint, width float64) (*Geometry, error) {
	if len(data) == 0 {
		return nil, model.ErrEmptyData
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidWidth, width)
	}

	start := data[0].Date
	end := data[len(data)-1].Date

	weeks := weekDistance(start, end) + 1

	// Solve cellSize*(weeks+2) + CellGap*(weeks-1) == width, then cap.
	// The two extra columns reserve room for the left offset and the
	// weekday labels on the right.
	cellSize := (width - CellGap*float64(weeks-1)) / float64(weeks+2)
	if cellSize > MaxCellSize {
		cellSize = MaxCellSize
	}

	return &Geometry{
		WeekCount: weeks,
		CellSize:  cellSize,
		MarginTop: 3.5 * cellSize,
		Width:     width,
		Height:    (DayCount+5.5)*cellSize + (DayCount-1)*CellGap,
	}, nil
}

// Step returns the grid pitch: one cell plus one gap.
func (g *Geometry) Step() float64 {
	return g.CellSize + CellGap
}

// mondayFloor truncates t to midnight and backs up to the Monday of its
// week. Monday maps to itself, Sunday backs up six days.
func mondayFloor(t time.Time) time.Time {
	t = truncateToMidnight(t)
	back := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -back)
}

// weekDistance counts Monday boundaries between the weeks of a and b.
// Same week yields 0. b is expected not to precede a's week.
func weekDistance(a, b time.Time) int {
	fa := mondayFloor(a)
	fb := mondayFloor(b)
	// Round the day count so DST-shortened or -lengthened days in
	// zoned inputs cannot skew the division.
	days := int(fb.Sub(fa).Hours()/24 + 0.5)
	return days / 7
}

// dayIndex re-bases time.Weekday so Monday is row 0 and Sunday row 6.
func dayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// truncateToMidnight zeroes time component
func truncateToMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
