package heatmap

import (
	"testing"
	"time"
)

func TestBuildCells_EightDayScenario(t *testing.T) {
	// 2024-01-01..2024-01-08, all counts 5, width 200.
	data := dailyPoints(day(2024, 1, 1), day(2024, 1, 8), 5)

	g, err := ResolveGeometry(data, 200)
	if err != nil {
		t.Fatalf("ResolveGeometry failed: %v", err)
	}
	if g.WeekCount != 2 {
		t.Fatalf("WeekCount = %d, want 2", g.WeekCount)
	}
	if g.CellSize > MaxCellSize {
		t.Fatalf("CellSize = %v, exceeds cap", g.CellSize)
	}

	cells := buildCells(data, g, NewColorScale(data))
	if len(cells) != 8 {
		t.Fatalf("got %d cells, want 8", len(cells))
	}

	wantDays := []int{0, 1, 2, 3, 4, 5, 6, 0}
	wantWeeks := []int{0, 0, 0, 0, 0, 0, 0, 1}
	for i, c := range cells {
		if c.Day != wantDays[i] {
			t.Errorf("cell %d: Day = %d, want %d", i, c.Day, wantDays[i])
		}
		if c.Week != wantWeeks[i] {
			t.Errorf("cell %d: Week = %d, want %d", i, c.Week, wantWeeks[i])
		}
		if c.X != float64(c.Week)*g.Step() || c.Y != float64(c.Day)*g.Step() {
			t.Errorf("cell %d: position (%v,%v) off grid", i, c.X, c.Y)
		}
	}
}

func TestBuildCells_MissingDaysDefaultToZero(t *testing.T) {
	// Only the endpoints carry data; the five days between render as 0.
	data := []DataPoint{
		{Date: day(2024, 1, 1), Count: 9},
		{Date: day(2024, 1, 7), Count: 9},
	}

	g, err := ResolveGeometry(data, 700)
	if err != nil {
		t.Fatalf("ResolveGeometry failed: %v", err)
	}

	scale := NewColorScale(data)
	cells := buildCells(data, g, scale)
	if len(cells) != 7 {
		t.Fatalf("got %d cells, want 7", len(cells))
	}

	for _, c := range cells[1:6] {
		if c.Count != 0 {
			t.Errorf("%s: Count = %d, want 0", c.Date.Format("2006-01-02"), c.Count)
		}
		if c.Color != scale(0) {
			t.Errorf("%s: Color = %q, want empty-cell color %q", c.Date.Format("2006-01-02"), c.Color, scale(0))
		}
	}
}

func TestBuildCells_DuplicateDateFirstMatchWins(t *testing.T) {
	data := []DataPoint{
		{Date: day(2024, 1, 1), Count: 3},
		{Date: day(2024, 1, 1), Count: 8},
		{Date: day(2024, 1, 2), Count: 1},
	}

	g, err := ResolveGeometry(data, 700)
	if err != nil {
		t.Fatalf("ResolveGeometry failed: %v", err)
	}

	cells := buildCells(data, g, NewColorScale(data))
	if cells[0].Count != 3 {
		t.Errorf("duplicate day Count = %d, want first match 3", cells[0].Count)
	}
}

func TestBuildCells_SameDayComparisonIgnoresTime(t *testing.T) {
	data := []DataPoint{
		{Date: time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC), Count: 4},
		{Date: time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), Count: 7},
	}

	g, err := ResolveGeometry(data, 700)
	if err != nil {
		t.Fatalf("ResolveGeometry failed: %v", err)
	}

	cells := buildCells(data, g, NewColorScale(data))
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	if cells[0].Count != 4 || cells[1].Count != 7 {
		t.Errorf("counts = %d,%d, want 4,7", cells[0].Count, cells[1].Count)
	}
}

func TestBuildCells_FullCoverage(t *testing.T) {
	// Every calendar day in the span maps to exactly one cell.
	data := dailyPoints(day(2024, 2, 14), day(2024, 5, 2), 1)

	g, err := ResolveGeometry(data, 700)
	if err != nil {
		t.Fatalf("ResolveGeometry failed: %v", err)
	}

	cells := buildCells(data, g, NewColorScale(data))
	if len(cells) != len(data) {
		t.Fatalf("got %d cells, want %d", len(cells), len(data))
	}

	seen := make(map[string]bool, len(cells))
	for _, c := range cells {
		key := c.Date.Format("2006-01-02")
		if seen[key] {
			t.Errorf("day %s mapped to more than one cell", key)
		}
		seen[key] = true
	}
}
