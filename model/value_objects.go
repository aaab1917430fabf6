// Package model provides value objects for rendering parameter validation.
package model

import (
	"fmt"
	"strconv"
	"time"
)

// Width represents a canvas width value object.
type Width struct {
	value float64
}

// NewWidth creates a new width value object. The width must be positive.
func NewWidth(widthStr string) (*Width, error) {
	if widthStr == "" {
		return nil, fmt.Errorf("width is required")
	}

	w, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid width parameter: must be a number")
	}
	if w <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWidth, w)
	}

	return &Width{value: w}, nil
}

// Float returns the width in pixels.
func (w *Width) Float() float64 {
	return w.value
}

// FontSize represents a label font size value object.
type FontSize struct {
	value float64
}

// NewFontSize creates a new font size value object.
// An empty string yields the default size of 14.
func NewFontSize(sizeStr string) (*FontSize, error) {
	if sizeStr == "" {
		return &FontSize{value: 14}, nil
	}

	s, err := strconv.ParseFloat(sizeStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid font_size parameter: must be a number")
	}
	if s <= 0 {
		return nil, fmt.Errorf("font_size must be greater than 0")
	}

	return &FontSize{value: s}, nil
}

// Float returns the font size in pixels.
func (f *FontSize) Float() float64 {
	return f.value
}

// DateRange represents a date range value object.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange creates a new date range value object.
// Empty parameters default to the trailing 366-day window ending today.
func NewDateRange(fromStr, toStr string) (*DateRange, error) {
	var fromTime, toTime time.Time
	var err error

	if fromStr != "" {
		fromTime, err = parseDateTime(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		defaultFrom, _ := getDefaultDateRange()
		fromTime = defaultFrom
	}

	if toStr != "" {
		toTime, err = parseDateTime(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		_, defaultTo := getDefaultDateRange()
		toTime = defaultTo
	}

	fromTime = normalizeToBeginOfDay(fromTime)
	toTime = normalizeToBeginOfDay(toTime)

	if toTime.Before(fromTime) {
		return nil, fmt.Errorf("to must not be before from")
	}

	return &DateRange{from: fromTime, to: toTime}, nil
}

// From returns the start date.
func (d *DateRange) From() time.Time {
	return d.from
}

// To returns the end date.
func (d *DateRange) To() time.Time {
	return d.to
}

// getDefaultDateRange calculates the default trailing 366-day window.
func getDefaultDateRange() (time.Time, time.Time) {
	now := time.Now()
	return now.AddDate(0, 0, -365), now
}

// normalizeToBeginOfDay normalizes time to beginning of day (00:00:00).
func normalizeToBeginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// parseDateTime parses date string with flexible format support.
func parseDateTime(dateStr string) (time.Time, error) {
	// Try RFC3339 format first (with time)
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	// Try date-only format (YYYY-MM-DD)
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// Seed represents a sample-data seed value object.
type Seed struct {
	value int64
}

// NewSeed creates a new seed value object. Empty strings default to 1.
func NewSeed(seedStr string) (*Seed, error) {
	if seedStr == "" {
		return &Seed{value: 1}, nil
	}

	s, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed parameter: must be an integer")
	}

	return &Seed{value: s}, nil
}

// Int64 returns the seed value.
func (s *Seed) Int64() int64 {
	return s.value
}
