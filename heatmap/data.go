package heatmap

import (
	"time"
)

// DataPoint holds the date and count for each day.
// Sequences are supplied in ascending order by date. When the same day
// appears more than once, the first occurrence wins; later duplicates
// are ignored rather than summed or rejected.
type DataPoint struct {
	Date  time.Time
	Count int
}

// Options configures rendering parameters.
type Options struct {
	Width     float64   // target canvas width (px)
	FontColor string    // fill color for label text
	FontSize  float64   // font size for month/weekday labels (px)
	Locale    string    // locale tag for label formatting ("en", "zh", ...)
	Formatter Formatter // overrides Locale when non-nil
}

// countIndex maps "2006-01-02" date keys to counts. First write per key
// wins, preserving first-match semantics for duplicate dates.
type countIndex map[string]int

func indexCounts(data []DataPoint) countIndex {
	idx := make(countIndex, len(data))
	for _, d := range data {
		key := d.Date.Format("2006-01-02")
		if _, exists := idx[key]; !exists {
			idx[key] = d.Count
		}
	}
	return idx
}
