// Package sample generates placeholder activity data for the preview
// server and the render command.
package sample

import (
	"math/rand"
	"time"

	"github.com/stsysd/shibafu/heatmap"
)

// YearData creates random activity data for the trailing 366-day window
// ending at end. The same seed always yields the same sequence.
func YearData(end time.Time, seed int64) []heatmap.DataPoint {
	return RangeData(end.AddDate(0, 0, -365), end, seed)
}

// RangeData creates random activity data covering [from, to], ascending
// by date. Weekends are weighted heavier, with occasional spikes. Days
// that roll a zero are left out of the sequence, so renders exercise the
// missing-day default.
func RangeData(from, to time.Time, seed int64) []heatmap.DataPoint {
	rng := rand.New(rand.NewSource(seed))

	var data []heatmap.DataPoint
	first := true
	current := from
	for !current.After(to) {
		var count int
		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			count = rng.Intn(10) // 0-9
		} else {
			count = rng.Intn(6) // 0-5
		}

		// Add occasional spikes of activity
		if rng.Intn(20) == 0 {
			count += rng.Intn(20)
		}

		// The first and last days always carry a point so the sequence
		// spans the full window.
		if count != 0 || first || current.Equal(to) {
			data = append(data, heatmap.DataPoint{Date: current, Count: count})
			first = false
		}

		current = current.AddDate(0, 0, 1)
	}

	return data
}
