package heatmap

import (
	"fmt"
)

// The fixed three-color ramp: empty, mid-activity, high-activity.
const (
	colorEmpty = "#ebedf0"
	colorMid   = "#7bc96f"
	colorHigh  = "#196127"
)

// ColorScale maps a daily count to a CSS hex color.
type ColorScale func(count int) string

type rgb struct {
	r, g, b float64
}

func (c rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.r+0.5), int(c.g+0.5), int(c.b+0.5))
}

var (
	rgbEmpty = rgb{235, 237, 240}
	rgbMid   = rgb{123, 201, 111}
	rgbHigh  = rgb{25, 97, 39}
)

// NewColorScale builds a count-to-color mapping from the observed maximum
// count in data. Control points sit at 0, max(10, countMax)/2 and countMax,
// interpolated linearly per channel and clamped outside the domain. The
// max(10, countMax) floor keeps the mid point away from zero when all
// counts are small, so the interpolation never divides by zero.
func NewColorScale(data []DataPoint) ColorScale {
	countMax := 0
	for _, d := range data {
		if d.Count > countMax {
			countMax = d.Count
		}
	}

	floor := countMax
	if floor < 10 {
		floor = 10
	}
	mid := float64(floor) / 2
	max := float64(countMax)

	return func(count int) string {
		c := float64(count)
		switch {
		case c <= 0:
			return colorEmpty
		case c >= max:
			return colorHigh
		case c < mid:
			return lerp(rgbEmpty, rgbMid, c/mid).String()
		default:
			return lerp(rgbMid, rgbHigh, (c-mid)/(max-mid)).String()
		}
	}
}

// lerp interpolates each channel between c1 and c2 at fraction f in [0,1].
func lerp(c1, c2 rgb, f float64) rgb {
	return rgb{
		r: c1.r + f*(c2.r-c1.r),
		g: c1.g + f*(c2.g-c1.g),
		b: c1.b + f*(c2.b-c1.b),
	}
}
