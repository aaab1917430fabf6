package heatmap

import (
	"fmt"
	"strconv"
	"testing"
)

func pointsWithCounts(counts ...int) []DataPoint {
	data := make([]DataPoint, len(counts))
	base := day(2024, 1, 1)
	for i, c := range counts {
		data[i] = DataPoint{Date: base.AddDate(0, 0, i), Count: c}
	}
	return data
}

func greenChannel(t *testing.T, color string) int {
	t.Helper()
	if len(color) != 7 || color[0] != '#' {
		t.Fatalf("unexpected color format: %q", color)
	}
	g, err := strconv.ParseInt(color[3:5], 16, 32)
	if err != nil {
		t.Fatalf("bad green channel in %q: %v", color, err)
	}
	return int(g)
}

func TestNewColorScale_ZeroAlwaysEmptyColor(t *testing.T) {
	for _, counts := range [][]int{{0}, {0, 50}, {0, 3}, {100, 200}} {
		scale := NewColorScale(pointsWithCounts(counts...))
		if got := scale(0); got != colorEmpty {
			t.Errorf("counts %v: scale(0) = %q, want %q", counts, got, colorEmpty)
		}
	}
}

func TestNewColorScale_EndpointColors(t *testing.T) {
	scale := NewColorScale(pointsWithCounts(0, 20))

	if got := scale(20); got != colorHigh {
		t.Errorf("scale(max) = %q, want %q", got, colorHigh)
	}
	if got := scale(10); got != colorMid {
		t.Errorf("scale(mid) = %q, want %q", got, colorMid)
	}
}

func TestNewColorScale_ClampOutsideDomain(t *testing.T) {
	scale := NewColorScale(pointsWithCounts(1, 20))

	if got := scale(-5); got != colorEmpty {
		t.Errorf("scale(-5) = %q, want %q", got, colorEmpty)
	}
	if got := scale(1000); got != colorHigh {
		t.Errorf("scale(1000) = %q, want %q", got, colorHigh)
	}
}

func TestNewColorScale_GreenRampMonotonic(t *testing.T) {
	// The ramp darkens as counts grow: the green channel never rises.
	scale := NewColorScale(pointsWithCounts(0, 40))

	prev := 256
	for c := 0; c <= 40; c++ {
		g := greenChannel(t, scale(c))
		if g > prev {
			t.Fatalf("green channel rose at count %d: %d > %d", c, g, prev)
		}
		prev = g
	}
}

func TestNewColorScale_AllZeroCounts(t *testing.T) {
	// The max(10, countMax) floor keeps the domain non-degenerate.
	scale := NewColorScale(pointsWithCounts(0, 0, 0))

	for _, c := range []int{0, 1, 5} {
		got := scale(c)
		if got == "" {
			t.Fatalf("scale(%d) returned empty color", c)
		}
	}
	if got := scale(0); got != colorEmpty {
		t.Errorf("scale(0) = %q, want %q", got, colorEmpty)
	}
}

func TestNewColorScale_SmallMaxUsesFloor(t *testing.T) {
	// countMax 4 < 10: the mid control point sits at 5, so count 4 is
	// still interpolated inside the first segment but count >= max is
	// clamped to the high endpoint.
	scale := NewColorScale(pointsWithCounts(1, 4))

	if got := scale(4); got != colorHigh {
		t.Errorf("scale(countMax) = %q, want %q", got, colorHigh)
	}
	low := greenChannel(t, scale(1))
	high := greenChannel(t, scale(3))
	if high > low {
		t.Errorf("green channel rose between counts 1 and 3: %d > %d", high, low)
	}
}

func ExampleNewColorScale() {
	scale := NewColorScale([]DataPoint{
		{Date: day(2024, 1, 1), Count: 0},
		{Date: day(2024, 1, 2), Count: 20},
	})
	fmt.Println(scale(0))
	fmt.Println(scale(20))
	// Output:
	// #ebedf0
	// #196127
}
