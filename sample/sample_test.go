package sample

import (
	"testing"
	"time"
)

func TestYearData_SpansTrailingWindow(t *testing.T) {
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	data := YearData(end, 1)

	if len(data) == 0 {
		t.Fatal("expected data points")
	}
	if want := end.AddDate(0, 0, -365); !data[0].Date.Equal(want) {
		t.Errorf("first date = %v, want window start %v", data[0].Date, want)
	}
	if !data[len(data)-1].Date.Equal(end) {
		t.Errorf("last date = %v, want window end %v", data[len(data)-1].Date, end)
	}
}

func TestRangeData_AscendingAndInRange(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	data := RangeData(from, to, 42)

	for i, d := range data {
		if d.Date.Before(from) || d.Date.After(to) {
			t.Errorf("point %d date %v outside [%v, %v]", i, d.Date, from, to)
		}
		if d.Count < 0 {
			t.Errorf("point %d has negative count %d", i, d.Count)
		}
		if i > 0 && !data[i-1].Date.Before(d.Date) {
			t.Errorf("dates not ascending at %d", i)
		}
	}
}

func TestRangeData_DeterministicBySeed(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	a := RangeData(from, to, 7)
	b := RangeData(from, to, 7)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := RangeData(from, to, 8)
	same := len(a) == len(c)
	if same {
		for i := range a {
			if a[i] != c[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical data")
	}
}
