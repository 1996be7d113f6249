package domain

import (
	"math"
	"testing"
)

func TestTimeSub(t *testing.T) {
	cases := []struct {
		name string
		a, b Time
		want TimeDiff
	}{
		{"whole hours", Time{18, 0}, Time{9, 0}, TimeDiff{9, 0}},
		{"minute borrow", Time{18, 0}, Time{9, 30}, TimeDiff{8, 30}},
		{"minutes only", Time{9, 45}, Time{9, 10}, TimeDiff{0, 35}},
		{"negative", Time{9, 0}, Time{10, 30}, TimeDiff{-1, -30}},
		{"zero", Time{12, 15}, Time{12, 15}, TimeDiff{0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Sub(c.b); got != c.want {
				t.Fatalf("%v - %v = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestHoursProjection(t *testing.T) {
	if got := (Time{9, 30}).Hours(); got != 9.5 {
		t.Fatalf("Hours() = %v, want 9.5", got)
	}
	if got := (TimeDiff{-1, -30}).Hours(); got != -1.5 {
		t.Fatalf("Hours() = %v, want -1.5", got)
	}
}

func TestTimeFromHours(t *testing.T) {
	cases := []struct {
		in   float64
		want Time
	}{
		{18.0, Time{18, 0}},
		{8.5, Time{8, 30}},
		{0, Time{0, 0}},
		// Nine one-minute slices: 9 * (1/60) rounds back to 9 minutes
		// instead of truncating to 8.
		{9.0 / 60.0, Time{0, 9}},
	}
	for _, c := range cases {
		if got := TimeFromHours(c.in); got != c.want {
			t.Fatalf("TimeFromHours(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSubRoundTripsThroughHours(t *testing.T) {
	a, b := Time{18, 10}, Time{9, 25}
	diff := a.Sub(b)
	back := TimeFromHours(diff.Hours())
	if back.Hour != diff.Hour || back.Minute != diff.Minute {
		t.Fatalf("round trip of %v gave %v", diff, back)
	}
	if math.Abs(diff.Hours()-(a.Hours()-b.Hours())) > 1e-9 {
		t.Fatalf("fractional projections disagree: %v vs %v", diff.Hours(), a.Hours()-b.Hours())
	}
}
