package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Time is a wall-clock time of day, without seconds. It is persisted as a
// 2-element [hour, minute] JSON array.
type Time struct {
	Hour   int
	Minute int
}

// TimeOf extracts the wall-clock time from t, truncated to the minute.
func TimeOf(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute()}
}

// Sub returns t - u as a signed difference. The subtraction is carried out
// on total minutes so a minuend with fewer minutes than the subtrahend
// borrows correctly instead of underflowing per field.
func (t Time) Sub(u Time) TimeDiff {
	m := (t.Hour*60 + t.Minute) - (u.Hour*60 + u.Minute)
	return TimeDiff{Hour: m / 60, Minute: m % 60}
}

// Hours projects t onto fractional hours, for summation only.
func (t Time) Hours() float64 {
	return float64(t.Hour) + float64(t.Minute)/60
}

// TimeFromHours converts a fractional-hour total back to an hour/minute
// pair for display. The total is rounded to the nearest minute first so
// sums like 9×(1/60) do not truncate down.
func TimeFromHours(f float64) Time {
	m := int(math.Round(f * 60))
	return Time{Hour: m / 60, Minute: m % 60}
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{t.Hour, t.Minute})
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var v [2]int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	t.Hour, t.Minute = v[0], v[1]
	return nil
}

// TimeDiff is a signed difference between two Times. Both fields carry the
// same sign: 09:00 - 10:30 is {-1, -30}.
type TimeDiff struct {
	Hour   int
	Minute int
}

// Hours projects the difference onto fractional hours.
func (d TimeDiff) Hours() float64 {
	return float64(d.Hour) + float64(d.Minute)/60
}

func (d TimeDiff) String() string {
	if d.Hour < 0 || d.Minute < 0 {
		return fmt.Sprintf("-%dh %dm", -d.Hour, -d.Minute)
	}
	return fmt.Sprintf("%dh %dm", d.Hour, d.Minute)
}
