package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date. It is persisted as a 3-element
// [year, month, day] JSON array.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf extracts the calendar date from t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{d.Year, d.Month, d.Day})
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v [3]int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	d.Year, d.Month, d.Day = v[0], v[1], v[2]
	return nil
}
