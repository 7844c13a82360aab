package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component, always anchored
// at midnight UTC. The zero value means "absent" and marshals to JSON null.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DateOf truncates an instant to its calendar date in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports calendar-day equality.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

// DaysSince returns the number of whole days from other to d.
// Both dates sit at midnight UTC, so the division is exact.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// Month returns the month.
func (d Date) Month() time.Month { return d.t.Month() }

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// String renders the date as YYYY-MM-DD, or "" when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON renders the date as a JSON string, or null when absent.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a YYYY-MM-DD string, an empty string, or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
