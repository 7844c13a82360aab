package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is one of the five working weekdays tracked by the board.
// Value object - immutable string enum.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// weekdayColumns lists the working weekdays in schedule-column order.
var weekdayColumns = [5]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Weekdays returns the working weekdays in column order (0=Monday).
func Weekdays() [5]Weekday {
	return weekdayColumns
}

// NewWeekday validates a weekday name, case-insensitively.
func NewWeekday(s string) (Weekday, error) {
	for _, w := range weekdayColumns {
		if strings.EqualFold(s, string(w)) {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayForColumn maps a schedule column (0..4) to its weekday.
func WeekdayForColumn(col int) (Weekday, error) {
	if col < 0 || col >= len(weekdayColumns) {
		return "", fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return weekdayColumns[col], nil
}

// Column returns the schedule column of the weekday (0=Monday).
// Returns -1 for values outside the five working weekdays.
func (w Weekday) Column() int {
	for i, d := range weekdayColumns {
		if d == w {
			return i
		}
	}
	return -1
}

// WeekdayOf maps a date to its working weekday.
// ok is false when the date falls on a weekend.
func WeekdayOf(d Date) (Weekday, bool) {
	switch d.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	default:
		return "", false
	}
}
