// Package recurring decides whether scheduled activities are due on a
// given calendar date.
package recurring

import "github.com/semana-app/semana/internal/domain"

// Due reports whether an activity with the given rule and creation date is
// due on target.
//
// Activities without a creation date are due unconditionally, under every
// rule. Nothing is ever due strictly before its creation date. Unknown
// rules fail open, so an entry written with a rule this version does not
// understand keeps showing up instead of silently disappearing.
func Due(target domain.Date, rule domain.Recurrence, created domain.Date) bool {
	if created.IsZero() {
		return true
	}
	if target.Before(created) {
		return false
	}

	switch rule {
	case domain.RecurrenceOnce:
		return target.Equal(created)

	case domain.RecurrenceDaily:
		return true

	case domain.RecurrenceWeekly:
		// Weekday alignment is the caller's job: the schedule grid only
		// asks about activities from their own weekday column.
		return true

	case domain.RecurrenceBiweekly:
		return biweeklyDue(target, created)

	case domain.RecurrenceMonthly:
		// Plain day-of-month equality. An activity created on the 31st is
		// never due in a shorter month; that is the intended behavior.
		return target.Day() == created.Day()

	default:
		return true
	}
}

// biweeklyDue implements the quinzenal window: due for the 7 days starting
// at creation, off for the next 7, repeating. Not an every-14th-day rule.
func biweeklyDue(target, created domain.Date) bool {
	return target.DaysSince(created)%14 < 7
}
