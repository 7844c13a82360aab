package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// slotPattern matches a zero-padded 24h HH:MM time, the only accepted
// slot format (lexicographic order on slots is chronological order).
var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NewTitle validates a task or activity title: trimmed, non-empty,
// at most 255 characters.
func NewTitle(s string) (string, error) {
	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrTitleRequired
	}

	if len(s) > 255 {
		return "", ErrTitleTooLong
	}

	return s, nil
}

// NewSlot validates a schedule time slot string.
func NewSlot(s string) (string, error) {
	s = strings.TrimSpace(s)

	if !slotPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}

	return s, nil
}

// NewTaskStatus validates and creates a TaskStatus.
func NewTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToLower(s))

	switch status {
	case StatusTodo, StatusDoing, StatusDone:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskStatus, s)
	}
}

// NewTaskOrigin validates and creates a TaskOrigin.
func NewTaskOrigin(s string) (TaskOrigin, error) {
	origin := TaskOrigin(strings.ToLower(s))

	switch origin {
	case OriginManual, OriginSchedule:
		return origin, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskOrigin, s)
	}
}

// NewPriority validates and creates a Priority.
func NewPriority(n int) (Priority, error) {
	p := Priority(n)

	if p < PriorityCritical || p > PriorityLow {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPriority, n)
	}

	return p, nil
}

// NewRecurrence validates and creates a Recurrence.
// Unknown rules are rejected here; note that the recurrence evaluator
// deliberately fails open when handed one anyway.
func NewRecurrence(s string) (Recurrence, error) {
	rule := Recurrence(strings.ToLower(s))

	switch rule {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly,
		RecurrenceBiweekly, RecurrenceMonthly:
		return rule, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRecurrence, s)
	}
}
