package domain

import "errors"

// Domain errors returned by value constructors and stores.

var (
	// ErrTaskNotFound indicates the requested task id does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTitleRequired indicates an empty or whitespace-only title.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooLong indicates a title above the 255 character limit.
	ErrTitleTooLong = errors.New("title exceeds 255 characters")

	// ErrInvalidDate indicates a string that is not a YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidWeekday indicates a name outside the five working weekdays.
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidColumn indicates a schedule column outside 0..4.
	ErrInvalidColumn = errors.New("invalid schedule column")

	// ErrInvalidSlot indicates a string that is not a zero-padded HH:MM time.
	ErrInvalidSlot = errors.New("invalid time slot")

	// ErrInvalidTaskStatus indicates an unknown task status value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidTaskOrigin indicates an unknown task origin value.
	ErrInvalidTaskOrigin = errors.New("invalid task origin")

	// ErrInvalidPriority indicates a priority outside 0..3.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidRecurrence indicates an unknown recurrence rule.
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
)
