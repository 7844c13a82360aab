package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTitle_Valid(t *testing.T) {
	title, err := NewTitle("Gym")
	require.NoError(t, err)
	assert.Equal(t, "Gym", title)
}

func TestNewTitle_TrimsWhitespace(t *testing.T) {
	title, err := NewTitle("  Review PRs  ")
	require.NoError(t, err)
	assert.Equal(t, "Review PRs", title)
}

func TestNewTitle_Empty(t *testing.T) {
	_, err := NewTitle("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTitleRequired))
}

func TestNewTitle_OnlyWhitespace(t *testing.T) {
	_, err := NewTitle("   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTitleRequired))
}

func TestNewTitle_TooLong(t *testing.T) {
	_, err := NewTitle(strings.Repeat("a", 256))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTitleTooLong))
}

func TestNewTitle_MaxLength(t *testing.T) {
	title, err := NewTitle(strings.Repeat("a", 255))
	require.NoError(t, err)
	assert.Len(t, title, 255)
}

func TestNewSlot_Valid(t *testing.T) {
	testCases := []string{"00:00", "07:00", "09:30", "13:45", "23:59"}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			slot, err := NewSlot(tc)
			require.NoError(t, err)
			assert.Equal(t, tc, slot)
		})
	}
}

func TestNewSlot_Invalid(t *testing.T) {
	testCases := []string{"7:00", "24:00", "09:60", "0900", "09:00:00", "", "morning"}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			_, err := NewSlot(tc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSlot))
		})
	}
}

func TestNewTaskStatus_AllValid(t *testing.T) {
	testCases := []struct {
		input    string
		expected TaskStatus
	}{
		{"todo", StatusTodo},
		{"TODO", StatusTodo},
		{"doing", StatusDoing},
		{"Doing", StatusDoing},
		{"done", StatusDone},
		{"DONE", StatusDone},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := NewTaskStatus(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestNewTaskStatus_Invalid(t *testing.T) {
	_, err := NewTaskStatus("blocked")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTaskStatus))
}

func TestNewTaskOrigin_AllValid(t *testing.T) {
	origin, err := NewTaskOrigin("manual")
	require.NoError(t, err)
	assert.Equal(t, OriginManual, origin)

	origin, err = NewTaskOrigin("SCHEDULE")
	require.NoError(t, err)
	assert.Equal(t, OriginSchedule, origin)
}

func TestNewTaskOrigin_Invalid(t *testing.T) {
	_, err := NewTaskOrigin("imported")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTaskOrigin))
}

func TestNewPriority_Valid(t *testing.T) {
	for n := 0; n <= 3; n++ {
		p, err := NewPriority(n)
		require.NoError(t, err)
		assert.Equal(t, Priority(n), p)
	}
}

func TestNewPriority_Invalid(t *testing.T) {
	for _, n := range []int{-1, 4, 100} {
		_, err := NewPriority(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPriority))
	}
}

func TestPriority_Presentation(t *testing.T) {
	assert.Equal(t, "Critical", PriorityCritical.Label())
	assert.Equal(t, "#e74c3c", PriorityCritical.Color())
	assert.Equal(t, "Low", PriorityLow.Label())
	assert.Equal(t, "#3498db", PriorityLow.Color())
	assert.Equal(t, "", Priority(9).Label())
	assert.Equal(t, "", Priority(9).Color())
}

func TestNewRecurrence_AllValid(t *testing.T) {
	testCases := []struct {
		input    string
		expected Recurrence
	}{
		{"unica", RecurrenceOnce},
		{"DIARIA", RecurrenceDaily},
		{"Semanal", RecurrenceWeekly},
		{"quinzenal", RecurrenceBiweekly},
		{"mensal", RecurrenceMonthly},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rule, err := NewRecurrence(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rule)
		})
	}
}

func TestNewRecurrence_Invalid(t *testing.T) {
	_, err := NewRecurrence("yearly")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecurrence))
}

func TestNewWeekday_CaseInsensitive(t *testing.T) {
	day, err := NewWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = NewWeekday("FRIDAY")
	require.NoError(t, err)
	assert.Equal(t, Friday, day)
}

func TestNewWeekday_RejectsWeekend(t *testing.T) {
	for _, name := range []string{"Saturday", "Sunday", "someday"} {
		_, err := NewWeekday(name)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidWeekday))
	}
}

func TestWeekdayColumns_RoundTrip(t *testing.T) {
	for col, want := range Weekdays() {
		day, err := WeekdayForColumn(col)
		require.NoError(t, err)
		assert.Equal(t, want, day)
		assert.Equal(t, col, day.Column())
	}
}

func TestWeekdayForColumn_OutOfRange(t *testing.T) {
	for _, col := range []int{-1, 5, 42} {
		_, err := WeekdayForColumn(col)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidColumn))
	}
}

func TestWeekdayOf(t *testing.T) {
	day, ok := WeekdayOf(NewDate(2025, time.January, 6))
	require.True(t, ok)
	assert.Equal(t, Monday, day)

	day, ok = WeekdayOf(NewDate(2025, time.January, 10))
	require.True(t, ok)
	assert.Equal(t, Friday, day)

	_, ok = WeekdayOf(NewDate(2025, time.January, 11))
	assert.False(t, ok)
}
