// Package calendar projects the weekly schedule onto a month: every day
// paired with the activities actually due on it.
package calendar

import (
	"context"
	"time"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/recurring"
	"github.com/semana-app/semana/internal/schedule"
)

// ScheduleReader lists the effective activities of a weekday column.
type ScheduleReader interface {
	Activities(ctx context.Context, column int, columnDate domain.Date) []schedule.Entry
}

// Day is one calendar day and the activities due on it. Weekend days
// always carry an empty Entries list: the schedule has no weekend columns.
type Day struct {
	Date    domain.Date      `json:"date"`
	Entries []schedule.Entry `json:"entries"`
}

// View assembles monthly projections of the schedule.
type View struct {
	schedule ScheduleReader
}

// NewView creates a calendar view over the given schedule.
func NewView(schedule ScheduleReader) *View {
	return &View{schedule: schedule}
}

// Month returns every day of the given month in order. A weekday carries
// the entries of its schedule column that are due on that date, so a
// biweekly activity appears only inside its on-window and a monthly one
// only when the day of month matches its creation date.
func (v *View) Month(ctx context.Context, year int, month time.Month) []Day {
	days := make([]Day, 0, 31)
	for d := domain.NewDate(year, month, 1); d.Month() == month; d = d.AddDays(1) {
		day := Day{Date: d, Entries: []schedule.Entry{}}
		if weekday, ok := domain.WeekdayOf(d); ok {
			for _, entry := range v.schedule.Activities(ctx, weekday.Column(), d) {
				if recurring.Due(d, entry.Rule, entry.CreationDate) {
					day.Entries = append(day.Entries, entry)
				}
			}
		}
		days = append(days, day)
	}
	return days
}
