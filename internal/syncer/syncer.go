// Package syncer bridges the weekly schedule and the task board: each run
// turns the schedule activities due today into task records.
package syncer

import (
	"context"
	"fmt"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/recurring"
	"github.com/semana-app/semana/internal/schedule"
)

// ScheduleReader lists the effective activities of a weekday column,
// including cells occupied through the daily overlay.
type ScheduleReader interface {
	Activities(ctx context.Context, column int, columnDate domain.Date) []schedule.Entry
}

// TaskBoard is the slice of the task store the synchronizer needs.
type TaskBoard interface {
	List(ctx context.Context) []domain.Task
	Add(ctx context.Context, task domain.Task) (domain.Task, bool)
}

// Result summarizes one synchronization run. Skipped counts activities
// already represented by a task; activities not due today are not counted
// at all. Weekend marks runs that ended before consulting the schedule.
type Result struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
	Weekend bool     `json:"weekend"`
}

// Syncer creates task records from due schedule activities.
type Syncer struct {
	schedule ScheduleReader
	tasks    TaskBoard
}

// New creates a synchronizer over the given schedule and task board.
func New(schedule ScheduleReader, tasks TaskBoard) *Syncer {
	return &Syncer{schedule: schedule, tasks: tasks}
}

// Sync creates a to-do task for every activity in today's weekday column
// that is due and not yet represented on the board. On weekend days it
// returns immediately without touching either store. A failure to create
// one task is recorded in Errors and does not abort the batch.
//
// A task counts as already-synced when its origin is the schedule, its
// creation date is today and its title equals the activity title. The
// origin activity key is written on created tasks but deliberately not
// consulted here, so same-titled activities in different slots collapse
// into one task per day.
func (s *Syncer) Sync(ctx context.Context, today domain.Date) Result {
	result := Result{Errors: []string{}}

	weekday, ok := domain.WeekdayOf(today)
	if !ok {
		result.Weekend = true
		return result
	}

	synced := map[string]bool{}
	for _, task := range s.tasks.List(ctx) {
		if task.Origin == domain.OriginSchedule && task.CreationDate.Equal(today) {
			synced[task.Title] = true
		}
	}

	for _, entry := range s.schedule.Activities(ctx, weekday.Column(), today) {
		if !recurring.Due(today, entry.Rule, entry.CreationDate) {
			continue
		}
		if synced[entry.Title] {
			result.Skipped++
			continue
		}

		activityKey := fmt.Sprintf("%s_%s", entry.Slot, entry.Title)
		_, created := s.tasks.Add(ctx, domain.Task{
			Title:             entry.Title,
			Day:               weekday,
			Status:            domain.StatusTodo,
			Priority:          entry.Priority,
			Origin:            domain.OriginSchedule,
			OriginActivityKey: &activityKey,
			CreationDate:      today,
		})
		if !created {
			result.Errors = append(result.Errors,
				fmt.Sprintf("failed to create task for %q at %s", entry.Title, entry.Slot))
			continue
		}
		synced[entry.Title] = true
		result.Created++
	}
	return result
}
