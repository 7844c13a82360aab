// Package kanban maintains the weekly task board: one list of tasks
// spread over the five weekday columns and the to-do/doing/done statuses.
//
// The board is persisted as a single JSON array under one store key.
// Storage failures are logged and degrade to empty results or false.
package kanban

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/kvstore"
)

const tasksKey = "tasks"

// Store reads and writes the task board through a key-value store.
type Store struct {
	kv kvstore.Store
	mu sync.RWMutex
}

// NewStore creates a task store over kv.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// List returns every task on the board in stored order.
func (s *Store) List(ctx context.Context) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadTasks(ctx)
}

// ListByDay returns the tasks of one weekday ordered by priority, highest
// (0) first. Tasks of equal priority keep their stored order.
func (s *Store) ListByDay(ctx context.Context, day domain.Weekday) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []domain.Task
	for _, task := range s.loadTasks(ctx) {
		if task.Day == day {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority < tasks[j].Priority
	})
	return tasks
}

// Get returns a task by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := s.loadTasks(ctx)
	if i := indexOf(tasks, id); i >= 0 {
		return tasks[i], true
	}
	return domain.Task{}, false
}

// Add stores a new task, generating an id when the task carries none.
// Status and origin default to to-do and manual. Invalid fields are
// logged and reported as false; nothing is stored.
func (s *Store) Add(ctx context.Context, task domain.Task) (domain.Task, bool) {
	title, err := domain.NewTitle(task.Title)
	if err != nil {
		slog.WarnContext(ctx, "rejected task", "error", err)
		return domain.Task{}, false
	}
	task.Title = title

	day, err := domain.NewWeekday(string(task.Day))
	if err != nil {
		slog.WarnContext(ctx, "rejected task", "day", task.Day, "error", err)
		return domain.Task{}, false
	}
	task.Day = day

	if task.Status == "" {
		task.Status = domain.StatusTodo
	} else {
		status, err := domain.NewTaskStatus(string(task.Status))
		if err != nil {
			slog.WarnContext(ctx, "rejected task", "status", task.Status, "error", err)
			return domain.Task{}, false
		}
		task.Status = status
	}

	if task.Origin == "" {
		task.Origin = domain.OriginManual
	} else {
		origin, err := domain.NewTaskOrigin(string(task.Origin))
		if err != nil {
			slog.WarnContext(ctx, "rejected task", "origin", task.Origin, "error", err)
			return domain.Task{}, false
		}
		task.Origin = origin
	}

	if _, err := domain.NewPriority(int(task.Priority)); err != nil {
		slog.WarnContext(ctx, "rejected task", "priority", task.Priority, "error", err)
		return domain.Task{}, false
	}

	if task.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate task id", "error", err)
			return domain.Task{}, false
		}
		task.ID = id.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	if indexOf(tasks, task.ID) >= 0 {
		slog.WarnContext(ctx, "rejected task with duplicate id", "id", task.ID)
		return domain.Task{}, false
	}
	tasks = append(tasks, task)
	if !s.saveTasks(ctx, tasks) {
		return domain.Task{}, false
	}
	return task, true
}

// Update patches a task in place; nil fields are left untouched. Returns
// false when the id is unknown or a provided field is invalid, in which
// case the task is unchanged.
func (s *Store) Update(ctx context.Context, id string, params domain.UpdateTaskParams) (domain.Task, bool) {
	if params.Title != nil {
		title, err := domain.NewTitle(*params.Title)
		if err != nil {
			slog.WarnContext(ctx, "rejected task update", "id", id, "error", err)
			return domain.Task{}, false
		}
		params.Title = &title
	}
	if params.Day != nil {
		day, err := domain.NewWeekday(string(*params.Day))
		if err != nil {
			slog.WarnContext(ctx, "rejected task update", "id", id, "error", err)
			return domain.Task{}, false
		}
		params.Day = &day
	}
	if params.Status != nil {
		status, err := domain.NewTaskStatus(string(*params.Status))
		if err != nil {
			slog.WarnContext(ctx, "rejected task update", "id", id, "error", err)
			return domain.Task{}, false
		}
		params.Status = &status
	}
	if params.Priority != nil {
		priority, err := domain.NewPriority(int(*params.Priority))
		if err != nil {
			slog.WarnContext(ctx, "rejected task update", "id", id, "error", err)
			return domain.Task{}, false
		}
		params.Priority = &priority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	i := indexOf(tasks, id)
	if i < 0 {
		return domain.Task{}, false
	}

	task := tasks[i]
	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Day != nil {
		task.Day = *params.Day
	}
	if params.Status != nil {
		task.Status = *params.Status
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}
	tasks[i] = task

	if !s.saveTasks(ctx, tasks) {
		return domain.Task{}, false
	}
	return task, true
}

// Move places a task on another weekday and status column.
func (s *Store) Move(ctx context.Context, id string, day domain.Weekday, status domain.TaskStatus) bool {
	_, ok := s.Update(ctx, id, domain.UpdateTaskParams{Day: &day, Status: &status})
	return ok
}

// Delete removes a task. Deleting an unknown id returns false.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadTasks(ctx)
	i := indexOf(tasks, id)
	if i < 0 {
		return false
	}
	tasks = append(tasks[:i], tasks[i+1:]...)
	return s.saveTasks(ctx, tasks)
}

func indexOf(tasks []domain.Task, id string) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) loadTasks(ctx context.Context) []domain.Task {
	raw, err := s.kv.Get(ctx, tasksKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			slog.ErrorContext(ctx, "failed to load tasks", "error", err)
		}
		return nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		slog.ErrorContext(ctx, "failed to decode tasks", "error", err)
		return nil
	}
	return tasks
}

func (s *Store) saveTasks(ctx context.Context, tasks []domain.Task) bool {
	data, err := json.Marshal(tasks)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode tasks", "error", err)
		return false
	}
	if err := s.kv.Set(ctx, tasksKey, string(data)); err != nil {
		slog.ErrorContext(ctx, "failed to store tasks", "error", err)
		return false
	}
	return true
}
