// Package handler implements the JSON handlers behind the semana API.
package handler

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/semana-app/semana/internal/calendar"
	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/kanban"
	"github.com/semana-app/semana/internal/kvstore"
	"github.com/semana-app/semana/internal/prefs"
	"github.com/semana-app/semana/internal/schedule"
	"github.com/semana-app/semana/internal/syncer"
)

// Server holds the stores and engines the handlers dispatch to.
type Server struct {
	schedule *schedule.Store
	tasks    *kanban.Store
	syncer   *syncer.Syncer
	calendar *calendar.View
	prefs    *prefs.Store
	kv       kvstore.Store

	// today supplies the current date for requests that omit one.
	// Swapped out in tests.
	today func() domain.Date
}

// NewServer creates a new HTTP handler server.
func NewServer(
	scheduleStore *schedule.Store,
	taskStore *kanban.Store,
	syncEngine *syncer.Syncer,
	monthView *calendar.View,
	prefsStore *prefs.Store,
	kv kvstore.Store,
) *Server {
	return &Server{
		schedule: scheduleStore,
		tasks:    taskStore,
		syncer:   syncEngine,
		calendar: monthView,
		prefs:    prefsStore,
		kv:       kv,
		today:    func() domain.Date { return domain.DateOf(time.Now()) },
	}
}

// Routes builds the route table of the API. The caller mounts it under the
// version prefix and applies global middleware.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/slots", s.ListSlots)
	r.Post("/slots", s.AddSlot)
	r.Delete("/slots/{slot}", s.RemoveSlot)

	r.Get("/schedule/{column}", s.GetScheduleColumn)
	r.Get("/schedule/{column}/{slot}", s.GetScheduleActivity)
	r.Put("/schedule/{column}/{slot}", s.SetScheduleCell)

	r.Get("/tasks", s.ListTasks)
	r.Post("/tasks", s.CreateTask)
	r.Patch("/tasks/{id}", s.UpdateTask)
	r.Post("/tasks/{id}/move", s.MoveTask)
	r.Delete("/tasks/{id}", s.DeleteTask)

	r.Post("/sync", s.RunSync)

	r.Get("/calendar/{year}/{month}", s.GetCalendarMonth)

	r.Get("/prefs/theme", s.GetTheme)
	r.Put("/prefs/theme", s.SetTheme)

	r.Get("/export", s.Export)

	return r
}

// weekDateFor returns the date of the given column in the week holding
// today, weeks starting on Monday. Weekend days belong to the week that
// began the previous Monday.
func (s *Server) weekDateFor(column int) domain.Date {
	today := s.today()
	monday := today.AddDays(-((int(today.Weekday()) + 6) % 7))
	return monday.AddDays(column)
}
