package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/http/response"
)

// CreateTaskRequest is the body of POST /tasks. Status defaults to todo,
// priority to low, creation date to today; the origin is always manual.
type CreateTaskRequest struct {
	Title        string      `json:"title"`
	Day          string      `json:"day"`
	Status       *string     `json:"status"`
	Priority     *int        `json:"priority"`
	CreationDate domain.Date `json:"creation_date"`
}

// UpdateTaskRequest is the body of PATCH /tasks/{id}. Absent fields are
// left untouched.
type UpdateTaskRequest struct {
	Title    *string `json:"title"`
	Day      *string `json:"day"`
	Status   *string `json:"status"`
	Priority *int    `json:"priority"`
}

// MoveTaskRequest is the body of POST /tasks/{id}/move.
type MoveTaskRequest struct {
	Day    string `json:"day"`
	Status string `json:"status"`
}

// TasksResponse lists board tasks.
type TasksResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// ListTasks handles GET /tasks and GET /tasks?day=.
// With a day filter the tasks come back in ascending priority order.
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []domain.Task

	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := domain.NewWeekday(raw)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		tasks = s.tasks.ListByDay(r.Context(), day)
	} else {
		tasks = s.tasks.List(r.Context())
	}

	response.OK(w, TasksResponse{Tasks: mapTasksToDTO(tasks)})
}

// CreateTask handles POST /tasks.
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			response.FromDomainError(w, r, err)
			return
		}
		response.BadRequest(w, "invalid JSON")
		return
	}

	title, err := domain.NewTitle(req.Title)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	day, err := domain.NewWeekday(req.Day)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	status := domain.StatusTodo
	if req.Status != nil {
		if status, err = domain.NewTaskStatus(*req.Status); err != nil {
			response.FromDomainError(w, r, err)
			return
		}
	}

	priority := domain.DefaultPriority
	if req.Priority != nil {
		if priority, err = domain.NewPriority(*req.Priority); err != nil {
			response.FromDomainError(w, r, err)
			return
		}
	}

	creationDate := req.CreationDate
	if creationDate.IsZero() {
		creationDate = s.today()
	}

	task, ok := s.tasks.Add(r.Context(), domain.Task{
		Title:        title,
		Day:          day,
		Status:       status,
		Priority:     priority,
		Origin:       domain.OriginManual,
		CreationDate: creationDate,
	})
	if !ok {
		response.InternalError(w, r, errors.New("task was not stored"))
		return
	}

	response.Created(w, mapTaskToDTO(task))
}

// UpdateTask handles PATCH /tasks/{id}.
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	var params domain.UpdateTaskParams

	if req.Title != nil {
		title, err := domain.NewTitle(*req.Title)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.Title = &title
	}
	if req.Day != nil {
		day, err := domain.NewWeekday(*req.Day)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.Day = &day
	}
	if req.Status != nil {
		status, err := domain.NewTaskStatus(*req.Status)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.Status = &status
	}
	if req.Priority != nil {
		priority, err := domain.NewPriority(*req.Priority)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.Priority = &priority
	}

	task, ok := s.tasks.Update(r.Context(), id, params)
	if !ok {
		response.NotFound(w, "task")
		return
	}

	response.OK(w, mapTaskToDTO(task))
}

// MoveTask handles POST /tasks/{id}/move.
func (s *Server) MoveTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req MoveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	day, err := domain.NewWeekday(req.Day)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	status, err := domain.NewTaskStatus(req.Status)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	if !s.tasks.Move(r.Context(), id, day, status) {
		response.NotFound(w, "task")
		return
	}

	task, found := s.tasks.Get(r.Context(), id)
	if !found {
		response.NotFound(w, "task")
		return
	}

	response.OK(w, mapTaskToDTO(task))
}

// DeleteTask handles DELETE /tasks/{id}. Deleting is idempotent, so an
// unknown id still yields 204.
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	s.tasks.Delete(r.Context(), chi.URLParam(r, "id"))

	response.NoContent(w)
}
