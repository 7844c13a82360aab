package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/http/response"
)

// SetCellRequest is the body of PUT /schedule/{column}/{slot}.
// A blank value clears the cell.
type SetCellRequest struct {
	Value string `json:"value"`
}

// ScheduleColumnResponse is one weekday column of the grid, overlay
// entries included.
type ScheduleColumnResponse struct {
	Column  int         `json:"column"`
	Day     string      `json:"day"`
	Date    domain.Date `json:"date"`
	Entries []EntryDTO  `json:"entries"`
}

// GetScheduleColumn handles GET /schedule/{column}?date=.
// Without an explicit date the column's date in the current week is used.
func (s *Server) GetScheduleColumn(w http.ResponseWriter, r *http.Request) {
	column, day, ok := s.columnParam(w, r)
	if !ok {
		return
	}

	columnDate, ok := s.dateParam(w, r, column)
	if !ok {
		return
	}

	entries := s.schedule.Activities(r.Context(), column, columnDate)

	response.OK(w, ScheduleColumnResponse{
		Column:  column,
		Day:     string(day),
		Date:    columnDate,
		Entries: mapEntriesToDTO(entries),
	})
}

// GetScheduleActivity handles GET /schedule/{column}/{slot}?date=.
func (s *Server) GetScheduleActivity(w http.ResponseWriter, r *http.Request) {
	column, _, ok := s.columnParam(w, r)
	if !ok {
		return
	}

	slot, err := domain.NewSlot(chi.URLParam(r, "slot"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	columnDate, ok := s.dateParam(w, r, column)
	if !ok {
		return
	}

	entry, found := s.schedule.ActivityAt(r.Context(), slot, column, columnDate)
	if !found {
		response.NotFound(w, "activity")
		return
	}

	response.OK(w, mapEntryToDTO(entry))
}

// SetScheduleCell handles PUT /schedule/{column}/{slot}.
func (s *Server) SetScheduleCell(w http.ResponseWriter, r *http.Request) {
	column, _, ok := s.columnParam(w, r)
	if !ok {
		return
	}

	slot, err := domain.NewSlot(chi.URLParam(r, "slot"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	var req SetCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	if !s.schedule.SetCell(r.Context(), slot, column, req.Value) {
		response.InternalError(w, r, errors.New("schedule cell was not stored"))
		return
	}

	response.NoContent(w)
}

// columnParam parses and validates the {column} URL parameter.
// On failure the error response has already been written.
func (s *Server) columnParam(w http.ResponseWriter, r *http.Request) (int, domain.Weekday, bool) {
	column, err := strconv.Atoi(chi.URLParam(r, "column"))
	if err != nil {
		response.ValidationError(w, "column", "must be an integer between 0 and 4")
		return 0, "", false
	}

	day, err := domain.WeekdayForColumn(column)
	if err != nil {
		response.FromDomainError(w, r, err)
		return 0, "", false
	}

	return column, day, true
}

// dateParam parses the optional ?date= query parameter, defaulting to the
// column's date in the current week.
func (s *Server) dateParam(w http.ResponseWriter, r *http.Request, column int) (domain.Date, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.weekDateFor(column), true
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		response.FromDomainError(w, r, err)
		return domain.Date{}, false
	}

	return date, true
}
