package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/semana-app/semana/internal/calendar"
	"github.com/semana-app/semana/internal/http/response"
)

// DayDTO is one day of the monthly projection.
type DayDTO struct {
	Date    string     `json:"date"`
	Weekend bool       `json:"weekend"`
	Entries []EntryDTO `json:"entries"`
}

// CalendarMonthResponse is the body of GET /calendar/{year}/{month}.
type CalendarMonthResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  []DayDTO `json:"days"`
}

// GetCalendarMonth handles GET /calendar/{year}/{month}.
func (s *Server) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		response.ValidationError(w, "year", "must be a four-digit year")
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		response.ValidationError(w, "month", "must be between 1 and 12")
		return
	}

	days := s.calendar.Month(r.Context(), year, time.Month(month))

	response.OK(w, CalendarMonthResponse{
		Year:  year,
		Month: month,
		Days:  mapDaysToDTO(days),
	})
}

func mapDaysToDTO(days []calendar.Day) []DayDTO {
	dtos := make([]DayDTO, len(days))
	for i, day := range days {
		dtos[i] = DayDTO{
			Date:    day.Date.String(),
			Weekend: day.Date.IsWeekend(),
			Entries: mapEntriesToDTO(day.Entries),
		}
	}
	return dtos
}
