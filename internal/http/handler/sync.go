package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/http/response"
)

// RunSyncRequest is the body of POST /sync. The body is optional; an
// absent or zero date means today.
type RunSyncRequest struct {
	Date domain.Date `json:"date"`
}

// RunSync handles POST /sync. The response is the run summary, including
// the weekend indicator when the date falls outside the working week.
func (s *Server) RunSync(w http.ResponseWriter, r *http.Request) {
	var req RunSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, domain.ErrInvalidDate) {
			response.FromDomainError(w, r, err)
			return
		}
		response.BadRequest(w, "invalid JSON")
		return
	}

	date := req.Date
	if date.IsZero() {
		date = s.today()
	}

	response.OK(w, s.syncer.Sync(r.Context(), date))
}
