package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/http/response"
)

// AddSlotRequest is the body of POST /slots.
type AddSlotRequest struct {
	Slot string `json:"slot"`
}

// SlotsResponse lists the schedule rows in chronological order.
type SlotsResponse struct {
	Slots []string `json:"slots"`
}

// ListSlots handles GET /slots.
func (s *Server) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots := s.schedule.Slots(r.Context())
	if slots == nil {
		slots = []string{}
	}

	response.OK(w, SlotsResponse{Slots: slots})
}

// AddSlot handles POST /slots.
// Returns 409 when the slot is already listed or could not be stored.
func (s *Server) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req AddSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	slot, err := domain.NewSlot(req.Slot)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	if !s.schedule.AddSlot(r.Context(), slot) {
		response.Conflict(w, "slot already exists or was not stored")
		return
	}

	response.Created(w, SlotsResponse{Slots: s.schedule.Slots(r.Context())})
}

// RemoveSlot handles DELETE /slots/{slot}.
// Deleting is idempotent: the grid cascade runs and 204 comes back whether
// or not the slot was listed.
func (s *Server) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := domain.NewSlot(chi.URLParam(r, "slot"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	s.schedule.RemoveSlot(r.Context(), slot)

	response.NoContent(w)
}
