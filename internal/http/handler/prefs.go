package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/semana-app/semana/internal/http/response"
)

// ThemeResponse is the body of GET /prefs/theme and the request body of
// PUT /prefs/theme.
type ThemeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

// GetTheme handles GET /prefs/theme.
func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	response.OK(w, ThemeResponse{DarkMode: s.prefs.DarkMode(r.Context())})
}

// SetTheme handles PUT /prefs/theme.
func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	if !s.prefs.SetDarkMode(r.Context(), req.DarkMode) {
		response.InternalError(w, r, errors.New("theme preference was not stored"))
		return
	}

	response.OK(w, ThemeResponse{DarkMode: req.DarkMode})
}
