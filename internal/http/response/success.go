// Package response renders the JSON bodies shared by every API handler.
//
// Payloads are marshaled before any byte is written, so an encoding
// failure still yields a 500 error body instead of a truncated 200.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// OK sends a 200 OK response with JSON data.
func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// Created sends a 201 Created response with JSON data.
func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		Error(w, "INTERNAL_ERROR", "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
