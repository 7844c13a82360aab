// Package middleware holds the HTTP middleware shared by the API router.
package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
)

// payloadTooLargeJSON is the pre-marshaled 413 body. A constant can be
// written even when marshaling itself is what failed, and it matches the
// standard error response format.
const payloadTooLargeJSON = `{"error":{"code":"PAYLOAD_TOO_LARGE","message":"request body exceeds size limit","details":[]}}`

// MaxBodyBytes limits the request body size. The Content-Length header is
// checked first for early rejection; bodies without one (chunked encoding)
// or with a spoofed one are caught by reading through MaxBytesReader.
// Oversized requests get a 413 with the standard error body.
func MaxBodyBytes(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writePayloadTooLarge(w, r)
				return
			}

			body := http.MaxBytesReader(w, r.Body, maxBytes)
			buf, err := io.ReadAll(body)
			if err != nil {
				slog.WarnContext(r.Context(), "request body size limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"content_length", r.ContentLength,
					"limit", maxBytes,
					"error", err)
				writePayloadTooLarge(w, r)
				return
			}

			// Handlers need a readable body, so put the buffered one back.
			r.Body = io.NopCloser(bytes.NewReader(buf))
			next.ServeHTTP(w, r)
		})
	}
}

func writePayloadTooLarge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusRequestEntityTooLarge)
	if _, err := w.Write([]byte(payloadTooLargeJSON)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write payload too large response", "error", err)
	}
}
