package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semana-app/semana/internal/http/middleware"
)

func echoHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func TestMaxBodyBytes_AllowsSmallBody(t *testing.T) {
	h := middleware.MaxBodyBytes(64)(echoHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"slot":"08:00"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"slot":"08:00"}`, w.Body.String())
}

func TestMaxBodyBytes_RejectsByContentLength(t *testing.T) {
	h := middleware.MaxBodyBytes(8)(echoHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 100)))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestMaxBodyBytes_RejectsChunkedBodyOverLimit(t *testing.T) {
	h := middleware.MaxBodyBytes(8)(echoHandler(t))

	// No Content-Length, so only the read path can catch it.
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 100)))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	auth := middleware.NewAuth("secret-token")
	h := auth.Validate(echoHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_RejectsMissingHeader(t *testing.T) {
	auth := middleware.NewAuth("secret-token")
	h := auth.Validate(echoHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing Authorization header")
}

func TestAuth_RejectsWrongScheme(t *testing.T) {
	auth := middleware.NewAuth("secret-token")
	h := auth.Validate(echoHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic secret-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectsWrongToken(t *testing.T) {
	auth := middleware.NewAuth("secret-token")
	h := auth.Validate(echoHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer other-token")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid API token")
}
