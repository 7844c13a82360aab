package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	semanahttp "github.com/semana-app/semana/internal/http"
)

func stubAPI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
}

func TestHealthEndpoint_OpenWithoutAuth(t *testing.T) {
	server := semanahttp.NewAPIServer(stubAPI(), semanahttp.ServerConfig{APIToken: "secret"})

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIRoutes_RequireBearerToken(t *testing.T) {
	server := semanahttp.NewAPIServer(stubAPI(), semanahttp.ServerConfig{APIToken: "secret"})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic secret", want: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer secret", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAPIRoutes_OpenWhenNoTokenConfigured(t *testing.T) {
	server := semanahttp.NewAPIServer(stubAPI(), semanahttp.ServerConfig{})

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOversizedBody_Rejected(t *testing.T) {
	server := semanahttp.NewAPIServer(stubAPI(), semanahttp.ServerConfig{MaxBodyBytes: 16})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(strings.Repeat("x", 64)))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "PAYLOAD_TOO_LARGE")
}
