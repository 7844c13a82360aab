package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semana-app/semana/internal/calendar"
	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/kanban"
	"github.com/semana-app/semana/internal/kvstore"
	"github.com/semana-app/semana/internal/kvstore/memory"
	"github.com/semana-app/semana/internal/prefs"
	"github.com/semana-app/semana/internal/schedule"
	"github.com/semana-app/semana/internal/syncer"
)

// The test week: Monday 2025-01-06 through Friday 2025-01-10.
const testToday = "2025-01-06"

// newTestServer builds a handler server over an in-memory store with a
// fixed "today".
func newTestServer(t *testing.T, today string) (*Server, kvstore.Store) {
	t.Helper()

	kv := memory.NewStore()
	sched := schedule.NewStore(kv)
	board := kanban.NewStore(kv)

	s := NewServer(sched, board, syncer.New(sched, board), calendar.NewView(sched), prefs.NewStore(kv), kv)

	date, err := domain.ParseDate(today)
	require.NoError(t, err)
	s.today = func() domain.Date { return date }

	return s, kv
}

// do runs one request through the full route table.
func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
