package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semana-app/semana/internal/syncer"
)

func TestRunSync_CreatesAndThenSkips(t *testing.T) {
	s, _ := newTestServer(t, testToday)

	putCell(t, s, 0, "08:00", `Gym [P1] [semanal] [criado:2025-01-01]`)

	first := do(t, s, http.MethodPost, "/sync", "")
	require.Equal(t, http.StatusOK, first.Code)
	result := decodeBody[syncer.Result](t, first)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.False(t, result.Weekend)

	second := do(t, s, http.MethodPost, "/sync", "")
	require.Equal(t, http.StatusOK, second.Code)
	result = decodeBody[syncer.Result](t, second)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)

	tasks := decodeBody[TasksResponse](t, do(t, s, http.MethodGet, "/tasks?day=Monday", ""))
	assert.Len(t, tasks.Tasks, 1)
}

func TestRunSync_ExplicitWeekendDate(t *testing.T) {
	s, _ := newTestServer(t, testToday)

	putCell(t, s, 0, "08:00", `Gym [P1] [semanal] [criado:2025-01-01]`)

	// Saturday 2025-01-11.
	w := do(t, s, http.MethodPost, "/sync", `{"date":"2025-01-11"}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[syncer.Result](t, w)
	assert.True(t, result.Weekend)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestRunSync_RejectsMalformedDate(t *testing.T) {
	s, _ := newTestServer(t, testToday)

	w := do(t, s, http.MethodPost, "/sync", `{"date":"11/01/2025"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
