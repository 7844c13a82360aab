// Package prefs stores user interface preferences.
package prefs

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/semana-app/semana/internal/kvstore"
)

const darkModeKey = "dark_mode"

// Store keeps UI preferences in the shared key-value store. The flag is
// persisted as the strings "true"/"false".
type Store struct {
	kv kvstore.Store
}

// NewStore creates a preferences store over kv.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// DarkMode reports whether the dark theme is enabled. A never-stored or
// unreadable preference defaults to false.
func (s *Store) DarkMode(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, darkModeKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			slog.ErrorContext(ctx, "failed to load theme preference", "error", err)
		}
		return false
	}
	return raw == "true"
}

// SetDarkMode stores the theme flag. Returns false when the write fails.
func (s *Store) SetDarkMode(ctx context.Context, enabled bool) bool {
	if err := s.kv.Set(ctx, darkModeKey, strconv.FormatBool(enabled)); err != nil {
		slog.ErrorContext(ctx, "failed to store theme preference", "error", err)
		return false
	}
	return true
}
