// Package compliance holds the behavioral test suite every kvstore.Store
// implementation must pass.
package compliance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semana-app/semana/internal/kvstore"
)

// RunStoreComplianceTest runs a standard set of tests against a Store
// implementation. setup returns a fresh (clean) store for each subtest and
// a teardown to clean up resources (if any).
func RunStoreComplianceTest(t *testing.T, setup func() (kvstore.Store, func())) {
	t.Run("SetAndGet", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "tasks", `[{"id":"1"}]`))

		value, err := store.Get(ctx, "tasks")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, value)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "dark_mode", "false"))
		require.NoError(t, store.Set(ctx, "dark_mode", "true"))

		value, err := store.Get(ctx, "dark_mode")
		require.NoError(t, err)
		assert.Equal(t, "true", value)
	})

	t.Run("EmptyValueIsStored", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		// An empty string is a value, not an absence.
		require.NoError(t, store.Set(ctx, "time_slots", ""))

		value, err := store.Get(ctx, "time_slots")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		_, err := store.Get(ctx, "never-written")
		assert.True(t, errors.Is(err, kvstore.ErrKeyNotFound))
	})

	t.Run("DeleteRemovesKey", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "tasks", "[]"))
		require.NoError(t, store.Delete(ctx, "tasks"))

		_, err := store.Get(ctx, "tasks")
		assert.True(t, errors.Is(err, kvstore.ErrKeyNotFound))
	})

	t.Run("DeleteAbsentKeyIsNoop", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		assert.NoError(t, store.Delete(ctx, "never-written"))
	})

	t.Run("KeysFilteredByPrefixAndSorted", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "grid.b", "x"))
		require.NoError(t, store.Set(ctx, "grid.a", "y"))
		require.NoError(t, store.Set(ctx, "tasks", "[]"))

		keys, err := store.Keys(ctx, "grid.")
		require.NoError(t, err)
		assert.Equal(t, []string{"grid.a", "grid.b"}, keys)
	})

	t.Run("KeysOnEmptyStore", func(t *testing.T) {
		store, teardown := setup()
		defer teardown()
		ctx := context.Background()

		keys, err := store.Keys(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
