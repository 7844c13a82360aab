package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/kvstore/memory"
)

// 2025-01-06 is a Monday; the week runs through Friday 2025-01-10.
func date(t *testing.T, value string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestAddSlot_StoresSorted(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	assert.True(t, store.AddSlot(ctx, "09:00"))
	assert.True(t, store.AddSlot(ctx, "07:30"))
	assert.True(t, store.AddSlot(ctx, "08:15"))

	assert.Equal(t, []string{"07:30", "08:15", "09:00"}, store.Slots(ctx))
}

func TestAddSlot_DuplicateReturnsFalse(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	assert.True(t, store.AddSlot(ctx, "08:00"))
	assert.False(t, store.AddSlot(ctx, "08:00"))
	assert.Equal(t, []string{"08:00"}, store.Slots(ctx))
}

func TestAddSlot_InvalidRejected(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	for _, slot := range []string{"", "7:00", "25:00", "08:60", "0800"} {
		assert.False(t, store.AddSlot(ctx, slot), "slot %q should be rejected", slot)
	}
	assert.Empty(t, store.Slots(ctx))
}

func TestRemoveSlot_RemovesListedSlot(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.AddSlot(ctx, "08:00"))
	require.True(t, store.AddSlot(ctx, "09:00"))

	assert.True(t, store.RemoveSlot(ctx, "08:00"))
	assert.Equal(t, []string{"09:00"}, store.Slots(ctx))
	assert.False(t, store.RemoveSlot(ctx, "08:00"))
}

func TestRemoveSlot_CascadesGridRow(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.AddSlot(ctx, "08:00"))
	require.True(t, store.AddSlot(ctx, "09:00"))
	require.True(t, store.SetCell(ctx, "08:00", 0, "Run [P2] [diaria]"))
	require.True(t, store.SetCell(ctx, "08:00", 3, "Read [P3] [semanal]"))
	require.True(t, store.SetCell(ctx, "09:00", 1, "Plan [P1] [semanal]"))

	assert.True(t, store.RemoveSlot(ctx, "08:00"))

	assert.Empty(t, store.Cell(ctx, "08:00", 0))
	assert.Empty(t, store.Cell(ctx, "08:00", 3))
	assert.Equal(t, "Plan [P1] [semanal]", store.Cell(ctx, "09:00", 1))
}

func TestRemoveSlot_CascadeRunsEvenWhenSlotUnlisted(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	// A cell can outlive its slot listing; removal still clears the row.
	require.True(t, store.SetCell(ctx, "08:00", 2, "Stale [P3] [semanal]"))

	assert.False(t, store.RemoveSlot(ctx, "08:00"))
	assert.Empty(t, store.Cell(ctx, "08:00", 2))
}

func TestSetCell_RoundTrip(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "10:00", 4, "Review [P0] [mensal] [criado:2025-01-06]"))
	assert.Equal(t, "Review [P0] [mensal] [criado:2025-01-06]", store.Cell(ctx, "10:00", 4))
}

func TestSetCell_BlankDeletesCell(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "10:00", 1, "Call [P2] [unica]"))
	require.True(t, store.SetCell(ctx, "10:00", 1, "   "))

	assert.Empty(t, store.Cell(ctx, "10:00", 1))
	_, ok := store.ActivityAt(ctx, "10:00", 1, date(t, "2025-01-07"))
	assert.False(t, ok, "blank write must leave the cell absent, not empty")

	// Clearing an already-empty cell is a no-op, not a failure.
	assert.True(t, store.SetCell(ctx, "10:00", 1, ""))
}

func TestSetCell_InvalidInputRejected(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	assert.False(t, store.SetCell(ctx, "10:00", 5, "x"))
	assert.False(t, store.SetCell(ctx, "10:00", -1, "x"))
	assert.False(t, store.SetCell(ctx, "banana", 0, "x"))
}

func TestActivities_SortedAndDecoded(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.AddSlot(ctx, "14:00"))
	require.True(t, store.AddSlot(ctx, "08:00"))
	require.True(t, store.SetCell(ctx, "14:00", 0, "Deep work [P1] [semanal] [criado:2025-01-06]"))
	require.True(t, store.SetCell(ctx, "08:00", 0, "Gym [P2] [semanal] [criado:2025-01-06]"))

	entries := store.Activities(ctx, 0, date(t, "2025-01-06"))
	require.Len(t, entries, 2)

	assert.Equal(t, "08:00", entries[0].Slot)
	assert.Equal(t, "Gym", entries[0].Title)
	assert.Equal(t, domain.PriorityMedium, entries[0].Priority)
	assert.Equal(t, domain.RecurrenceWeekly, entries[0].Rule)
	assert.False(t, entries[0].Overlay)

	assert.Equal(t, "14:00", entries[1].Slot)
	assert.Equal(t, "Deep work", entries[1].Title)
}

func TestActivities_IncludesCellsAtUnlistedSlots(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	// A stored cell keeps showing up in listings even without its slot in
	// the slot list: the grid, not the list, is what holds activities.
	require.True(t, store.SetCell(ctx, "09:00", 0, "Gym [P1] [semanal] [criado:2025-01-06]"))
	require.Empty(t, store.Slots(ctx))

	entries := store.Activities(ctx, 0, date(t, "2025-01-06"))
	require.Len(t, entries, 1)
	assert.Equal(t, "09:00", entries[0].Slot)
	assert.Equal(t, "Gym", entries[0].Title)
}

func TestActivities_InvalidColumn(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	assert.Nil(t, store.Activities(ctx, 7, date(t, "2025-01-06")))
}

func TestActivityAt_DirectEntry(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "08:00", 2, "Standup [P2] [semanal] [criado:2025-01-06]"))

	entry, ok := store.ActivityAt(ctx, "08:00", 2, date(t, "2025-01-08"))
	require.True(t, ok)
	assert.Equal(t, "Standup", entry.Title)
	assert.False(t, entry.Overlay)
}

func TestDailyOverlay_OccupiesOtherColumns(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	// Daily activity stored on Monday only.
	require.True(t, store.SetCell(ctx, "08:00", 0, "Run [P2] [diaria] [criado:2025-01-06]"))

	entry, ok := store.ActivityAt(ctx, "08:00", 3, date(t, "2025-01-09"))
	require.True(t, ok)
	assert.Equal(t, "Run", entry.Title)
	assert.Equal(t, domain.RecurrenceDaily, entry.Rule)
	assert.True(t, entry.Overlay)
}

func TestDailyOverlay_RespectsCreationDate(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "08:00", 3, "Run [P2] [diaria] [criado:2025-01-09]"))

	// Monday of the same week predates the activity.
	_, ok := store.ActivityAt(ctx, "08:00", 0, date(t, "2025-01-06"))
	assert.False(t, ok)

	entry, ok := store.ActivityAt(ctx, "08:00", 4, date(t, "2025-01-10"))
	require.True(t, ok)
	assert.True(t, entry.Overlay)
}

func TestDailyOverlay_UndatedActivityAlwaysApplies(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "08:00", 4, "Stretch [diaria]"))

	entry, ok := store.ActivityAt(ctx, "08:00", 0, date(t, "2025-01-06"))
	require.True(t, ok)
	assert.Equal(t, "Stretch", entry.Title)
	assert.True(t, entry.Overlay)
}

func TestDailyOverlay_DirectEntryWins(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "08:00", 0, "Run [P2] [diaria] [criado:2025-01-06]"))
	require.True(t, store.SetCell(ctx, "08:00", 3, "Yoga [P1] [semanal] [criado:2025-01-06]"))

	entry, ok := store.ActivityAt(ctx, "08:00", 3, date(t, "2025-01-09"))
	require.True(t, ok)
	assert.Equal(t, "Yoga", entry.Title)
	assert.False(t, entry.Overlay)
}

func TestDailyOverlay_NonDailyDoesNotOverlay(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.SetCell(ctx, "08:00", 0, "Plan [P1] [semanal] [criado:2025-01-06]"))

	_, ok := store.ActivityAt(ctx, "08:00", 3, date(t, "2025-01-09"))
	assert.False(t, ok)
}

func TestActivities_IncludesOverlayEntries(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.AddSlot(ctx, "08:00"))
	require.True(t, store.SetCell(ctx, "08:00", 0, "Run [P2] [diaria] [criado:2025-01-06]"))

	entries := store.Activities(ctx, 3, date(t, "2025-01-09"))
	require.Len(t, entries, 1)
	assert.Equal(t, "Run", entries[0].Title)
	assert.True(t, entries[0].Overlay)
}

func TestEnsureDefaultSlots_SeedsFreshStore(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	slots := store.EnsureDefaultSlots(ctx)
	require.Len(t, slots, 16)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "22:00", slots[15])

	assert.Equal(t, slots, store.EnsureDefaultSlots(ctx))
	assert.Equal(t, slots, store.Slots(ctx))
}

func TestEnsureDefaultSlots_KeepsExistingSlots(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.AddSlot(ctx, "06:30"))

	assert.Equal(t, []string{"06:30"}, store.EnsureDefaultSlots(ctx))
}

func TestEnsureDefaultSlots_RespectsExplicitlyEmptyList(t *testing.T) {
	store := NewStore(memory.NewStore())
	ctx := context.Background()

	require.True(t, store.AddSlot(ctx, "08:00"))
	require.True(t, store.RemoveSlot(ctx, "08:00"))

	assert.Empty(t, store.EnsureDefaultSlots(ctx), "deleting every slot is not a fresh install")
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("kv unavailable")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("kv unavailable")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("kv unavailable")
}

func (failingStore) Keys(context.Context, string) ([]string, error) {
	return nil, errors.New("kv unavailable")
}

func (failingStore) Close() error { return nil }

func TestStore_DegradesOnStorageFailure(t *testing.T) {
	store := NewStore(failingStore{})
	ctx := context.Background()

	assert.Empty(t, store.Slots(ctx))
	assert.False(t, store.AddSlot(ctx, "08:00"))
	assert.Empty(t, store.Cell(ctx, "08:00", 0))
	assert.Empty(t, store.Activities(ctx, 0, date(t, "2025-01-06")))
	assert.Nil(t, store.EnsureDefaultSlots(ctx))
}
