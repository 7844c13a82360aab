// Package schedule maintains the weekly recurring schedule: the ordered
// time slots and the slot-by-weekday grid of encoded activities.
//
// The grid is persisted as a single JSON object under one store key, with
// cell keys of the form "HH:MM|column". Cells hold the raw bracket-grammar
// text; decoding happens on read through the metadata codec.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/kvstore"
	"github.com/semana-app/semana/internal/metadata"
)

const (
	slotsKey = "time_slots"
	gridKey  = "schedule_grid"

	defaultFirstHour = 7
	defaultLastHour  = 22
)

// Entry is one decoded activity in the weekly grid. Overlay marks entries
// that occupy the cell virtually through the daily overlay rather than by
// a direct grid entry.
type Entry struct {
	Slot         string            `json:"slot"`
	Title        string            `json:"title"`
	Priority     domain.Priority   `json:"priority"`
	Rule         domain.Recurrence `json:"rule"`
	CreationDate domain.Date       `json:"creation_date"`
	Overlay      bool              `json:"overlay,omitempty"`
}

// Store reads and writes the schedule through a key-value store.
//
// Storage failures are logged and degrade to empty results or false; they
// never propagate. The mutex serializes read-modify-write cycles on the
// slot list and the grid.
type Store struct {
	kv kvstore.Store
	mu sync.RWMutex
}

// NewStore creates a schedule store over kv.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Slots returns the stored time slots in ascending "HH:MM" order.
func (s *Store) Slots(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := s.loadSlots(ctx)
	sort.Strings(slots)
	return slots
}

// AddSlot stores a new time slot. It returns false when the slot is
// invalid, already present, or the write fails.
func (s *Store) AddSlot(ctx context.Context, slot string) bool {
	normalized, err := domain.NewSlot(slot)
	if err != nil {
		slog.WarnContext(ctx, "rejected time slot", "slot", slot, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slots := s.loadSlots(ctx)
	for _, existing := range slots {
		if existing == normalized {
			return false
		}
	}
	slots = append(slots, normalized)
	sort.Strings(slots)
	return s.saveSlots(ctx, slots)
}

// RemoveSlot deletes a time slot. The grid row of the slot is always
// cleared, even when the slot is not in the stored list; stale cells must
// not survive their slot. Returns false when the slot was not listed.
func (s *Store) RemoveSlot(ctx context.Context, slot string) bool {
	normalized, err := domain.NewSlot(slot)
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid := s.loadGrid(ctx)
	prefix := normalized + "|"
	cleared := false
	for key := range grid {
		if strings.HasPrefix(key, prefix) {
			delete(grid, key)
			cleared = true
		}
	}
	if cleared {
		s.saveGrid(ctx, grid)
	}

	slots := s.loadSlots(ctx)
	kept := make([]string, 0, len(slots))
	found := false
	for _, existing := range slots {
		if existing == normalized {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return false
	}
	return s.saveSlots(ctx, kept)
}

// Cell returns the raw encoded text stored for a slot and weekday column,
// or "" when the cell is empty. The daily overlay is not applied here; use
// ActivityAt for the effective cell.
func (s *Store) Cell(ctx context.Context, slot string, column int) string {
	normalized, err := domain.NewSlot(slot)
	if err != nil {
		return ""
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadGrid(ctx)[cellKey(normalized, column)]
}

// SetCell writes the encoded text of one cell. Blank text deletes the
// cell: an empty cell is stored as absence, never as an empty string.
// Returns false when the slot or column is invalid or the write fails.
func (s *Store) SetCell(ctx context.Context, slot string, column int, value string) bool {
	normalized, err := domain.NewSlot(slot)
	if err != nil {
		slog.WarnContext(ctx, "rejected grid cell", "slot", slot, "error", err)
		return false
	}
	if _, err := domain.WeekdayForColumn(column); err != nil {
		slog.WarnContext(ctx, "rejected grid cell", "column", column, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid := s.loadGrid(ctx)
	key := cellKey(normalized, column)
	if strings.TrimSpace(value) == "" {
		if _, ok := grid[key]; !ok {
			return true
		}
		delete(grid, key)
	} else {
		grid[key] = value
	}
	return s.saveGrid(ctx, grid)
}

// Activities returns the decoded activities of a weekday column in slot
// order, including cells occupied through the daily overlay. columnDate is
// the calendar date the column stands for; it bounds which daily
// activities may overlay into the column.
//
// The listing walks the slots present in the grid itself, not the slot
// list, so a stored cell stays visible to sync and the calendar even when
// its slot is not (or no longer) listed.
func (s *Store) Activities(ctx context.Context, column int, columnDate domain.Date) []Entry {
	if _, err := domain.WeekdayForColumn(column); err != nil {
		slog.WarnContext(ctx, "rejected column listing", "column", column, "error", err)
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	grid := s.loadGrid(ctx)

	var entries []Entry
	for _, slot := range gridSlots(grid) {
		if entry, ok := resolveCell(grid, slot, column, columnDate); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// gridSlots returns the sorted set of slots holding at least one grid
// entry in any column.
func gridSlots(grid map[string]string) []string {
	set := make(map[string]struct{}, len(grid))
	for key := range grid {
		if i := strings.IndexByte(key, '|'); i > 0 {
			set[key[:i]] = struct{}{}
		}
	}
	slots := make([]string, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

// ActivityAt returns the effective activity of one cell: the direct entry
// when present, otherwise the daily overlay.
func (s *Store) ActivityAt(ctx context.Context, slot string, column int, columnDate domain.Date) (Entry, bool) {
	normalized, err := domain.NewSlot(slot)
	if err != nil {
		return Entry{}, false
	}
	if _, err := domain.WeekdayForColumn(column); err != nil {
		return Entry{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return resolveCell(s.loadGrid(ctx), normalized, column, columnDate)
}

// EnsureDefaultSlots seeds the hourly slots of a fresh install when no
// slot list has ever been stored. A stored empty list is left alone: the
// user deleting every slot is not a fresh install. Returns the slots in
// effect.
func (s *Store) EnsureDefaultSlots(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.kv.Get(ctx, slotsKey); err == nil {
		slots := s.loadSlots(ctx)
		sort.Strings(slots)
		return slots
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		slog.ErrorContext(ctx, "failed to load time slots", "error", err)
		return nil
	}

	slots := DefaultSlots()
	s.saveSlots(ctx, slots)
	return slots
}

// DefaultSlots returns the hourly slots seeded on first run, 07:00
// through 22:00.
func DefaultSlots() []string {
	slots := make([]string, 0, defaultLastHour-defaultFirstHour+1)
	for hour := defaultFirstHour; hour <= defaultLastHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// resolveCell applies the cell resolution order against a loaded grid:
// direct entry first, daily overlay second.
func resolveCell(grid map[string]string, slot string, column int, columnDate domain.Date) (Entry, bool) {
	if raw, ok := grid[cellKey(slot, column)]; ok {
		return entryFrom(slot, metadata.Decode(raw), false), true
	}
	return dailyOverlayAt(grid, slot, columnDate)
}

// dailyOverlayAt scans every weekday column of the slot for a daily
// activity created on or before columnDate. Such an activity occupies the
// slot on all five days even though only one column stores it. Callers
// consult it only for cells with no direct entry.
func dailyOverlayAt(grid map[string]string, slot string, columnDate domain.Date) (Entry, bool) {
	for column := range domain.Weekdays() {
		raw, ok := grid[cellKey(slot, column)]
		if !ok {
			continue
		}
		meta := metadata.Decode(raw)
		if meta.Rule != domain.RecurrenceDaily {
			continue
		}
		if !meta.CreationDate.IsZero() && columnDate.Before(meta.CreationDate) {
			continue
		}
		return entryFrom(slot, meta, true), true
	}
	return Entry{}, false
}

func entryFrom(slot string, meta metadata.Metadata, overlay bool) Entry {
	return Entry{
		Slot:         slot,
		Title:        meta.Title,
		Priority:     meta.Priority,
		Rule:         meta.Rule,
		CreationDate: meta.CreationDate,
		Overlay:      overlay,
	}
}

func cellKey(slot string, column int) string {
	return fmt.Sprintf("%s|%d", slot, column)
}

func (s *Store) loadSlots(ctx context.Context) []string {
	raw, err := s.kv.Get(ctx, slotsKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			slog.ErrorContext(ctx, "failed to load time slots", "error", err)
		}
		return nil
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		slog.ErrorContext(ctx, "failed to decode time slots", "error", err)
		return nil
	}
	return slots
}

func (s *Store) saveSlots(ctx context.Context, slots []string) bool {
	data, err := json.Marshal(slots)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode time slots", "error", err)
		return false
	}
	if err := s.kv.Set(ctx, slotsKey, string(data)); err != nil {
		slog.ErrorContext(ctx, "failed to store time slots", "error", err)
		return false
	}
	return true
}

func (s *Store) loadGrid(ctx context.Context) map[string]string {
	raw, err := s.kv.Get(ctx, gridKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			slog.ErrorContext(ctx, "failed to load schedule grid", "error", err)
		}
		return map[string]string{}
	}

	grid := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &grid); err != nil {
		slog.ErrorContext(ctx, "failed to decode schedule grid", "error", err)
		return map[string]string{}
	}
	return grid
}

func (s *Store) saveGrid(ctx context.Context, grid map[string]string) bool {
	data, err := json.Marshal(grid)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode schedule grid", "error", err)
		return false
	}
	if err := s.kv.Set(ctx, gridKey, string(data)); err != nil {
		slog.ErrorContext(ctx, "failed to store schedule grid", "error", err)
		return false
	}
	return true
}
