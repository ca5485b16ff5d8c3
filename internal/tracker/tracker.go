package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/trackly/internal/models"
	"github.com/julianstephens/trackly/internal/storage"
	"github.com/julianstephens/trackly/internal/validation"
)

// ErrHabitNotFound is returned when an entry references a habit id that does
// not exist in the store. The CLI and TUI only pass ids they read from the
// store, so hitting this indicates a caller bug, not user error.
var ErrHabitNotFound = errors.New("habit not found")

type entryKey struct {
	habitID string
	date    string
}

// Tracker owns the habit and entry collections. All mutations go through it;
// every successful mutation completes a synchronous snapshot write before
// returning. Read accessors return copies.
//
// Tracker is confined to a single goroutine. Like the underlying storage it
// is not safe for concurrent mutation without external synchronization.
type Tracker struct {
	store   storage.Provider
	habits  []models.Habit
	entries []models.Entry
	index   map[entryKey]int // (habitID, date) -> position in entries
}

// New restores the last persisted snapshot into a Tracker. A missing or
// malformed snapshot loads as empty collections.
func New(store storage.Provider) (*Tracker, error) {
	habits, entries, err := store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	t := &Tracker{
		store:   store,
		habits:  habits,
		entries: entries,
		index:   make(map[entryKey]int, len(entries)),
	}
	for i, e := range entries {
		t.index[entryKey{e.HabitID, e.Date}] = i
	}

	return t, nil
}

// AddHabit validates the draft, assigns a fresh id and creation timestamp,
// and prepends the habit so the list stays ordered newest-first.
func (t *Tracker) AddHabit(draft models.HabitDraft) (models.Habit, error) {
	draft, err := validation.Draft(draft)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      draft.Name,
		Goal:      draft.Goal,
		Unit:      draft.Unit,
		Color:     draft.Color,
		Icon:      draft.Icon,
		CreatedAt: time.Now().UnixMilli(),
	}

	t.habits = append([]models.Habit{habit}, t.habits...)
	if err := t.save(); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// DeleteHabit removes the habit and cascades to every entry referencing it.
// Deleting an unknown id is a no-op and does not touch the snapshot.
func (t *Tracker) DeleteHabit(id string) error {
	found := false
	habits := t.habits[:0]
	for _, h := range t.habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return nil
	}
	t.habits = habits

	entries := make([]models.Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.HabitID != id {
			entries = append(entries, e)
		}
	}
	t.entries = entries
	t.reindex()

	return t.save()
}

// UpsertEntry records progress for (habitID, date). The pair is a natural
// key: an existing entry has its value overwritten in place, otherwise a new
// entry is appended. Returns the resulting entry.
func (t *Tracker) UpsertEntry(habitID, date string, value float64) (models.Entry, error) {
	if err := validation.EntryValue(value); err != nil {
		return models.Entry{}, err
	}
	if err := validation.Date(date); err != nil {
		return models.Entry{}, err
	}
	if _, ok := t.habitByID(habitID); !ok {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}

	key := entryKey{habitID, date}
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = value
		if err := t.save(); err != nil {
			return models.Entry{}, err
		}
		return t.entries[i], nil
	}

	entry := models.Entry{
		ID:      uuid.New().String(),
		HabitID: habitID,
		Date:    date,
		Value:   value,
	}
	t.entries = append(t.entries, entry)
	t.index[key] = len(t.entries) - 1

	if err := t.save(); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// BumpEntry adjusts the day's value by delta, clamping the result at zero.
// This is the increment/decrement path behind the dashboard's +/- actions.
func (t *Tracker) BumpEntry(habitID, date string, delta float64) (models.Entry, error) {
	current := 0.0
	if e, ok := t.EntryFor(habitID, date); ok {
		current = e.Value
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	return t.UpsertEntry(habitID, date, next)
}

// Habits returns the habit collection, newest first
func (t *Tracker) Habits() []models.Habit {
	out := make([]models.Habit, len(t.habits))
	copy(out, t.habits)
	return out
}

// Entries returns the entry collection in append order
func (t *Tracker) Entries() []models.Entry {
	out := make([]models.Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// EntryFor looks up the entry for (habitID, date)
func (t *Tracker) EntryFor(habitID, date string) (models.Entry, bool) {
	i, ok := t.index[entryKey{habitID, date}]
	if !ok {
		return models.Entry{}, false
	}
	return t.entries[i], true
}

// HabitByName finds a habit by its display name
func (t *Tracker) HabitByName(name string) (models.Habit, bool) {
	for _, h := range t.habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Snapshot returns independent copies of both collections, safe to hand to a
// goroutine while the tracker keeps mutating.
func (t *Tracker) Snapshot() ([]models.Habit, []models.Entry) {
	return t.Habits(), t.Entries()
}

func (t *Tracker) habitByID(id string) (models.Habit, bool) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

func (t *Tracker) reindex() {
	t.index = make(map[entryKey]int, len(t.entries))
	for i, e := range t.entries {
		t.index[entryKey{e.HabitID, e.Date}] = i
	}
}

func (t *Tracker) save() error {
	return t.store.SaveAll(t.habits, t.entries)
}
