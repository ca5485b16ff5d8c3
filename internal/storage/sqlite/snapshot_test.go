package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/trackly/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "trackly.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	habits := []models.Habit{
		{ID: "h2", Name: "Reading", Goal: 30, Unit: "minutes", Color: "sky", Icon: "book", CreatedAt: 200},
		{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses", Color: "indigo", Icon: "droplet", CreatedAt: 100},
	}
	entries := []models.Entry{
		{ID: "e1", HabitID: "h1", Date: "2026-08-29", Value: 3},
		{ID: "e2", HabitID: "h2", Date: "2026-08-30", Value: 30},
		{ID: "e3", HabitID: "h1", Date: "2026-08-30", Value: 4.5},
	}

	if err := store.SaveAll(habits, entries); err != nil {
		t.Fatalf("failed to save snapshot: %v", err)
	}

	gotHabits, gotEntries, err := store.LoadAll()
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}

	if len(gotHabits) != len(habits) {
		t.Fatalf("expected %d habits, got %d", len(habits), len(gotHabits))
	}
	for i := range habits {
		if gotHabits[i] != habits[i] {
			t.Errorf("habit %d mismatch: expected %+v, got %+v", i, habits[i], gotHabits[i])
		}
	}

	if len(gotEntries) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(gotEntries))
	}
	for i := range entries {
		if gotEntries[i] != entries[i] {
			t.Errorf("entry %d mismatch: expected %+v, got %+v", i, entries[i], gotEntries[i])
		}
	}
}

func TestSQLiteSaveAllReplacesSnapshot(t *testing.T) {
	store := setupTestStore(t)

	habits := []models.Habit{
		{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses", CreatedAt: 100},
	}
	entries := []models.Entry{
		{ID: "e1", HabitID: "h1", Date: "2026-08-30", Value: 3},
	}
	if err := store.SaveAll(habits, entries); err != nil {
		t.Fatalf("failed to save snapshot: %v", err)
	}

	// The second write must fully replace the first, not merge with it
	if err := store.SaveAll(nil, nil); err != nil {
		t.Fatalf("failed to save empty snapshot: %v", err)
	}

	gotHabits, gotEntries, err := store.LoadAll()
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	if len(gotHabits) != 0 || len(gotEntries) != 0 {
		t.Errorf("expected empty snapshot, got %d habits, %d entries", len(gotHabits), len(gotEntries))
	}
}

func TestSQLiteLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "trackly.db"))

	if err := store.Load(); err == nil {
		t.Error("expected error when database file is missing")
	}
}

func TestSQLiteReopenPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackly.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	habits := []models.Habit{
		{ID: "h3", Name: "Stretch", Goal: 1, Unit: "times", CreatedAt: 300},
		{ID: "h2", Name: "Reading", Goal: 30, Unit: "minutes", CreatedAt: 200},
		{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses", CreatedAt: 100},
	}
	if err := store.SaveAll(habits, nil); err != nil {
		t.Fatalf("failed to save snapshot: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer reopened.Close()

	gotHabits, _, err := reopened.LoadAll()
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	if len(gotHabits) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(gotHabits))
	}
	for i, want := range []string{"h3", "h2", "h1"} {
		if gotHabits[i].ID != want {
			t.Errorf("expected habit %d to be %s, got %s", i, want, gotHabits[i].ID)
		}
	}
}

func TestSQLiteSaveAllRequiresLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "trackly.db"))

	if err := store.SaveAll(nil, nil); err == nil {
		t.Error("expected error when saving before load")
	}
}
