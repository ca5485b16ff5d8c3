package sqlite

import (
	"fmt"

	"github.com/julianstephens/trackly/internal/logger"
	"github.com/julianstephens/trackly/internal/models"
)

// LoadAll reads both collections in stored display order. A database that
// cannot be queried is treated the same as a missing snapshot: empty
// collections, never an error surfaced to the caller.
func (s *Store) LoadAll() ([]models.Habit, []models.Entry, error) {
	habits := []models.Habit{}
	entries := []models.Entry{}

	if s.db == nil {
		return habits, entries, nil
	}

	rows, err := s.db.Query(`
		SELECT id, name, goal, unit, color, icon, created_at
		FROM habits ORDER BY position`)
	if err != nil {
		logger.Warn("Failed to read habit snapshot, starting fresh", "error", err)
		return habits, entries, nil
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Goal, &h.Unit, &h.Color, &h.Icon, &h.CreatedAt); err != nil {
			logger.Warn("Habit snapshot row is malformed, starting fresh", "error", err)
			return []models.Habit{}, []models.Entry{}, nil
		}
		habits = append(habits, h)
	}

	entryRows, err := s.db.Query(`
		SELECT id, habit_id, day, value
		FROM entries ORDER BY position`)
	if err != nil {
		logger.Warn("Failed to read entry snapshot, starting fresh", "error", err)
		return habits, []models.Entry{}, nil
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var e models.Entry
		if err := entryRows.Scan(&e.ID, &e.HabitID, &e.Date, &e.Value); err != nil {
			logger.Warn("Entry snapshot row is malformed, starting fresh", "error", err)
			return habits, []models.Entry{}, nil
		}
		entries = append(entries, e)
	}

	return habits, entries, nil
}

// SaveAll replaces both tables with the given snapshot in a single transaction
func (s *Store) SaveAll(habits []models.Habit, entries []models.Entry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for i, h := range habits {
		_, err := tx.Exec(`
			INSERT INTO habits (id, name, goal, unit, color, icon, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Goal, h.Unit, h.Color, h.Icon, h.CreatedAt, i)
		if err != nil {
			return fmt.Errorf("failed to write habit %s: %w", h.ID, err)
		}
	}

	for i, e := range entries {
		_, err := tx.Exec(`
			INSERT INTO entries (id, habit_id, day, value, position)
			VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.HabitID, e.Date, e.Value, i)
		if err != nil {
			return fmt.Errorf("failed to write entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}
