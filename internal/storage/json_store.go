package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/trackly/internal/logger"
	"github.com/julianstephens/trackly/internal/models"
)

// document is the on-disk layout: two independently keyed snapshots. Each key
// is decoded on its own so a corrupt value for one collection does not take
// the other down with it.
type document struct {
	Version int             `json:"version"`
	Habits  json.RawMessage `json:"habits"`
	Entries json.RawMessage `json:"entries"`
}

type JSONStore struct {
	path   string
	loaded bool
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.SaveAll(nil, nil)
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(filepath.Dir(s.path)); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trackly init' first")
	}
	s.loaded = true
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// LoadAll reads the persisted snapshot. A missing file or malformed payload is
// not an error: the affected collection simply starts empty.
func (s *JSONStore) LoadAll() ([]models.Habit, []models.Entry, error) {
	habits := []models.Habit{}
	entries := []models.Entry{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read snapshot, starting fresh", "path", s.path, "error", err)
		}
		return habits, entries, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Snapshot is not valid JSON, starting fresh", "path", s.path, "error", err)
		return habits, entries, nil
	}

	if len(doc.Habits) > 0 {
		if err := json.Unmarshal(doc.Habits, &habits); err != nil {
			logger.Warn("Habit snapshot is malformed, starting fresh", "error", err)
			habits = []models.Habit{}
		}
	}
	if len(doc.Entries) > 0 {
		if err := json.Unmarshal(doc.Entries, &entries); err != nil {
			logger.Warn("Entry snapshot is malformed, starting fresh", "error", err)
			entries = []models.Entry{}
		}
	}

	return habits, entries, nil
}

// SaveAll performs a full-snapshot durable write, replacing the prior snapshot
func (s *JSONStore) SaveAll(habits []models.Habit, entries []models.Entry) error {
	if habits == nil {
		habits = []models.Habit{}
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	habitData, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}
	entryData, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize entries: %w", err)
	}

	doc := document{
		Version: 1,
		Habits:  habitData,
		Entries: entryData,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: running multiple trackly processes that share the same
// storage path at the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
