package storage

import "github.com/julianstephens/trackly/internal/models"

// Provider persists full habit/entry snapshots to a local storage medium.
//
// LoadAll restores the last persisted snapshot; a missing or unparsable
// snapshot yields empty collections, never an error. SaveAll durably replaces
// the prior snapshot. Slice order is preserved round-trip: the habit list is
// display-ordered (newest first) and the entry list is append-ordered.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshots
	LoadAll() ([]models.Habit, []models.Entry, error)
	SaveAll([]models.Habit, []models.Entry) error

	// Utils
	GetConfigPath() string
}
