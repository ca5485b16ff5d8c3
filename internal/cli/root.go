package cli

import (
	"github.com/julianstephens/trackly/internal/backup"
	"github.com/julianstephens/trackly/internal/logger"
	"github.com/julianstephens/trackly/internal/storage"
	"github.com/julianstephens/trackly/internal/tracker"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// OpenTracker loads the store and restores the tracked collections
func (c *Context) OpenTracker() (*tracker.Tracker, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return tracker.New(c.Store)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
