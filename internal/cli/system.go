package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/trackly/internal/backup"
	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/keyring"
	"github.com/julianstephens/trackly/internal/tracker"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing snapshot before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing snapshot: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized trackly storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	storeOK := true
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n   Error: %v\n", err)
		hasError = true
		storeOK = false
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: snapshot loads (malformed data degrades to empty, never fails)
	if storeOK {
		tr, err := tracker.New(ctx.Store)
		if err != nil {
			fmt.Printf("❌ Snapshot loads: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Snapshot loads: OK (%d habits, %d entries)\n", len(tr.Habits()), len(tr.Entries()))

			if err := checkIntegrity(tr); err != nil {
				fmt.Printf("❌ Data integrity: FAIL\n   Error: %v\n", err)
				hasError = true
			} else {
				fmt.Printf("✓ Data integrity: OK\n")
			}
		}
	} else {
		fmt.Printf("⊘ Snapshot loads: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Data integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.ListBackups(); err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n   No backups found; run 'trackly backup create'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 4: API key for insight generation (warning only)
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Printf("⚠ Insight API key: WARNING\n   %v; insights will be unavailable\n", err)
	} else {
		fmt.Printf("✓ Insight API key: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: concurrent trackly processes (warning only; shared snapshot
	// access from two processes can lose writes)
	if n, err := countTracklyProcesses(); err == nil && n > 1 {
		fmt.Printf("⚠ Concurrent processes: WARNING\n   %d trackly processes running; concurrent use of one snapshot is unsupported\n", n)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkIntegrity verifies the store invariants: every entry references an
// existing habit and no (habitID, date) pair appears twice.
func checkIntegrity(tr *tracker.Tracker) error {
	habitIDs := make(map[string]bool)
	for _, h := range tr.Habits() {
		if h.Goal <= 0 {
			return fmt.Errorf("habit %q has non-positive goal %v", h.Name, h.Goal)
		}
		if habitIDs[h.ID] {
			return fmt.Errorf("duplicate habit id %s", h.ID)
		}
		habitIDs[h.ID] = true
	}

	seen := make(map[string]bool)
	for _, e := range tr.Entries() {
		if !habitIDs[e.HabitID] {
			return fmt.Errorf("entry %s references missing habit %s", e.ID, e.HabitID)
		}
		key := e.HabitID + "|" + e.Date
		if seen[key] {
			return fmt.Errorf("duplicate entry for habit %s on %s", e.HabitID, e.Date)
		}
		seen[key] = true
	}

	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears to be wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.Parse(constants.DateFormat, now.Format(constants.DateFormat)); err != nil {
		return fmt.Errorf("local date formatting is broken: %w", err)
	}
	return nil
}

func countTracklyProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range procs {
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			count++
		}
	}
	return count, nil
}

type KeyCmd struct {
	Set    KeySetCmd    `cmd:"" help:"Store the insight API key in the OS keyring."`
	Show   KeyShowCmd   `cmd:"" help:"Show whether an API key is configured."`
	Delete KeyDeleteCmd `cmd:"" help:"Remove the API key from the OS keyring."`
}

type KeySetCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

type KeyShowCmd struct{}

func (c *KeyShowCmd) Run(ctx *Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		return err
	}
	if len(key) > 8 {
		key = key[:4] + "..." + key[len(key)-4:]
	}
	fmt.Printf("API key configured: %s\n", key)
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed from OS keyring.")
	return nil
}
