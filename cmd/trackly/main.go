package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/trackly/internal/cli"
	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/errors"
	"github.com/julianstephens/trackly/internal/logger"
	"github.com/julianstephens/trackly/internal/storage"
	"github.com/julianstephens/trackly/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Snapshot file path. A .db extension selects the SQLite backend, anything else stores JSON." type:"path" default:"~/.config/trackly/trackly.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize trackly storage."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Log     cli.LogCmd     `cmd:"" help:"Record today's value for a habit."`
	Bump    cli.BumpCmd    `cmd:"" help:"Increment or decrement today's value for a habit."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's progress dashboard."`
	Trend   cli.TrendCmd   `cmd:"" help:"Show daily success rates over a recent window."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show lifetime stats per habit."`
	Insight cli.InsightCmd `cmd:"" help:"Generate AI-powered insights from your habit data."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage snapshot backups."`
	Key cli.KeyCmd `cmd:"" help:"Manage the insight API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with daily goals, analytics, and AI insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Select the storage backend from the snapshot file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = sqlite.NewStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		errors.Fatal(err)
	}
}
