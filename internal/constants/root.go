package constants

const (
	AppName            = "trackly"
	DefaultConfigPath  = "~/.config/trackly/trackly.json"
	DefaultKeyringUser = "gemini-api-key"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TrendWindowDays is the default analytics window size
	TrendWindowDays = 7

	// InsightHistoryLen caps the per-habit history sent to the insight generator
	InsightHistoryLen = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "trackly-"

	// DefaultGoal and DefaultUnit mirror the habit creation form defaults
	DefaultGoal = 1
	DefaultUnit = "times"
)

// HabitColors are the presentation color tokens offered by the habit form.
// They are opaque to the core; the TUI maps them to terminal colors.
var HabitColors = []string{"indigo", "rose", "emerald", "amber", "violet", "sky"}

// HabitIcons are the icon tokens offered by the habit form
var HabitIcons = []string{"activity", "book", "coffee", "droplet", "target"}
