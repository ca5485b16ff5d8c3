package models

// Habit represents a tracked activity with a numeric daily goal
type Habit struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Goal      float64 `json:"goal"`
	Unit      string  `json:"unit"`
	Color     string  `json:"color"`
	Icon      string  `json:"icon"`
	CreatedAt int64   `json:"createdAt"` // epoch milliseconds
}

// Entry represents one day's recorded progress for a habit.
// At most one entry exists per (HabitID, Date) pair.
type Entry struct {
	ID      string  `json:"id"`
	HabitID string  `json:"habitId"`
	Date    string  `json:"date"` // YYYY-MM-DD format
	Value   float64 `json:"value"`
}

// HabitDraft holds user input for a new habit before validation
type HabitDraft struct {
	Name  string
	Goal  float64
	Unit  string
	Color string
	Icon  string
}
