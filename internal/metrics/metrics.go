// Package metrics computes derived view data from the raw habit and entry
// collections. Everything here is a pure function of its inputs; the
// reference date is always passed in so results are reproducible in tests.
package metrics

import (
	"time"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/models"
)

// Progress is one habit's standing for a single day
type Progress struct {
	Value float64
	// Percent is the raw value/goal percentage, uncapped for analytics
	Percent float64
	// CappedPercent never exceeds 100, for display scales
	CappedPercent float64
}

// Lifetime holds per-habit aggregates over all recorded entries
type Lifetime struct {
	GoalReached int
	TotalLogs   int
}

// DayPoint is one date's capped percent per habit, keyed by habit id
type DayPoint struct {
	Date    string
	Percent map[string]float64
}

// ProgressFor computes a habit's progress for the given date. An absent entry
// counts as zero. The habit's goal is positive by store invariant, so the
// division is always defined.
func ProgressFor(habit models.Habit, entries []models.Entry, date string) Progress {
	value := 0.0
	for _, e := range entries {
		if e.HabitID == habit.ID && e.Date == date {
			value = e.Value
			break
		}
	}

	percent := value / habit.Goal * 100
	capped := percent
	if capped > 100 {
		capped = 100
	}

	return Progress{Value: value, Percent: percent, CappedPercent: capped}
}

// WindowDates returns the n calendar dates ending at ref, oldest first,
// using local calendar-day boundaries.
func WindowDates(ref time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, ref.AddDate(0, 0, -i).Format(constants.DateFormat))
	}
	return dates
}

// WindowSeries produces the trend-chart series: for each of the last n dates
// ending at ref, every habit's capped percent (0 when no entry exists).
func WindowSeries(habits []models.Habit, entries []models.Entry, ref time.Time, n int) []DayPoint {
	series := make([]DayPoint, 0, n)
	for _, date := range WindowDates(ref, n) {
		point := DayPoint{Date: date, Percent: make(map[string]float64, len(habits))}
		for _, h := range habits {
			point.Percent[h.ID] = ProgressFor(h, entries, date).CappedPercent
		}
		series = append(series, point)
	}
	return series
}

// LifetimeFor counts the habit's entries that reached the goal and the total
// number of logged days. Both only ever grow as entries accumulate.
func LifetimeFor(habit models.Habit, entries []models.Entry) Lifetime {
	var stats Lifetime
	for _, e := range entries {
		if e.HabitID != habit.ID {
			continue
		}
		stats.TotalLogs++
		if e.Value >= habit.Goal {
			stats.GoalReached++
		}
	}
	return stats
}
