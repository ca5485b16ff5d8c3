package metrics

import (
	"testing"
	"time"

	"github.com/julianstephens/trackly/internal/models"
)

func TestProgressFor(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses"}
	entries := []models.Entry{
		{ID: "e1", HabitID: "h1", Date: "2026-08-30", Value: 4},
		{ID: "e2", HabitID: "h1", Date: "2026-08-29", Value: 10},
		{ID: "e3", HabitID: "h2", Date: "2026-08-30", Value: 99},
	}

	p := ProgressFor(habit, entries, "2026-08-30")
	if p.Value != 4 {
		t.Errorf("expected value 4, got %v", p.Value)
	}
	if p.Percent != 50 {
		t.Errorf("expected 50%%, got %v", p.Percent)
	}
	if p.CappedPercent != 50 {
		t.Errorf("expected capped 50%%, got %v", p.CappedPercent)
	}

	over := ProgressFor(habit, entries, "2026-08-29")
	if over.Percent != 125 {
		t.Errorf("expected uncapped 125%%, got %v", over.Percent)
	}
	if over.CappedPercent != 100 {
		t.Errorf("expected capped 100%%, got %v", over.CappedPercent)
	}

	absent := ProgressFor(habit, entries, "2026-08-28")
	if absent.Value != 0 || absent.Percent != 0 || absent.CappedPercent != 0 {
		t.Errorf("expected zero progress for absent day, got %+v", absent)
	}
}

func TestWindowDates(t *testing.T) {
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	dates := WindowDates(ref, 3)
	want := []string{"2026-08-28", "2026-08-29", "2026-08-30"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("expected dates[%d] = %s, got %s", i, want[i], dates[i])
		}
	}
}

func TestWindowDatesCrossesMonthBoundary(t *testing.T) {
	ref := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	dates := WindowDates(ref, 3)
	want := []string{"2026-08-30", "2026-08-31", "2026-09-01"}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("expected dates[%d] = %s, got %s", i, want[i], dates[i])
		}
	}
}

func TestWindowSeries(t *testing.T) {
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses"},
		{ID: "h2", Name: "Reading", Goal: 30, Unit: "minutes"},
	}
	entries := []models.Entry{
		{ID: "e1", HabitID: "h1", Date: "2026-08-30", Value: 4},
		{ID: "e2", HabitID: "h1", Date: "2026-08-29", Value: 16},
		{ID: "e3", HabitID: "h2", Date: "2026-08-30", Value: 30},
	}

	series := WindowSeries(habits, entries, ref, 2)
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}

	if series[0].Date != "2026-08-29" || series[1].Date != "2026-08-30" {
		t.Errorf("expected oldest-first ordering, got %s, %s", series[0].Date, series[1].Date)
	}
	if got := series[0].Percent["h1"]; got != 100 {
		t.Errorf("expected overachieved day capped at 100, got %v", got)
	}
	if got := series[0].Percent["h2"]; got != 0 {
		t.Errorf("expected 0 for unlogged day, got %v", got)
	}
	if got := series[1].Percent["h1"]; got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
	if got := series[1].Percent["h2"]; got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
}

func TestWindowSeriesEmpty(t *testing.T) {
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	series := WindowSeries(nil, nil, ref, 7)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	for _, p := range series {
		if len(p.Percent) != 0 {
			t.Errorf("expected empty percent map for %s", p.Date)
		}
	}
}

func TestLifetimeFor(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses"}
	entries := []models.Entry{
		{ID: "e1", HabitID: "h1", Date: "2026-08-27", Value: 8},
		{ID: "e2", HabitID: "h1", Date: "2026-08-28", Value: 12},
		{ID: "e3", HabitID: "h1", Date: "2026-08-29", Value: 3},
		{ID: "e4", HabitID: "h1", Date: "2026-08-30", Value: 0},
		{ID: "e5", HabitID: "h2", Date: "2026-08-30", Value: 100},
	}

	stats := LifetimeFor(habit, entries)
	if stats.TotalLogs != 4 {
		t.Errorf("expected 4 total logs, got %d", stats.TotalLogs)
	}
	if stats.GoalReached != 2 {
		t.Errorf("expected 2 goal-reached days, got %d", stats.GoalReached)
	}
}

func TestLifetimeForNoEntries(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Water", Goal: 8, Unit: "glasses"}

	stats := LifetimeFor(habit, nil)
	if stats.TotalLogs != 0 || stats.GoalReached != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
