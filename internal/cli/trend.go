package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/trackly/internal/metrics"
	"github.com/julianstephens/trackly/internal/models"
)

type TrendCmd struct {
	Days  int    `help:"Number of days to show." default:"7"`
	Habit string `help:"Show trend for a specific habit only."`
}

func (c *TrendCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habits := tr.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	if c.Habit != "" {
		h, ok := tr.HabitByName(c.Habit)
		if !ok {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{h}
	}

	series := metrics.WindowSeries(habits, tr.Entries(), time.Now(), c.Days)

	fmt.Printf("Success rate %% (last %d days):\n\n", c.Days)

	// Header with dates
	maxNameLen := 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for _, point := range series {
		d, _ := time.Parse("2006-01-02", point.Date)
		fmt.Printf(" %5s", d.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	for range series {
		fmt.Print("------")
	}
	fmt.Println()

	for _, habit := range habits {
		name := truncate(habit.Name, maxNameLen)
		fmt.Print(name + strings.Repeat(" ", maxNameLen-len(name)))
		for _, point := range series {
			fmt.Printf(" %4.0f%%", point.Percent[habit.ID])
		}
		fmt.Println()
	}

	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habits := tr.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	entries := tr.Entries()

	fmt.Println("Lifetime stats:")
	fmt.Println()
	for _, habit := range habits {
		stats := metrics.LifetimeFor(habit, entries)
		fmt.Printf("%-20s goal reached: %-4d total logs: %d\n",
			truncate(habit.Name, 20), stats.GoalReached, stats.TotalLogs)
	}

	return nil
}
