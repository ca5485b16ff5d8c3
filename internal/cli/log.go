package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/trackly/internal/constants"
)

type LogCmd struct {
	Name  string  `arg:"" help:"Habit name."`
	Value float64 `arg:"" help:"Accumulated progress value for the day."`
	Date  string  `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habit, ok := tr.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	}

	entry, err := tr.UpsertEntry(habit.ID, day, c.Value)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %v %s for %q on %s\n", entry.Value, habit.Unit, habit.Name, entry.Date)
	return nil
}

type BumpCmd struct {
	Name string `arg:"" help:"Habit name."`
	Down bool   `help:"Decrement instead of increment."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *BumpCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habit, ok := tr.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	}

	delta := 1.0
	if c.Down {
		delta = -1.0
	}

	entry, err := tr.BumpEntry(habit.ID, day, delta)
	if err != nil {
		return err
	}

	fmt.Printf("%q is now at %v %s for %s\n", habit.Name, entry.Value, habit.Unit, entry.Date)
	return nil
}
