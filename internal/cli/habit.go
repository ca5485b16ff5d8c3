package cli

import (
	"fmt"

	"github.com/julianstephens/trackly/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all its logged entries."`
}

type HabitAddCmd struct {
	Name  string  `arg:"" help:"Habit name."`
	Goal  float64 `help:"Daily goal (positive number)." default:"1"`
	Unit  string  `help:"Unit label, e.g. glasses." default:"times"`
	Color string  `help:"Display color token." default:"indigo"`
	Icon  string  `help:"Display icon token." default:"activity"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	// Check if habit with same name already exists
	if _, ok := tr.HabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := tr.AddHabit(models.HabitDraft{
		Name:  c.Name,
		Goal:  c.Goal,
		Unit:  c.Unit,
		Color: c.Color,
		Icon:  c.Icon,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (goal: %v %s)\n", habit.Name, habit.Goal, habit.Unit)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habits := tr.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		fmt.Printf("%-20s %v %s/day\n", truncate(habit.Name, 20), habit.Goal, habit.Unit)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habit, ok := tr.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()

	if err := tr.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (and all its entries)\n", c.Name)
	return nil
}
