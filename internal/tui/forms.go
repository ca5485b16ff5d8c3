package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trackly/internal/constants"
)

func colorOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(constants.HabitColors))
	for _, c := range constants.HabitColors {
		opts = append(opts, huh.NewOption(c, c))
	}
	return opts
}

func iconOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(constants.HabitIcons))
	for _, i := range constants.HabitIcons {
		opts = append(opts, huh.NewOption(i, i))
	}
	return opts
}

// NewHabitForm builds the add-habit form bound to fm's fields
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	fm.Goal = strconv.FormatFloat(constants.DefaultGoal, 'f', -1, 64)
	fm.Unit = constants.DefaultUnit
	fm.Color = constants.HabitColors[0]
	fm.Icon = constants.HabitIcons[0]

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Description("What do you want to track?").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily Goal").
				Description("Target amount per day").
				Value(&fm.Goal).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("goal must be a number")
					}
					if v <= 0 {
						return fmt.Errorf("goal must be greater than zero")
					}
					return nil
				}),
			huh.NewInput().
				Title("Unit").
				Description("e.g. glasses, minutes, pages").
				Value(&fm.Unit).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("unit is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions()...).
				Value(&fm.Color),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions()...).
				Value(&fm.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}
