package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/metrics"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habits := tr.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits tracked yet. Add one with 'trackly habit add'.")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	entries := tr.Entries()

	fmt.Printf("Today (%s):\n\n", today)
	for _, habit := range habits {
		p := metrics.ProgressFor(habit, entries, today)
		fmt.Printf("%-20s %v/%v %s  %s %d%%\n",
			truncate(habit.Name, 20),
			p.Value, habit.Goal, habit.Unit,
			renderBar(p.CappedPercent, 20),
			int(math.Round(p.Percent)))
	}

	return nil
}

// renderBar draws a fixed-width progress bar from a capped percentage
func renderBar(cappedPercent float64, width int) string {
	filled := int(cappedPercent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max >= 5 {
		return s[:max-3] + "..."
	}
	return s[:max]
}
