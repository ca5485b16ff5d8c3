package insight

import (
	"fmt"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/models"
)

// HistoryPoint is one day of a habit's recent history
type HistoryPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// HabitContext is the bounded per-habit summary sent to the generator
type HabitContext struct {
	Habit         string         `json:"habit"`
	Goal          string         `json:"goal"`
	RecentHistory []HistoryPoint `json:"recentHistory"`
}

// BuildContext shapes the store snapshot into the outbound payload: per habit,
// its name, a "goal unit" description, and its last entries in storage order.
// The tail of the stored slice is taken, not the most recent dates, so a
// backfilled old date can appear as the freshest history point. Returns nil
// when there are no habits; no request should be issued in that case.
func BuildContext(habits []models.Habit, entries []models.Entry) []HabitContext {
	if len(habits) == 0 {
		return nil
	}

	ctx := make([]HabitContext, 0, len(habits))
	for _, h := range habits {
		var history []HistoryPoint
		for _, e := range entries {
			if e.HabitID == h.ID {
				history = append(history, HistoryPoint{Date: e.Date, Value: e.Value})
			}
		}
		if len(history) > constants.InsightHistoryLen {
			history = history[len(history)-constants.InsightHistoryLen:]
		}

		ctx = append(ctx, HabitContext{
			Habit:         h.Name,
			Goal:          fmt.Sprintf("%v %s", h.Goal, h.Unit),
			RecentHistory: history,
		})
	}

	return ctx
}
