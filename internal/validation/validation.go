package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/models"
)

// Error is a recoverable validation failure tied to a single input field.
// Callers surface Message against Field and abort the mutation; no state changes.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Draft validates a habit draft and returns the draft with its name trimmed.
// A draft is valid when the trimmed name is non-empty and the goal is positive.
func Draft(d models.HabitDraft) (models.HabitDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, &Error{Field: "name", Message: "name must not be empty"}
	}
	if d.Goal <= 0 {
		return d, &Error{Field: "goal", Message: fmt.Sprintf("goal must be a positive number, got %v", d.Goal)}
	}
	return d, nil
}

// EntryValue validates a progress value. Values accumulate, so they may
// exceed the goal, but they can never be negative.
func EntryValue(value float64) error {
	if value < 0 {
		return &Error{Field: "value", Message: fmt.Sprintf("value must not be negative, got %v", value)}
	}
	return nil
}

// Date validates a calendar date in YYYY-MM-DD form
func Date(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return &Error{Field: "date", Message: fmt.Sprintf("expected YYYY-MM-DD, got %q", date)}
	}
	return nil
}
