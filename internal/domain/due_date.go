package domain

import (
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDueDate is returned when a due date is not ISO-8601.
var ErrInvalidDueDate = fmt.Errorf("%w: due_date must be an ISO-8601 date or timestamp", ErrValidation)

// Layouts without a zone are interpreted as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDueDate parses an ISO-8601 date or timestamp and returns it in UTC.
// A blank string means "no due date" and yields (nil, nil).
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}

	return nil, NewValidationError("due_date", "must be an ISO-8601 date or timestamp", ErrInvalidDueDate)
}
