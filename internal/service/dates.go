package service

import (
	"time"

	"learning_tracker/internal/model"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD input field. The validator has already
// checked the format, so a failure here is an invalid-input error, not a 500.
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, model.NewAppError("VALIDATION_ERROR", field+" must be a date in YYYY-MM-DD format.", field, model.ErrInvalidInput)
	}
	return t, nil
}

// parseDateOrToday defaults empty date fields to the current date.
func parseDateOrToday(value, field string) (time.Time, error) {
	if value == "" {
		return today(), nil
	}
	return parseDate(value, field)
}

func today() time.Time {
	return time.Now().Truncate(24 * time.Hour)
}
