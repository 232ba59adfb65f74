package domain

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DaysInclusive counts calendar days from `from` to `to`, both included.
// It returns a value below one when from is after to.
func DaysInclusive(from, to time.Time) int {
	return int(to.Sub(from).Hours()/24) + 1
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Period renders the human readable period label of a report.
func Period(from, to string) string {
	return from + " to " + to
}
