package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of civil dates.
const DateLayout = "2006-01-02"

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth accepts "YYYY-MM" or a full date "YYYY-MM-DD" (the day is
// ignored).
func ParseMonth(s string) (Month, error) {
	for _, layout := range []string{"2006-01", DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Month{Year: t.Year(), Month: t.Month()}, nil
		}
	}
	return Month{}, fmt.Errorf("invalid month %q: %w", s, ErrValidation)
}

// MonthOf returns the month containing t (in t's location).
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Start is the first day of the month at UTC midnight.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first day of the following month (exclusive bound).
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Days is the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return MonthOf(m.Start().AddDate(0, -1, 0))
}

// Key is the month's first day as YYYY-MM-DD. It is part of the closure
// digest input and must not change format.
func (m Month) Key() string {
	return m.Start().Format(DateLayout)
}

func (m Month) String() string {
	return m.Start().Format("2006-01")
}

func (m Month) IsZero() bool {
	return m.Year == 0
}

// ParseDate parses a civil date (YYYY-MM-DD) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, ErrValidation)
	}
	return t, nil
}

// CivilDate truncates t to its calendar date (in t's location) and returns
// it at UTC midnight.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
