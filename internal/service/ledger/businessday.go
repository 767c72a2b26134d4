package ledger

import (
	"time"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// BusinessDay maps wall-clock instants to the organization's accounting
// date. A business day starts at dayStartHour local time; between midnight
// and dayStartHour the previous calendar date is still open.
type BusinessDay struct {
	loc          *time.Location
	dayStartHour int
	dutyEndHour  int
}

// NewBusinessDay builds a calculator for the given location. A nil location
// means UTC.
func NewBusinessDay(loc *time.Location, dayStartHour, dutyEndHour int) BusinessDay {
	if loc == nil {
		loc = time.UTC
	}
	return BusinessDay{loc: loc, dayStartHour: dayStartHour, dutyEndHour: dutyEndHour}
}

// Location is the organization timezone.
func (b BusinessDay) Location() *time.Location {
	return b.loc
}

// Date returns the business date of now as a civil date at UTC midnight.
func (b BusinessDay) Date(now time.Time) time.Time {
	local := now.In(b.loc)
	if local.Hour() < b.dayStartHour {
		local = local.AddDate(0, 0, -1)
	}
	return domain.CivilDate(local)
}

// Month returns the month containing the business date of now.
func (b BusinessDay) Month(now time.Time) domain.Month {
	return domain.MonthOf(b.Date(now))
}

// WithinDutyWindow reports whether now falls inside operating hours:
// [dayStartHour, 24) or [0, dutyEndHour) local time.
func (b BusinessDay) WithinDutyWindow(now time.Time) bool {
	h := now.In(b.loc).Hour()
	return h >= b.dayStartHour || h < b.dutyEndHour
}
