package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date. Flights are keyed by (route code, date), so the
// type is comparable and safe to use in maps.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, &InconsistentDataError{Reason: fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", s)}
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
