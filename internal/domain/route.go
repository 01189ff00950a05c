package domain

import (
	"fmt"
	"strconv"
)

// TimeOfDay is a same-day wall-clock time, minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a time in HHMM form, e.g. "0630" or "1845".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 4 {
		return TimeOfDay{}, &InconsistentDataError{Reason: fmt.Sprintf("invalid time %q: expected HHMM", s)}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return TimeOfDay{}, &InconsistentDataError{Reason: fmt.Sprintf("invalid time %q: expected HHMM", s)}
	}
	t := TimeOfDay{Hour: n / 100, Minute: n % 100}
	if t.Hour > 23 || t.Minute > 59 {
		return TimeOfDay{}, &InconsistentDataError{Reason: fmt.Sprintf("invalid time %q: out of range", s)}
	}
	return t, nil
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
}

// Route is an origin-destination pairing with a fixed departure and arrival
// time of day, independent of calendar date. Immutable after creation.
type Route struct {
	Code        string
	Origin      string
	Destination string
	Departure   TimeOfDay
	Arrival     TimeOfDay
}

// NewRoute validates that the route is same-day with departure strictly
// before arrival. Midnight-crossing routes are rejected here.
func NewRoute(code, origin, destination string, departure, arrival TimeOfDay) (*Route, error) {
	if code == "" || origin == "" || destination == "" {
		return nil, &InconsistentDataError{Reason: "route code, origin and destination are required"}
	}
	if departure.Minutes() >= arrival.Minutes() {
		return nil, &InconsistentDataError{Reason: fmt.Sprintf("route %s: departure %s must be before arrival %s", code, departure, arrival)}
	}
	return &Route{
		Code:        code,
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
	}, nil
}

// Overlaps reports whether the closed intervals [Departure, Arrival] of the
// two routes intersect. A shared boundary minute counts as overlap.
func (r *Route) Overlaps(other *Route) bool {
	return other.Departure.Minutes() <= r.Arrival.Minutes() && other.Arrival.Minutes() >= r.Departure.Minutes()
}
