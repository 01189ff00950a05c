package domain

import "fmt"

// NotFoundError reports a lookup miss for any of the airline's entities.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InconsistentDataError reports structurally invalid input: duplicate
// registrations, broken references found while loading, bad construction data.
type InconsistentDataError struct {
	Reason string
}

func (e *InconsistentDataError) Error() string {
	return e.Reason
}

// ScheduleConflictError reports an aircraft double-booked on overlapping
// route time windows. RouteCode and Date identify the already scheduled flight.
type ScheduleConflictError struct {
	Aircraft  string
	RouteCode string
	Date      Date
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("aircraft %q is already scheduled on flight %s/%s", e.Aircraft, e.RouteCode, e.Date)
}

// OversoldError reports a ticket sale that would exceed aircraft capacity.
type OversoldError struct {
	RouteCode string
	Date      Date
	Capacity  int
}

func (e *OversoldError) Error() string {
	return fmt.Sprintf("flight %s/%s is sold out (capacity %d)", e.RouteCode, e.Date, e.Capacity)
}
