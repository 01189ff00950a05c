package domain

// Ticket is a sold seat on a flight, carrying its own fare snapshot. The
// customer is the owner; RouteCode/Date and CustomerID are non-owning
// back-references. A ticket is created once, transitions unused to used once,
// and is never deleted.
type Ticket struct {
	Code       string
	Fare       int64
	Used       bool
	RouteCode  string
	Date       Date
	CustomerID string
}
