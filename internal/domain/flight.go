package domain

import "fmt"

// Flight is one calendar-date occurrence of a route flown by an aircraft.
// It references route and aircraft without owning them and keeps a by-code
// ticket ledger for capacity accounting.
type Flight struct {
	Route    *Route
	Aircraft *Aircraft
	Date     Date

	tickets map[string]*Ticket
}

func NewFlight(route *Route, date Date, aircraft *Aircraft) *Flight {
	return &Flight{
		Route:    route,
		Aircraft: aircraft,
		Date:     date,
		tickets:  make(map[string]*Ticket),
	}
}

func (f *Flight) TicketCount() int {
	return len(f.tickets)
}

func (f *Flight) Tickets() []*Ticket {
	out := make([]*Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		out = append(out, t)
	}
	return out
}

// SellTickets issues quantity tickets at the given fare, registering each in
// the flight's ledger and in the customer's unused sequence. The capacity
// check covers the whole batch before anything is mutated, so a failed sale
// commits nothing.
func (f *Flight) SellTickets(customer *Customer, fare int64, quantity int, newCode func() string) ([]*Ticket, error) {
	if quantity <= 0 {
		return nil, &InconsistentDataError{Reason: "ticket quantity must be positive"}
	}
	if len(f.tickets)+quantity > f.Aircraft.Capacity {
		return nil, &OversoldError{RouteCode: f.Route.Code, Date: f.Date, Capacity: f.Aircraft.Capacity}
	}

	sold := make([]*Ticket, 0, quantity)
	for i := 0; i < quantity; i++ {
		t := &Ticket{
			Code:       newCode(),
			Fare:       fare,
			RouteCode:  f.Route.Code,
			Date:       f.Date,
			CustomerID: customer.ID,
		}
		f.tickets[t.Code] = t
		customer.AddTicket(t)
		sold = append(sold, t)
	}
	return sold, nil
}

// RestoreTicket places a previously issued ticket back into the ledger, used
// by persistence loaders. Capacity and code uniqueness still hold.
func (f *Flight) RestoreTicket(t *Ticket) error {
	if _, ok := f.tickets[t.Code]; ok {
		return &InconsistentDataError{Reason: fmt.Sprintf("duplicate ticket code %q on flight %s/%s", t.Code, f.Route.Code, f.Date)}
	}
	if len(f.tickets) >= f.Aircraft.Capacity {
		return &OversoldError{RouteCode: f.Route.Code, Date: f.Date, Capacity: f.Aircraft.Capacity}
	}
	f.tickets[t.Code] = t
	return nil
}
