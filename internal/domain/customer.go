package domain

type CustomerKind string

const (
	CustomerIndividual CustomerKind = "INDIVIDUAL"
	CustomerCorporate  CustomerKind = "CORPORATE"
)

type CompanySize string

const (
	CompanySmall  CompanySize = "SMALL"
	CompanyMedium CompanySize = "MEDIUM"
	CompanyLarge  CompanySize = "LARGE"
)

// Customer owns its tickets, split into ordered unused and used sequences.
// Size is set only for corporate customers.
type Customer struct {
	ID   string
	Name string
	Kind CustomerKind
	Size CompanySize

	unused []*Ticket
	used   []*Ticket
}

func NewIndividualCustomer(id, name string) (*Customer, error) {
	if id == "" {
		return nil, &InconsistentDataError{Reason: "customer id is required"}
	}
	return &Customer{ID: id, Name: name, Kind: CustomerIndividual}, nil
}

func NewCorporateCustomer(id, name string, size CompanySize) (*Customer, error) {
	if id == "" {
		return nil, &InconsistentDataError{Reason: "customer id is required"}
	}
	switch size {
	case CompanySmall, CompanyMedium, CompanyLarge:
	default:
		return nil, &InconsistentDataError{Reason: "unknown company size " + string(size)}
	}
	return &Customer{ID: id, Name: name, Kind: CustomerCorporate, Size: size}, nil
}

// AddTicket appends the ticket to the sequence matching its used flag.
func (c *Customer) AddTicket(t *Ticket) {
	if t.Used {
		c.used = append(c.used, t)
		return
	}
	c.unused = append(c.unused, t)
}

func (c *Customer) UnusedTickets() []*Ticket {
	out := make([]*Ticket, len(c.unused))
	copy(out, c.unused)
	return out
}

func (c *Customer) UsedTickets() []*Ticket {
	out := make([]*Ticket, len(c.used))
	copy(out, c.used)
	return out
}

// PendingBalance sums the fares of unused tickets only.
func (c *Customer) PendingBalance() int64 {
	var total int64
	for _, t := range c.unused {
		total += t.Fare
	}
	return total
}

// TotalSpent sums the fares of every ticket the customer ever bought.
func (c *Customer) TotalSpent() int64 {
	total := c.PendingBalance()
	for _, t := range c.used {
		total += t.Fare
	}
	return total
}

// UseTickets marks every unused ticket for the given flight as used and moves
// it to the used sequence. Returns the number of tickets moved.
func (c *Customer) UseTickets(routeCode string, date Date) int {
	remaining := c.unused[:0]
	moved := 0
	for _, t := range c.unused {
		if t.RouteCode == routeCode && t.Date == date {
			t.Used = true
			c.used = append(c.used, t)
			moved++
			continue
		}
		remaining = append(remaining, t)
	}
	c.unused = remaining
	return moved
}
