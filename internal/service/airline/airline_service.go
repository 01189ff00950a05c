package airline

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/dortiz91/aerolinea/internal/fare"
	"github.com/dortiz91/aerolinea/internal/kafka"
	"github.com/google/uuid"
)

type AirlineUseCase interface {
	AddAircraft(aircraft *domain.Aircraft) error
	AddRoute(route *domain.Route) error
	AddCustomer(customer *domain.Customer) error
	HasCustomer(id string) bool
	CustomerByID(id string) (*domain.Customer, error)
	RouteByCode(code string) (*domain.Route, error)
	FlightBy(routeCode string, date domain.Date) (*domain.Flight, error)
	Aircraft() []*domain.Aircraft
	Routes() []*domain.Route
	Customers() []*domain.Customer
	Flights() []*domain.Flight
	Tickets() []*domain.Ticket

	ScheduleFlight(ctx context.Context, date domain.Date, routeCode, aircraftName string) (*domain.Flight, error)
	SellTickets(ctx context.Context, customerID string, date domain.Date, routeCode string, quantity int) (int, error)
	MarkFlightRealized(ctx context.Context, date domain.Date, routeCode string) error
	MarkTicketsUsed(ctx context.Context, customerID string, date domain.Date, routeCode string) (int, error)
	PendingBalance(customerID string) (int64, error)
	TotalSpent(customerID string) (int64, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// AirlineService is the aggregate root: it owns every aircraft, route, flight
// and customer and serializes all access behind a single RWMutex, so
// capacity and conflict checks are atomic with respect to other mutations.
type AirlineService struct {
	mu sync.RWMutex

	aircraft  []*domain.Aircraft
	routes    map[string]*domain.Route
	flights   []*domain.Flight
	customers map[string]*domain.Customer

	fares              *fare.Calculator
	producer           Producer
	ticketsTopic       string
	flightsTopic       string
	notificationsTopic string
	newTicketCode      func() string
}

type AirlineServiceOption func(*AirlineService)

func WithProducer(producer Producer, ticketsTopic, flightsTopic string) AirlineServiceOption {
	return func(s *AirlineService) {
		s.producer = producer
		s.ticketsTopic = ticketsTopic
		s.flightsTopic = flightsTopic
	}
}

func WithNotificationsTopic(topic string) AirlineServiceOption {
	return func(s *AirlineService) {
		s.notificationsTopic = topic
	}
}

// WithTicketCodeGenerator replaces the default UUID ticket codes. Codes must
// stay unique for the lifetime of the process.
func WithTicketCodeGenerator(newCode func() string) AirlineServiceOption {
	return func(s *AirlineService) {
		s.newTicketCode = newCode
	}
}

func NewAirlineService(fares *fare.Calculator, opts ...AirlineServiceOption) *AirlineService {
	service := &AirlineService{
		routes:        make(map[string]*domain.Route),
		customers:     make(map[string]*domain.Customer),
		fares:         fares,
		newTicketCode: uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AirlineService) AddAircraft(aircraft *domain.Aircraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.aircraft {
		if a.Name == aircraft.Name {
			return &domain.InconsistentDataError{Reason: fmt.Sprintf("aircraft %q already registered", aircraft.Name)}
		}
	}
	s.aircraft = append(s.aircraft, aircraft)
	return nil
}

func (s *AirlineService) AddRoute(route *domain.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routes[route.Code]; ok {
		return &domain.InconsistentDataError{Reason: fmt.Sprintf("route %q already registered", route.Code)}
	}
	s.routes[route.Code] = route
	return nil
}

func (s *AirlineService) AddCustomer(customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customer.ID]; ok {
		return &domain.InconsistentDataError{Reason: fmt.Sprintf("customer %q already registered", customer.ID)}
	}
	s.customers[customer.ID] = customer
	return nil
}

func (s *AirlineService) HasCustomer(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.customers[id]
	return ok
}

func (s *AirlineService) CustomerByID(id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.customerLocked(id)
}

func (s *AirlineService) RouteByCode(code string) (*domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	route, ok := s.routes[code]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "route", ID: code}
	}
	return route, nil
}

func (s *AirlineService) FlightBy(routeCode string, date domain.Date) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.flightLocked(routeCode, date)
}

func (s *AirlineService) Aircraft() []*domain.Aircraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Aircraft, len(s.aircraft))
	copy(out, s.aircraft)
	return out
}

func (s *AirlineService) Routes() []*domain.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Route, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, r)
	}
	return out
}

func (s *AirlineService) Customers() []*domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out
}

func (s *AirlineService) Flights() []*domain.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

// Tickets collects tickets flight by flight. Tickets of realized flights are
// reachable only through their owning customer.
func (s *AirlineService) Tickets() []*domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Ticket
	for _, f := range s.flights {
		out = append(out, f.Tickets()...)
	}
	return out
}

// ScheduleFlight creates a flight for the route on the given date, flown by
// the named aircraft. The conflict scan compares the new route's closed
// [departure, arrival] interval against every flight already assigned to the
// aircraft, regardless of calendar date: an aircraft holding a slot keeps it
// on every day it remains scheduled.
func (s *AirlineService) ScheduleFlight(ctx context.Context, date domain.Date, routeCode, aircraftName string) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var aircraft *domain.Aircraft
	for _, a := range s.aircraft {
		if a.Name == aircraftName {
			aircraft = a
			break
		}
	}
	if aircraft == nil {
		return nil, &domain.NotFoundError{Kind: "aircraft", ID: aircraftName}
	}

	route, ok := s.routes[routeCode]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "route", ID: routeCode}
	}

	if existing, err := s.flightLocked(routeCode, date); err == nil {
		return nil, &domain.InconsistentDataError{Reason: fmt.Sprintf("flight %s/%s already scheduled", existing.Route.Code, existing.Date)}
	}

	for _, f := range s.flights {
		if f.Aircraft != aircraft {
			continue
		}
		if f.Route.Overlaps(route) {
			return nil, &domain.ScheduleConflictError{Aircraft: aircraft.Name, RouteCode: f.Route.Code, Date: f.Date}
		}
	}

	flight := domain.NewFlight(route, date, aircraft)
	s.flights = append(s.flights, flight)

	s.publishFlightEvent(ctx, "flight_scheduled", flight)
	return flight, nil
}

// SellTickets issues quantity tickets on the flight matching (routeCode,
// date). The fare is computed once and applied to every ticket in the batch.
// The sale is all-or-nothing: if the batch would exceed capacity, no ticket
// is issued.
func (s *AirlineService) SellTickets(ctx context.Context, customerID string, date domain.Date, routeCode string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customerLocked(customerID)
	if err != nil {
		return 0, err
	}
	flight, err := s.flightLocked(routeCode, date)
	if err != nil {
		return 0, err
	}

	fareAmount, err := s.fares.Calculate(ctx, flight, customer)
	if err != nil {
		return 0, fmt.Errorf("calculate fare: %w", err)
	}

	sold, err := flight.SellTickets(customer, fareAmount, quantity, s.newTicketCode)
	if err != nil {
		return 0, err
	}

	s.publishTicketEvent(ctx, "ticket_sold", flight.Route.Code, flight.Date, customer, len(sold), fareAmount)
	return len(sold), nil
}

// MarkFlightRealized removes the flown flight from the active list. Its
// tickets remain reachable through their owning customers.
func (s *AirlineService) MarkFlightRealized(ctx context.Context, date domain.Date, routeCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.flights {
		if f.Route.Code == routeCode && f.Date == date {
			s.flights = append(s.flights[:i], s.flights[i+1:]...)
			s.publishFlightEvent(ctx, "flight_realized", f)
			return nil
		}
	}
	return &domain.NotFoundError{Kind: "flight", ID: routeCode + "/" + date.String()}
}

// MarkTicketsUsed moves the customer's unused tickets for the given flight to
// the used sequence. The flight itself may already be realized.
func (s *AirlineService) MarkTicketsUsed(ctx context.Context, customerID string, date domain.Date, routeCode string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customerLocked(customerID)
	if err != nil {
		return 0, err
	}

	used := customer.UseTickets(routeCode, date)
	if used > 0 {
		s.publishTicketEvent(ctx, "tickets_used", routeCode, date, customer, used, 0)
	}
	return used, nil
}

func (s *AirlineService) PendingBalance(customerID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, err := s.customerLocked(customerID)
	if err != nil {
		return 0, err
	}
	return customer.PendingBalance(), nil
}

func (s *AirlineService) TotalSpent(customerID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, err := s.customerLocked(customerID)
	if err != nil {
		return 0, err
	}
	return customer.TotalSpent(), nil
}

// RestoreTickets reattaches persisted tickets to their owners during startup
// hydration. Every ticket must reference a known customer; the flight ledger
// is only rebuilt for flights still on the schedule.
func (s *AirlineService) RestoreTickets(tickets []*domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tickets {
		customer, ok := s.customers[t.CustomerID]
		if !ok {
			return &domain.InconsistentDataError{Reason: fmt.Sprintf("ticket %q references unknown customer %q", t.Code, t.CustomerID)}
		}
		if flight, err := s.flightLocked(t.RouteCode, t.Date); err == nil {
			if err := flight.RestoreTicket(t); err != nil {
				return err
			}
		}
		customer.AddTicket(t)
	}
	return nil
}

func (s *AirlineService) customerLocked(id string) (*domain.Customer, error) {
	customer, ok := s.customers[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "customer", ID: id}
	}
	return customer, nil
}

func (s *AirlineService) flightLocked(routeCode string, date domain.Date) (*domain.Flight, error) {
	for _, f := range s.flights {
		if f.Route.Code == routeCode && f.Date == date {
			return f, nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "flight", ID: routeCode + "/" + date.String()}
}

func (s *AirlineService) publishFlightEvent(ctx context.Context, eventType string, flight *domain.Flight) {
	if s.producer == nil || s.flightsTopic == "" {
		return
	}
	event := kafka.FlightEvent{
		Type:      eventType,
		RouteCode: flight.Route.Code,
		Date:      flight.Date.String(),
		Aircraft:  flight.Aircraft.Name,
	}
	if err := s.producer.Publish(ctx, s.flightsTopic, event.RouteCode+"/"+event.Date, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %s/%s: %v", eventType, event.RouteCode, event.Date, err)
	}
}

func (s *AirlineService) publishTicketEvent(ctx context.Context, eventType string, routeCode string, date domain.Date, customer *domain.Customer, quantity int, fareAmount int64) {
	if s.producer == nil || s.ticketsTopic == "" {
		return
	}
	event := kafka.TicketEvent{
		Type:       eventType,
		RouteCode:  routeCode,
		Date:       date.String(),
		CustomerID: customer.ID,
		Quantity:   quantity,
		Fare:       fareAmount,
	}
	if err := s.producer.Publish(ctx, s.ticketsTopic, event.CustomerID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for customer %s: %v", eventType, event.CustomerID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.CustomerID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for customer %s: %v", eventType, event.CustomerID, err)
		}
	}
}

var _ AirlineUseCase = (*AirlineService)(nil)
