package api

import (
	"context"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockAirlineUseCase is a mock implementation of airline.AirlineUseCase shared
// by the handler tests.
type MockAirlineUseCase struct {
	mock.Mock
}

func (m *MockAirlineUseCase) AddAircraft(aircraft *domain.Aircraft) error {
	args := m.Called(aircraft)
	return args.Error(0)
}

func (m *MockAirlineUseCase) AddRoute(route *domain.Route) error {
	args := m.Called(route)
	return args.Error(0)
}

func (m *MockAirlineUseCase) AddCustomer(customer *domain.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockAirlineUseCase) HasCustomer(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockAirlineUseCase) CustomerByID(id string) (*domain.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockAirlineUseCase) RouteByCode(code string) (*domain.Route, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockAirlineUseCase) FlightBy(routeCode string, date domain.Date) (*domain.Flight, error) {
	args := m.Called(routeCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockAirlineUseCase) Aircraft() []*domain.Aircraft {
	args := m.Called()
	return args.Get(0).([]*domain.Aircraft)
}

func (m *MockAirlineUseCase) Routes() []*domain.Route {
	args := m.Called()
	return args.Get(0).([]*domain.Route)
}

func (m *MockAirlineUseCase) Customers() []*domain.Customer {
	args := m.Called()
	return args.Get(0).([]*domain.Customer)
}

func (m *MockAirlineUseCase) Flights() []*domain.Flight {
	args := m.Called()
	return args.Get(0).([]*domain.Flight)
}

func (m *MockAirlineUseCase) Tickets() []*domain.Ticket {
	args := m.Called()
	return args.Get(0).([]*domain.Ticket)
}

func (m *MockAirlineUseCase) ScheduleFlight(ctx context.Context, date domain.Date, routeCode, aircraftName string) (*domain.Flight, error) {
	args := m.Called(ctx, date, routeCode, aircraftName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockAirlineUseCase) SellTickets(ctx context.Context, customerID string, date domain.Date, routeCode string, quantity int) (int, error) {
	args := m.Called(ctx, customerID, date, routeCode, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockAirlineUseCase) MarkFlightRealized(ctx context.Context, date domain.Date, routeCode string) error {
	args := m.Called(ctx, date, routeCode)
	return args.Error(0)
}

func (m *MockAirlineUseCase) MarkTicketsUsed(ctx context.Context, customerID string, date domain.Date, routeCode string) (int, error) {
	args := m.Called(ctx, customerID, date, routeCode)
	return args.Int(0), args.Error(1)
}

func (m *MockAirlineUseCase) PendingBalance(customerID string) (int64, error) {
	args := m.Called(customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAirlineUseCase) TotalSpent(customerID string) (int64, error) {
	args := m.Called(customerID)
	return args.Get(0).(int64), args.Error(1)
}
