package airline

import (
	"context"
	"testing"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/dortiz91/aerolinea/internal/fare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubDistances struct {
	km int
}

func (s *stubDistances) Distance(ctx context.Context, origin, destination string) (int, error) {
	return s.km, nil
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func newTestService(t *testing.T, opts ...AirlineServiceOption) *AirlineService {
	t.Helper()
	calc := fare.NewCalculator(&stubDistances{km: 1000}, nil)
	return NewAirlineService(calc, opts...)
}

func addAircraft(t *testing.T, s *AirlineService, name string, capacity int) {
	t.Helper()
	a, err := domain.NewAircraft(name, capacity)
	assert.NoError(t, err)
	assert.NoError(t, s.AddAircraft(a))
}

func addRoute(t *testing.T, s *AirlineService, code, departure, arrival string) {
	t.Helper()
	dep, err := domain.ParseTimeOfDay(departure)
	assert.NoError(t, err)
	arr, err := domain.ParseTimeOfDay(arrival)
	assert.NoError(t, err)
	route, err := domain.NewRoute(code, "BOG", "MDE", dep, arr)
	assert.NoError(t, err)
	assert.NoError(t, s.AddRoute(route))
}

func addIndividual(t *testing.T, s *AirlineService, id string) {
	t.Helper()
	c, err := domain.NewIndividualCustomer(id, "Ana")
	assert.NoError(t, err)
	assert.NoError(t, s.AddCustomer(c))
}

func date(month, day int) domain.Date {
	return domain.Date{Year: 2026, Month: month, Day: day}
}

func TestAddAircraft_RejectsDuplicateName(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)

	a, err := domain.NewAircraft("HK-1001", 20)
	assert.NoError(t, err)
	var inconsistent *domain.InconsistentDataError
	assert.ErrorAs(t, service.AddAircraft(a), &inconsistent)
	assert.Len(t, service.Aircraft(), 1)
}

func TestLookups(t *testing.T) {
	service := newTestService(t)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	assert.True(t, service.HasCustomer("c1"))
	assert.False(t, service.HasCustomer("ghost"))

	customer, err := service.CustomerByID("c1")
	assert.NoError(t, err)
	assert.Equal(t, "c1", customer.ID)

	route, err := service.RouteByCode("R1")
	assert.NoError(t, err)
	assert.Equal(t, "R1", route.Code)

	var notFound *domain.NotFoundError
	_, err = service.RouteByCode("R9")
	assert.ErrorAs(t, err, &notFound)
	_, err = service.CustomerByID("ghost")
	assert.ErrorAs(t, err, &notFound)
	_, err = service.FlightBy("R1", date(3, 15))
	assert.ErrorAs(t, err, &notFound)
}

func TestScheduleFlight_Success(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")

	flight, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)
	assert.Equal(t, "R1", flight.Route.Code)
	assert.Equal(t, "HK-1001", flight.Aircraft.Name)
	assert.Len(t, service.Flights(), 1)
}

func TestScheduleFlight_NotFound(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")

	var notFound *domain.NotFoundError
	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-9999")
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "aircraft", notFound.Kind)

	_, err = service.ScheduleFlight(context.Background(), date(3, 15), "R9", "HK-1001")
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "route", notFound.Kind)

	assert.Empty(t, service.Flights())
}

func TestScheduleFlight_NonOverlappingRoutesShareAircraft(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addRoute(t, service, "R2", "0900", "1100")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)
	_, err = service.ScheduleFlight(context.Background(), date(3, 15), "R2", "HK-1001")
	assert.NoError(t, err)
	assert.Len(t, service.Flights(), 2)
}

func TestScheduleFlight_OverlapConflicts(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addRoute(t, service, "R2", "0700", "0900")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)

	var conflict *domain.ScheduleConflictError
	_, err = service.ScheduleFlight(context.Background(), date(3, 16), "R2", "HK-1001")
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "HK-1001", conflict.Aircraft)
	assert.Equal(t, "R1", conflict.RouteCode)
	assert.Len(t, service.Flights(), 1)
}

func TestScheduleFlight_BoundaryMinuteConflicts(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addRoute(t, service, "R2", "0800", "1000")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)

	var conflict *domain.ScheduleConflictError
	_, err = service.ScheduleFlight(context.Background(), date(3, 15), "R2", "HK-1001")
	assert.ErrorAs(t, err, &conflict)
}

func TestScheduleFlight_OtherAircraftUnaffected(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addAircraft(t, service, "HK-2002", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addRoute(t, service, "R2", "0700", "0900")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)
	_, err = service.ScheduleFlight(context.Background(), date(3, 15), "R2", "HK-2002")
	assert.NoError(t, err)
}

func TestScheduleFlight_DuplicateFlightRejected(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addAircraft(t, service, "HK-2002", 10)
	addRoute(t, service, "R1", "0600", "0800")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)

	var inconsistent *domain.InconsistentDataError
	_, err = service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-2002")
	assert.ErrorAs(t, err, &inconsistent)
	assert.Len(t, service.Flights(), 1)
}

func TestSellTickets_Success(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)

	issued, err := service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, issued)

	// Low season, individual: 1000 km at 600/km plus 28% tax per ticket.
	balance, err := service.PendingBalance("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2*768000), balance)

	assert.Len(t, service.Tickets(), 2)
}

func TestSellTickets_NotFound(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	var notFound *domain.NotFoundError
	_, err := service.SellTickets(context.Background(), "ghost", date(3, 15), "R1", 1)
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "customer", notFound.Kind)

	// No flight scheduled for that route and date.
	_, err = service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 1)
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "flight", notFound.Kind)
}

func TestSellTickets_OversoldIsAtomic(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 3)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)

	issued, err := service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, issued)

	var oversold *domain.OversoldError
	_, err = service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 1)
	assert.ErrorAs(t, err, &oversold)

	// The failed sale committed nothing.
	assert.Len(t, service.Tickets(), 3)
	balance, err := service.PendingBalance("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(3*768000), balance)
}

func TestSellTickets_PublishesEvents(t *testing.T) {
	producer := &MockProducer{}
	service := newTestService(t,
		WithProducer(producer, "tickets", "flights"),
		WithNotificationsTopic("notifications"),
	)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	producer.On("Publish", mock.Anything, "flights", mock.Anything, mock.Anything).Return(nil).Once()
	producer.On("Publish", mock.Anything, "tickets", "c1", mock.Anything).Return(nil).Once()
	producer.On("Publish", mock.Anything, "notifications", "c1", mock.Anything).Return(nil).Once()

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)
	_, err = service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 1)
	assert.NoError(t, err)

	producer.AssertExpectations(t)
}

func TestMarkFlightRealized(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)
	_, err = service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 2)
	assert.NoError(t, err)

	assert.NoError(t, service.MarkFlightRealized(context.Background(), date(3, 15), "R1"))
	assert.Empty(t, service.Flights())
	assert.Empty(t, service.Tickets())

	// Ticket history survives through the customer.
	customer, err := service.CustomerByID("c1")
	assert.NoError(t, err)
	assert.Len(t, customer.UnusedTickets(), 2)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, service.MarkFlightRealized(context.Background(), date(3, 15), "R1"), &notFound)
}

func TestMarkTicketsUsed_BalanceRoundTrip(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)
	_, err = service.SellTickets(context.Background(), "c1", date(3, 15), "R1", 3)
	assert.NoError(t, err)

	used, err := service.MarkTicketsUsed(context.Background(), "c1", date(3, 15), "R1")
	assert.NoError(t, err)
	assert.Equal(t, 3, used)

	balance, err := service.PendingBalance("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	spent, err := service.TotalSpent("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(3*768000), spent)
}

func TestPendingBalance_UnknownCustomer(t *testing.T) {
	service := newTestService(t)

	var notFound *domain.NotFoundError
	_, err := service.PendingBalance("ghost")
	assert.ErrorAs(t, err, &notFound)
	_, err = service.TotalSpent("ghost")
	assert.ErrorAs(t, err, &notFound)
}

func TestRestoreTickets(t *testing.T) {
	service := newTestService(t)
	addAircraft(t, service, "HK-1001", 10)
	addRoute(t, service, "R1", "0600", "0800")
	addIndividual(t, service, "c1")

	_, err := service.ScheduleFlight(context.Background(), date(3, 15), "R1", "HK-1001")
	assert.NoError(t, err)

	tickets := []*domain.Ticket{
		{Code: "T-001", Fare: 768000, RouteCode: "R1", Date: date(3, 15), CustomerID: "c1"},
		// A ticket of an already realized flight: attaches to the customer only.
		{Code: "T-002", Fare: 768000, Used: true, RouteCode: "R9", Date: date(1, 2), CustomerID: "c1"},
	}
	assert.NoError(t, service.RestoreTickets(tickets))

	flight, err := service.FlightBy("R1", date(3, 15))
	assert.NoError(t, err)
	assert.Equal(t, 1, flight.TicketCount())

	customer, err := service.CustomerByID("c1")
	assert.NoError(t, err)
	assert.Len(t, customer.UnusedTickets(), 1)
	assert.Len(t, customer.UsedTickets(), 1)
}

func TestRestoreTickets_UnknownCustomer(t *testing.T) {
	service := newTestService(t)

	var inconsistent *domain.InconsistentDataError
	err := service.RestoreTickets([]*domain.Ticket{{Code: "T-001", CustomerID: "ghost"}})
	assert.ErrorAs(t, err, &inconsistent)
}
