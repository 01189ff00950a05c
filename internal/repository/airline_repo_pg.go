package repository

import (
	"context"
	"fmt"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AirlineRepository loads and saves the airline's registered entities. Loaders
// validate what they read and surface bad rows as InconsistentDataError, so
// the aggregate is never populated with broken data.
type AirlineRepository interface {
	LoadAircraft(ctx context.Context) ([]*domain.Aircraft, error)
	LoadRoutes(ctx context.Context) ([]*domain.Route, error)
	LoadCustomers(ctx context.Context) ([]*domain.Customer, error)
	SaveAircraft(ctx context.Context, aircraft []*domain.Aircraft) error
	SaveRoutes(ctx context.Context, routes []*domain.Route) error
	SaveCustomers(ctx context.Context, customers []*domain.Customer) error
}

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

func (r *PGAirlineRepository) LoadAircraft(ctx context.Context) ([]*domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT name, capacity FROM aircraft ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aircraft := make([]*domain.Aircraft, 0)
	for rows.Next() {
		var name string
		var capacity int
		if err := rows.Scan(&name, &capacity); err != nil {
			return nil, err
		}
		a, err := domain.NewAircraft(name, capacity)
		if err != nil {
			return nil, err
		}
		aircraft = append(aircraft, a)
	}
	return aircraft, rows.Err()
}

func (r *PGAirlineRepository) LoadRoutes(ctx context.Context) ([]*domain.Route, error) {
	rows, err := r.db.Query(ctx, `SELECT code, origin, destination, departure, arrival FROM routes ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		var code, origin, destination, departure, arrival string
		if err := rows.Scan(&code, &origin, &destination, &departure, &arrival); err != nil {
			return nil, err
		}
		dep, err := domain.ParseTimeOfDay(departure)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", code, err)
		}
		arr, err := domain.ParseTimeOfDay(arrival)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", code, err)
		}
		route, err := domain.NewRoute(code, origin, destination, dep, arr)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

func (r *PGAirlineRepository) LoadCustomers(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, kind, company_size FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var id, name, kind, size string
		if err := rows.Scan(&id, &name, &kind, &size); err != nil {
			return nil, err
		}

		var customer *domain.Customer
		switch domain.CustomerKind(kind) {
		case domain.CustomerIndividual:
			customer, err = domain.NewIndividualCustomer(id, name)
		case domain.CustomerCorporate:
			customer, err = domain.NewCorporateCustomer(id, name, domain.CompanySize(size))
		default:
			return nil, &domain.InconsistentDataError{Reason: fmt.Sprintf("customer %s: unknown kind %q", id, kind)}
		}
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *PGAirlineRepository) SaveAircraft(ctx context.Context, aircraft []*domain.Aircraft) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM aircraft`); err != nil {
		return err
	}
	for _, a := range aircraft {
		if _, err := tx.Exec(ctx, `INSERT INTO aircraft (name, capacity) VALUES ($1, $2)`, a.Name, a.Capacity); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGAirlineRepository) SaveRoutes(ctx context.Context, routes []*domain.Route) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM routes`); err != nil {
		return err
	}
	for _, route := range routes {
		if _, err := tx.Exec(ctx, `INSERT INTO routes (code, origin, destination, departure, arrival) VALUES ($1, $2, $3, $4, $5)`,
			route.Code, route.Origin, route.Destination, route.Departure.String(), route.Arrival.String()); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGAirlineRepository) SaveCustomers(ctx context.Context, customers []*domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM customers`); err != nil {
		return err
	}
	for _, c := range customers {
		if _, err := tx.Exec(ctx, `INSERT INTO customers (id, name, kind, company_size) VALUES ($1, $2, $3, $4)`,
			c.ID, c.Name, string(c.Kind), string(c.Size)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
