package repository

import (
	"context"
	"fmt"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	LoadTickets(ctx context.Context) ([]*domain.Ticket, error)
	SaveTickets(ctx context.Context, tickets []*domain.Ticket) error
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) LoadTickets(ctx context.Context) ([]*domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT code, fare, used, route_code, flight_date, customer_id FROM tickets ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		var flightDate string
		if err := rows.Scan(&t.Code, &t.Fare, &t.Used, &t.RouteCode, &flightDate, &t.CustomerID); err != nil {
			return nil, err
		}
		date, err := domain.ParseDate(flightDate)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", t.Code, err)
		}
		t.Date = date
		tickets = append(tickets, &t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) SaveTickets(ctx context.Context, tickets []*domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tickets`); err != nil {
		return err
	}
	for _, t := range tickets {
		if _, err := tx.Exec(ctx, `INSERT INTO tickets (code, fare, used, route_code, flight_date, customer_id) VALUES ($1, $2, $3, $4, $5, $6)`,
			t.Code, t.Fare, t.Used, t.RouteCode, t.Date.String(), t.CustomerID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

var _ TicketRepository = (*PGTicketRepository)(nil)
