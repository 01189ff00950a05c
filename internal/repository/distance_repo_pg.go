package repository

import (
	"context"
	"errors"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/dortiz91/aerolinea/internal/fare"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGDistanceRepository resolves airport distances from the airport_distances
// table. Distances are symmetric, so either row direction matches.
type PGDistanceRepository struct {
	db *pgxpool.Pool
}

func NewDistanceRepository(db *pgxpool.Pool) *PGDistanceRepository {
	return &PGDistanceRepository{db: db}
}

func (r *PGDistanceRepository) Distance(ctx context.Context, origin, destination string) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT km FROM airport_distances WHERE (origin=$1 AND destination=$2) OR (origin=$2 AND destination=$1)`, origin, destination)
	var km int
	if err := row.Scan(&km); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.NotFoundError{Kind: "distance", ID: origin + "-" + destination}
		}
		return 0, err
	}
	return km, nil
}

var _ fare.DistanceSource = (*PGDistanceRepository)(nil)
