package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ComparisonRepo struct {
	db *pgxpool.Pool
}

func NewComparisonRepo(db *pgxpool.Pool) *ComparisonRepo {
	return &ComparisonRepo{db: db}
}

// RecordSession stores one row per compared vehicle, positions starting
// at 1 in request order.
func (r *ComparisonRepo) RecordSession(ctx context.Context, sessionID string, vehicleIDs []int) error {
	for i, id := range vehicleIDs {
		_, err := r.db.Exec(ctx,
			"INSERT INTO comparisons (session_id, vehicle_id, position) VALUES ($1, $2, $3)",
			sessionID, id, i+1,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
