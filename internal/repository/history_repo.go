package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"toyota-finder-api/internal/model"
)

type HistoryRepo struct {
	db *pgxpool.Pool
}

func NewHistoryRepo(db *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Record stores a vehicle view.
func (r *HistoryRepo) Record(ctx context.Context, in model.ViewHistoryCreate) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO view_history (user_id, vehicle_id) VALUES ($1, $2)",
		in.UserID, in.VehicleID,
	)
	return err
}

// ListByUser returns the user's most recent views, newest first.
func (r *HistoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.ViewHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, vehicle_id, viewed_at
		 FROM view_history
		 WHERE user_id = $1
		 ORDER BY viewed_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.ViewHistory
	for rows.Next() {
		var h model.ViewHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.VehicleID, &h.ViewedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	return history, rows.Err()
}
