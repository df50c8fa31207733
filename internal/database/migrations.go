package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id              SERIAL PRIMARY KEY,
		model           TEXT NOT NULL,
		year            INT NOT NULL,
		trim            TEXT NOT NULL,
		price           DOUBLE PRECISION NOT NULL,
		drivetrain      TEXT NOT NULL DEFAULT '',
		mpg_city        INT NOT NULL DEFAULT 0,
		mpg_highway     INT NOT NULL DEFAULT 0,
		mpg_combined    INT,
		engine          TEXT NOT NULL DEFAULT '',
		transmission    TEXT NOT NULL DEFAULT '',
		seating         INT NOT NULL DEFAULT 0,
		cargo_volume    DOUBLE PRECISION NOT NULL DEFAULT 0,
		towing_capacity INT NOT NULL DEFAULT 0,
		safety_rating   DOUBLE PRECISION NOT NULL DEFAULT 0,
		image_url       TEXT NOT NULL DEFAULT '',
		category        TEXT NOT NULL DEFAULT '',
		features        TEXT NOT NULL DEFAULT '[]',
		UNIQUE (model, year, trim)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_model ON vehicles (model)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id         SERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		vehicle_id INT NOT NULL REFERENCES vehicles (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, vehicle_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites (user_id)`,
	`CREATE TABLE IF NOT EXISTS comparisons (
		id         SERIAL PRIMARY KEY,
		session_id TEXT NOT NULL,
		vehicle_id INT NOT NULL REFERENCES vehicles (id) ON DELETE CASCADE,
		position   INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comparisons_session ON comparisons (session_id)`,
	`CREATE TABLE IF NOT EXISTS view_history (
		id         SERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		vehicle_id INT NOT NULL REFERENCES vehicles (id) ON DELETE CASCADE,
		viewed_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_view_history_user ON view_history (user_id)`,
}

// Migrate applies the schema. Statements are idempotent so a restart is a
// no-op.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
