package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"toyota-finder-api/internal/model"
)

type FavoriteRepo struct {
	db *pgxpool.Pool
}

func NewFavoriteRepo(db *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// ListByUser returns the user's favorites with embedded vehicle details.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	query := `
		SELECT
			f.id, f.user_id, f.vehicle_id, f.created_at,
			v.id, v.model, v.year, v.trim, v.price, v.drivetrain,
			v.mpg_city, v.mpg_highway, v.mpg_combined,
			v.engine, v.transmission, v.seating, v.cargo_volume,
			v.towing_capacity, v.safety_rating, v.image_url, v.category, v.features
		FROM favorites f
		JOIN vehicles v ON v.id = f.vehicle_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		var v model.Vehicle
		err := rows.Scan(
			&f.ID, &f.UserID, &f.VehicleID, &f.CreatedAt,
			&v.ID, &v.Model, &v.Year, &v.Trim, &v.Price, &v.Drivetrain,
			&v.MPGCity, &v.MPGHighway, &v.MPGCombined,
			&v.Engine, &v.Transmission, &v.Seating, &v.CargoVolume,
			&v.TowingCapacity, &v.SafetyRating, &v.ImageURL, &v.Category, &v.Features,
		)
		if err != nil {
			return nil, err
		}
		f.Vehicle = &v
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// Exists reports whether the user already favorited the vehicle.
func (r *FavoriteRepo) Exists(ctx context.Context, userID string, vehicleID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND vehicle_id = $2)",
		userID, vehicleID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a favorite and returns it.
func (r *FavoriteRepo) Create(ctx context.Context, in model.FavoriteCreate) (*model.Favorite, error) {
	f := model.Favorite{UserID: in.UserID, VehicleID: in.VehicleID}
	err := r.db.QueryRow(ctx,
		"INSERT INTO favorites (user_id, vehicle_id) VALUES ($1, $2) RETURNING id, created_at",
		in.UserID, in.VehicleID,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes a favorite and reports whether it existed.
func (r *FavoriteRepo) Delete(ctx context.Context, userID string, vehicleID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND vehicle_id = $2",
		userID, vehicleID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
