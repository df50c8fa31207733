package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"toyota-finder-api/internal/model"
)

const vehicleColumns = `
	id, model, year, trim, price, drivetrain,
	mpg_city, mpg_highway, mpg_combined,
	engine, transmission, seating, cargo_volume,
	towing_capacity, safety_rating, image_url, category, features
`

type VehicleRepo struct {
	db *pgxpool.Pool
}

func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func scanVehicle(row pgx.Row) (model.Vehicle, error) {
	var v model.Vehicle
	err := row.Scan(
		&v.ID, &v.Model, &v.Year, &v.Trim, &v.Price, &v.Drivetrain,
		&v.MPGCity, &v.MPGHighway, &v.MPGCombined,
		&v.Engine, &v.Transmission, &v.Seating, &v.CargoVolume,
		&v.TowingCapacity, &v.SafetyRating, &v.ImageURL, &v.Category, &v.Features,
	)
	return v, err
}

func collectVehicles(rows pgx.Rows) ([]model.Vehicle, error) {
	defer rows.Close()
	var vehicles []model.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// List returns vehicles matching the optional filters of GET /cars.
func (r *VehicleRepo) List(ctx context.Context, f model.VehicleFilter) ([]model.Vehicle, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Model != "" {
		conditions = append(conditions, "model ILIKE "+arg("%"+f.Model+"%"))
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "price <= "+arg(*f.MaxPrice))
	}
	if f.Drivetrain != "" {
		conditions = append(conditions, "drivetrain = "+arg(f.Drivetrain))
	}
	if f.MinMPG != nil {
		conditions = append(conditions, "mpg_combined >= "+arg(*f.MinMPG))
	}
	if f.Category != "" {
		conditions = append(conditions, "category = "+arg(f.Category))
	}
	if f.SearchQuery != "" {
		p := arg("%" + f.SearchQuery + "%")
		conditions = append(conditions,
			fmt.Sprintf("(model ILIKE %s OR trim ILIKE %s OR category ILIKE %s)", p, p, p))
	}

	query := "SELECT " + vehicleColumns + " FROM vehicles"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectVehicles(rows)
}

// All returns the full inventory snapshot.
func (r *VehicleRepo) All(ctx context.Context) ([]model.Vehicle, error) {
	return r.List(ctx, model.VehicleFilter{})
}

// GetByID returns nil when the vehicle does not exist.
func (r *VehicleRepo) GetByID(ctx context.Context, id int) (*model.Vehicle, error) {
	row := r.db.QueryRow(ctx, "SELECT "+vehicleColumns+" FROM vehicles WHERE id = $1", id)
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SearchByModel matches the model name as a case-insensitive substring,
// mirroring how the assistant resolves canonical model mentions.
func (r *VehicleRepo) SearchByModel(ctx context.Context, name string) ([]model.Vehicle, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+vehicleColumns+" FROM vehicles WHERE model ILIKE $1 ORDER BY id",
		"%"+name+"%",
	)
	if err != nil {
		return nil, err
	}
	return collectVehicles(rows)
}

// MostExpensive returns nil on an empty inventory.
func (r *VehicleRepo) MostExpensive(ctx context.Context) (*model.Vehicle, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+vehicleColumns+" FROM vehicles ORDER BY price DESC LIMIT 1")
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// MostEfficient returns the highest combined-MPG vehicle, skipping rows
// without MPG data. Nil when no row qualifies.
func (r *VehicleRepo) MostEfficient(ctx context.Context) (*model.Vehicle, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+vehicleColumns+" FROM vehicles WHERE mpg_combined IS NOT NULL ORDER BY mpg_combined DESC LIMIT 1")
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
