package model

import "time"

type Favorite struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	VehicleID int       `json:"vehicle_id"`
	CreatedAt time.Time `json:"created_at"`
	Vehicle   *Vehicle  `json:"vehicle,omitempty"`
}

// FavoriteCreate is the body of POST /favorites.
type FavoriteCreate struct {
	UserID    string `json:"user_id"`
	VehicleID int    `json:"vehicle_id"`
}
