package model

import "time"

type ViewHistory struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	VehicleID int       `json:"vehicle_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// ViewHistoryCreate is the body of POST /history.
type ViewHistoryCreate struct {
	UserID    string `json:"user_id"`
	VehicleID int    `json:"vehicle_id"`
}
