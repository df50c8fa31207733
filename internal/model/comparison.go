package model

// ComparisonRequest asks for a side-by-side of up to three vehicles.
// SessionID groups the rows saved for later "recently compared" lookups;
// the handler generates one when the client leaves it blank.
type ComparisonRequest struct {
	SessionID  string `json:"session_id"`
	VehicleIDs []int  `json:"vehicle_ids"`
}

type ComparisonResponse struct {
	Vehicles        []Vehicle           `json:"vehicles"`
	ComparisonTable map[string][]string `json:"comparison_table"`
}
