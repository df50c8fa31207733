package model

// Vehicle is a single inventory row. MPGCombined is nullable because some
// listings (track-only or fleet imports) arrive without a combined figure.
type Vehicle struct {
	ID             int     `json:"id"`
	Model          string  `json:"model"`
	Year           int     `json:"year"`
	Trim           string  `json:"trim"`
	Price          float64 `json:"price"`
	Drivetrain     string  `json:"drivetrain"`
	MPGCity        int     `json:"mpg_city"`
	MPGHighway     int     `json:"mpg_highway"`
	MPGCombined    *int    `json:"mpg_combined"`
	Engine         string  `json:"engine"`
	Transmission   string  `json:"transmission"`
	Seating        int     `json:"seating"`
	CargoVolume    float64 `json:"cargo_volume"`
	TowingCapacity int     `json:"towing_capacity"`
	SafetyRating   float64 `json:"safety_rating"`
	ImageURL       string  `json:"image_url"`
	Category       string  `json:"category"`
	Features       string  `json:"features"`
}

// VehicleFilter carries the optional query parameters of GET /cars.
type VehicleFilter struct {
	Model       string
	MinPrice    *float64
	MaxPrice    *float64
	Drivetrain  string
	MinMPG      *int
	Category    string
	SearchQuery string
}
