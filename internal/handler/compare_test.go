package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toyota-finder-api/internal/model"
)

func TestComparisonTable(t *testing.T) {
	combined := 35
	vehicles := []model.Vehicle{
		{
			Model: "Camry", Year: 2024, Trim: "LE", Price: 26420,
			Drivetrain: "FWD", MPGCity: 32, MPGHighway: 41, MPGCombined: &combined,
			Engine: "2.5L 4-Cylinder", Transmission: "8-Speed Automatic",
			Seating: 5, CargoVolume: 15.1, TowingCapacity: 0, SafetyRating: 5,
		},
		{
			Model: "Tundra", Year: 2024, Trim: "SR5", Price: 49990,
			Drivetrain: "4WD", MPGCity: 18, MPGHighway: 24,
			Engine: "3.4L Twin-Turbo V6", Transmission: "10-Speed Automatic",
			Seating: 5, CargoVolume: 0, TowingCapacity: 12000, SafetyRating: 4.5,
		},
	}

	table := comparisonTable(vehicles)

	assert.Equal(t, []string{"Camry LE", "Tundra SR5"}, table["Model"])
	assert.Equal(t, []string{"$26,420", "$49,990"}, table["Price"])
	assert.Equal(t, []string{"32/41/35", "18/24/N/A"}, table["MPG (City/Hwy/Combined)"])
	assert.Equal(t, []string{"15.1 cu ft", "0 cu ft"}, table["Cargo Volume"])
	assert.Equal(t, []string{"N/A", "12,000 lbs"}, table["Towing Capacity"])
	assert.Equal(t, []string{"5", "4.5"}, table["Safety Rating"])
	assert.Len(t, table, 10)
}
