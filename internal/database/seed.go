package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toyota-finder-api/internal/model"
)

func mpg(v int) *int { return &v }

// seedVehicles is the launch inventory. Seeding upserts on
// (model, year, trim) so price or spec corrections ship with a deploy
// without duplicating rows.
var seedVehicles = []model.Vehicle{
	{
		Model: "Camry", Year: 2024, Trim: "LE", Price: 26420,
		Drivetrain: "FWD", MPGCity: 28, MPGHighway: 39, MPGCombined: mpg(32),
		Engine: "2.5L 4-Cylinder", Transmission: "8-Speed Automatic",
		Seating: 5, CargoVolume: 15.1, TowingCapacity: 1000, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800",
		Category: "Sedan",
		Features: `["Toyota Safety Sense 2.5+","7-inch Touchscreen","Apple CarPlay","Android Auto","Adaptive Cruise Control"]`,
	},
	{
		Model: "Camry", Year: 2024, Trim: "XSE V6", Price: 36015,
		Drivetrain: "FWD", MPGCity: 22, MPGHighway: 33, MPGCombined: mpg(26),
		Engine: "3.5L V6", Transmission: "8-Speed Automatic",
		Seating: 5, CargoVolume: 15.1, TowingCapacity: 1000, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800",
		Category: "Sedan",
		Features: `["Toyota Safety Sense 2.5+","9-inch Touchscreen","JBL Premium Audio","Panoramic Roof","Leather Seats","Wireless Charging"]`,
	},
	{
		Model: "Corolla", Year: 2024, Trim: "LE", Price: 23145,
		Drivetrain: "FWD", MPGCity: 32, MPGHighway: 41, MPGCombined: mpg(35),
		Engine: "2.0L 4-Cylinder", Transmission: "CVT",
		Seating: 5, CargoVolume: 13.1, TowingCapacity: 0, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1623869675781-80aa31012a5a?w=800",
		Category: "Sedan",
		Features: `["Toyota Safety Sense 3.0","8-inch Touchscreen","Apple CarPlay","Android Auto","LED Headlights"]`,
	},
	{
		Model: "RAV4", Year: 2024, Trim: "LE", Price: 28675,
		Drivetrain: "AWD", MPGCity: 27, MPGHighway: 35, MPGCombined: mpg(30),
		Engine: "2.5L 4-Cylinder", Transmission: "8-Speed Automatic",
		Seating: 5, CargoVolume: 37.6, TowingCapacity: 1500, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1706509234538-9831b1b33d66?w=800&auto=format&q=80",
		Category: "SUV",
		Features: `["Toyota Safety Sense 2.0","7-inch Touchscreen","All-Wheel Drive","Apple CarPlay","Android Auto"]`,
	},
	{
		Model: "RAV4", Year: 2024, Trim: "Limited", Price: 37455,
		Drivetrain: "AWD", MPGCity: 27, MPGHighway: 35, MPGCombined: mpg(30),
		Engine: "2.5L 4-Cylinder", Transmission: "8-Speed Automatic",
		Seating: 5, CargoVolume: 37.6, TowingCapacity: 1500, SafetyRating: 5.0,
		ImageURL: "https://www.buyatoyota.com/sharpr/vcr/adobe/dynamicmedia/deliver/urn:aaid:aem:c4470c24-0745-4a6e-8096-42d2e2ea0b4f/image.png?wid=1200&hei=675&fmt=webp",
		Category: "SUV",
		Features: `["Toyota Safety Sense 2.0","11-speaker JBL Audio","Panoramic Sunroof","Leather Seats","Hands-Free Power Liftgate","Digital Rearview Mirror"]`,
	},
	{
		Model: "Highlander", Year: 2024, Trim: "L", Price: 37935,
		Drivetrain: "AWD", MPGCity: 22, MPGHighway: 29, MPGCombined: mpg(25),
		Engine: "2.4L Turbo 4-Cylinder", Transmission: "8-Speed Automatic",
		Seating: 8, CargoVolume: 16.0, TowingCapacity: 5000, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1606611013016-969c19f2e9e3?w=800",
		Category: "SUV",
		Features: `["Toyota Safety Sense 2.5+","8-inch Touchscreen","Three-Row Seating","All-Wheel Drive","Apple CarPlay"]`,
	},
	{
		Model: "Prius", Year: 2024, Trim: "LE", Price: 27950,
		Drivetrain: "FWD", MPGCity: 57, MPGHighway: 56, MPGCombined: mpg(57),
		Engine: "2.0L 4-Cylinder Hybrid", Transmission: "CVT",
		Seating: 5, CargoVolume: 23.8, TowingCapacity: 0, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
		Category: "Hybrid",
		Features: `["Toyota Safety Sense 3.0","8-inch Touchscreen","Wireless Apple CarPlay","Android Auto","Hybrid Synergy Drive"]`,
	},
	{
		Model: "Tacoma", Year: 2024, Trim: "SR5", Price: 38190,
		Drivetrain: "4WD", MPGCity: 19, MPGHighway: 24, MPGCombined: mpg(21),
		Engine: "2.4L Turbo 4-Cylinder", Transmission: "8-Speed Automatic",
		Seating: 5, CargoVolume: 0, TowingCapacity: 6500, SafetyRating: 4.5,
		ImageURL: "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800",
		Category: "Truck",
		Features: `["Toyota Safety Sense 2.5","8-inch Touchscreen","4-Wheel Drive","Tow Package","Bed Liner"]`,
	},
	{
		Model: "Tundra", Year: 2024, Trim: "SR5", Price: 49990,
		Drivetrain: "4WD", MPGCity: 18, MPGHighway: 24, MPGCombined: mpg(20),
		Engine: "3.4L Twin-Turbo V6 Hybrid", Transmission: "10-Speed Automatic",
		Seating: 5, CargoVolume: 0, TowingCapacity: 12000, SafetyRating: 4.5,
		ImageURL: "https://images.unsplash.com/photo-1581235720704-06d3acfcb36f?w=800",
		Category: "Truck",
		Features: `["Toyota Safety Sense 2.5","14-inch Touchscreen","4-Wheel Drive","Integrated Trailer Brake Controller","Power Tailgate"]`,
	},
	{
		Model: "4Runner", Year: 2024, Trim: "SR5", Price: 41015,
		Drivetrain: "4WD", MPGCity: 16, MPGHighway: 19, MPGCombined: mpg(17),
		Engine: "4.0L V6", Transmission: "5-Speed Automatic",
		Seating: 7, CargoVolume: 47.2, TowingCapacity: 5000, SafetyRating: 4.0,
		ImageURL: "https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?w=800",
		Category: "SUV",
		Features: `["Toyota Safety Sense","8-inch Touchscreen","4-Wheel Drive","Crawl Control","Multi-Terrain Select"]`,
	},
	{
		Model: "Sienna", Year: 2024, Trim: "LE", Price: 37685,
		Drivetrain: "FWD", MPGCity: 36, MPGHighway: 36, MPGCombined: mpg(36),
		Engine: "2.5L 4-Cylinder Hybrid", Transmission: "CVT",
		Seating: 8, CargoVolume: 33.5, TowingCapacity: 3500, SafetyRating: 5.0,
		ImageURL: "https://images.unsplash.com/photo-1568605117036-5fe5e7bab0b7?w=800",
		Category: "Minivan",
		Features: `["Toyota Safety Sense 2.0","9-inch Touchscreen","Power Sliding Doors","All-Wheel Drive Available","Apple CarPlay"]`,
	},
	{
		Model: "GR86", Year: 2024, Trim: "Premium", Price: 32300,
		Drivetrain: "RWD", MPGCity: 20, MPGHighway: 27, MPGCombined: mpg(22),
		Engine: "2.4L Flat-4", Transmission: "6-Speed Manual",
		Seating: 4, CargoVolume: 6.3, TowingCapacity: 0, SafetyRating: 4.5,
		ImageURL: "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800",
		Category: "Sports",
		Features: `["Track-Tuned Suspension","8-inch Touchscreen","Sport Seats","Limited-Slip Differential","Performance Tires"]`,
	},
}

// Seed upserts the launch inventory.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	const stmt = `
		INSERT INTO vehicles (
			model, year, trim, price, drivetrain,
			mpg_city, mpg_highway, mpg_combined,
			engine, transmission, seating, cargo_volume,
			towing_capacity, safety_rating, image_url, category, features
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (model, year, trim) DO UPDATE SET
			price = EXCLUDED.price,
			drivetrain = EXCLUDED.drivetrain,
			mpg_city = EXCLUDED.mpg_city,
			mpg_highway = EXCLUDED.mpg_highway,
			mpg_combined = EXCLUDED.mpg_combined,
			engine = EXCLUDED.engine,
			transmission = EXCLUDED.transmission,
			seating = EXCLUDED.seating,
			cargo_volume = EXCLUDED.cargo_volume,
			towing_capacity = EXCLUDED.towing_capacity,
			safety_rating = EXCLUDED.safety_rating,
			image_url = EXCLUDED.image_url,
			category = EXCLUDED.category,
			features = EXCLUDED.features
	`

	for _, v := range seedVehicles {
		_, err := db.Exec(ctx, stmt,
			v.Model, v.Year, v.Trim, v.Price, v.Drivetrain,
			v.MPGCity, v.MPGHighway, v.MPGCombined,
			v.Engine, v.Transmission, v.Seating, v.CargoVolume,
			v.TowingCapacity, v.SafetyRating, v.ImageURL, v.Category, v.Features,
		)
		if err != nil {
			return fmt.Errorf("seed %s %d %s: %w", v.Model, v.Year, v.Trim, err)
		}
	}
	return nil
}
