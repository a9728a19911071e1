package database

import (
	"github.com/google/uuid"

	"ev-storefront/internal/domain"
)

var catalogNamespace = uuid.MustParse("6f1c2a4e-3b7d-4c1e-9a55-0d2f8e6b7c10")

// ProductID derives the stable id of a seeded product from its name.
func ProductID(name string) uuid.UUID {
	return uuid.NewSHA1(catalogNamespace, []byte(name))
}

func colors(standard, premium int64) []domain.Option {
	return []domain.Option{
		{Name: "Pearl White Multi-Coat", Price: standard, Hex: "#F4F4F4"},
		{Name: "Solid Black", Price: premium, Hex: "#171A20"},
		{Name: "Deep Blue Metallic", Price: premium, Hex: "#2B3C6B"},
	}
}

// Catalog is the initial vehicle line-up loaded when SEED_CATALOG is set.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID:          ProductID("Model S"),
			Name:        "Model S",
			Description: "Plaid. Beyond Ludicrous.",
			Images: []string{
				"https://digitalassets.tesla.com/tesla-contents/image/upload/f_auto,q_auto/Model-S-New-Hero-Desktop-NA.png",
				"https://digitalassets.tesla.com/tesla-contents/image/upload/f_auto,q_auto/Model-S-New-Interior-Desktop-NA.png",
			},
			BasePrice: 89990,
			Specifications: domain.Specifications{
				Range:        "396 mi",
				TopSpeed:     "200 mph",
				Acceleration: "1.99 s 0-60 mph",
				Power:        "1,020 hp",
			},
			Configurations: domain.Configurations{
				Variants: []domain.Option{
					{Name: "Long Range", Price: 0},
					{Name: "Plaid", Price: 20000},
				},
				Colors: colors(0, 1500),
				Wheels: []domain.Option{
					{Name: `19" Tempest Wheels`, Price: 0},
					{Name: `21" Arachnid Wheels`, Price: 4500},
				},
				Interiors: []domain.Option{
					{Name: "All Black", Price: 0},
					{Name: "Black and White", Price: 2000},
					{Name: "Cream", Price: 2000},
				},
			},
		},
		{
			ID:          ProductID("Model 3"),
			Name:        "Model 3",
			Description: "Quickest acceleration, from zero to 60 mph in as little as 3.1 seconds.",
			Images: []string{
				"https://digitalassets.tesla.com/tesla-contents/image/upload/f_auto,q_auto/Model-3-Exterior-Hero-Desktop-LHD.jpg",
				"https://digitalassets.tesla.com/tesla-contents/image/upload/f_auto,q_auto/Model-3-Charging-Slide-1-Desktop-NA.jpg",
			},
			BasePrice: 42990,
			Specifications: domain.Specifications{
				Range:        "358 mi",
				TopSpeed:     "162 mph",
				Acceleration: "3.1 s 0-60 mph",
				Power:        "450 hp",
			},
			Configurations: domain.Configurations{
				Variants: []domain.Option{
					{Name: "Rear-Wheel Drive", Price: 0},
					{Name: "Long Range", Price: 5000},
					{Name: "Performance", Price: 9000},
				},
				Colors: colors(0, 1000),
				Wheels: []domain.Option{
					{Name: `18" Aero Wheels`, Price: 0},
					{Name: `19" Sport Wheels`, Price: 1500},
				},
				Interiors: []domain.Option{
					{Name: "All Black", Price: 0},
					{Name: "Black and White", Price: 1000},
				},
			},
		},
		{
			ID:          ProductID("Model X"),
			Name:        "Model X",
			Description: "The best SUV to drive, and the best SUV to be driven in.",
			Images: []string{
				"https://digitalassets.tesla.com/tesla-contents/image/upload/f_auto,q_auto/Model-X-New-Hero-Desktop.jpg",
				"https://digitalassets.tesla.com/tesla-contents/image/upload/f_auto,q_auto/Model-X-New-FSD-Desktop-NA.jpg",
			},
			BasePrice: 99990,
			Specifications: domain.Specifications{
				Range:        "333 mi",
				TopSpeed:     "155 mph",
				Acceleration: "2.5 s 0-60 mph",
				Power:        "1,020 hp",
			},
			Configurations: domain.Configurations{
				Variants: []domain.Option{
					{Name: "Dual Motor", Price: 0},
					{Name: "Plaid", Price: 20000},
				},
				Colors: colors(0, 1500),
				Wheels: []domain.Option{
					{Name: `20" Cyberstream Wheels`, Price: 0},
					{Name: `22" Turbine Wheels`, Price: 5500},
				},
				Interiors: []domain.Option{
					{Name: "All Black", Price: 0},
					{Name: "Black and White", Price: 2000},
					{Name: "Cream", Price: 2000},
				},
			},
		},
	}
}
