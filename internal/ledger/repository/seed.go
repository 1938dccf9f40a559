package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"stockdesk/internal/domain"
)

// Seed returns the fallback dataset used when the cache is empty or
// unreadable.
func Seed() []domain.InventoryItem {
	seeded := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	price := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	return []domain.InventoryItem{
		{
			ID:            "seed-0001",
			Name:          "Wireless Mouse",
			Category:      "Electronics",
			Supplier:      "TechWare Distribution",
			SKU:           "MS-2023",
			Barcode:       "8900127487",
			Stock:         45,
			SellingPrice:  price("29.99"),
			BuyingPrice:   price("15.50"),
			LastUpdated:   seeded(2026, time.January, 12),
			InitialStock:  60,
			SoldToday:     3,
			SoldWeek:      14,
			SalesVelocity: 2,
			ReorderPoint:  15,
		},
		{
			ID:            "seed-0002",
			Name:          "Mechanical Keyboard",
			Category:      "Electronics",
			Supplier:      "TechWare Distribution",
			SKU:           "KB-8810",
			Barcode:       "8900127500",
			Stock:         8,
			SellingPrice:  price("89.90"),
			BuyingPrice:   price("52.00"),
			LastUpdated:   seeded(2026, time.January, 10),
			InitialStock:  30,
			SoldToday:     2,
			SoldWeek:      11,
			SalesVelocity: 1.6,
			ReorderPoint:  10,
		},
		{
			ID:            "seed-0003",
			Name:          "HDMI Cable 2m",
			Category:      "Accessories",
			Supplier:      "Cablex Ltd",
			SKU:           "HD-0020",
			Barcode:       "8900127611",
			Stock:         0,
			SellingPrice:  price("7.50"),
			BuyingPrice:   price("2.10"),
			LastUpdated:   seeded(2026, time.January, 8),
			InitialStock:  50,
			SoldToday:     0,
			SoldWeek:      9,
			SalesVelocity: 1.2,
			ReorderPoint:  12,
		},
		{
			ID:            "seed-0004",
			Name:          "Spiral Notebook A5",
			Category:      "Stationery",
			Supplier:      "PaperHouse Co",
			SKU:           "NB-1150",
			Stock:         120,
			SellingPrice:  price("3.20"),
			BuyingPrice:   price("1.40"),
			LastUpdated:   seeded(2026, time.January, 5),
			InitialStock:  150,
			SoldToday:     6,
			SoldWeek:      32,
			SalesVelocity: 4.5,
			ReorderPoint:  40,
		},
		{
			ID:            "seed-0005",
			Name:          "Gel Pen Black (12-pack)",
			Category:      "Stationery",
			Supplier:      "PaperHouse Co",
			SKU:           "PN-0412",
			Barcode:       "8900128033",
			Stock:         18,
			SellingPrice:  price("5.99"),
			BuyingPrice:   price("3.10"),
			LastUpdated:   seeded(2026, time.January, 11),
			InitialStock:  40,
			SoldToday:     1,
			SoldWeek:      8,
			SalesVelocity: 1.1,
			ReorderPoint:  20,
		},
		{
			ID:           "seed-0006",
			Name:         "Monitor Stand",
			Category:     "Accessories",
			Supplier:     "Deskform GmbH",
			SKU:          "ST-7703",
			Barcode:      "8900128150",
			Stock:        25,
			SellingPrice: price("34.00"),
			BuyingPrice:  price("19.75"),
			LastUpdated:  seeded(2026, time.January, 2),
			InitialStock: 25,
			ReorderPoint: 8,
		},
	}
}
