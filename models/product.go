package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry. Products are seeded once at startup
// and never mutated or persisted.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// SeedProducts returns the fixed storefront catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "cake-1",
			Name:        "Strawberry Shortcake",
			Price:       decimal.RequireFromString("29.99"),
			Image:       "https://images.unsplash.com/photo-1602663491496-73f07481dbea?w=1600&auto=format&fit=crop&q=80",
			Description: "Fluffy sponge layered with whipped cream and fresh strawberries.",
		},
		{
			ID:          "cake-2",
			Name:        "Chocolate Ganache",
			Price:       decimal.RequireFromString("34.50"),
			Image:       "https://images.unsplash.com/photo-1685521488661-34aebd9abdb2?w=1600&auto=format&fit=crop&q=80",
			Description: "Rich chocolate cake coated in silky dark chocolate ganache.",
		},
		{
			ID:          "cake-3",
			Name:        "Lemon Drizzle",
			Price:       decimal.RequireFromString("24.00"),
			Image:       "https://images.unsplash.com/photo-1738664888052-585dd9dcd78a?w=1600&auto=format&fit=crop&q=80",
			Description: "Zesty lemon cake with a tangy drizzle and candied peel.",
		},
		{
			ID:          "cake-4",
			Name:        "Red Velvet",
			Price:       decimal.RequireFromString("32.00"),
			Image:       "https://images.unsplash.com/photo-1586788680434-30d324b2d46f?w=1600&auto=format&fit=crop&q=80",
			Description: "Classic red velvet with cream cheese frosting.",
		},
	}
}
