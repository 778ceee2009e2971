package models

import (
	"github.com/shopspring/decimal"
)

// CartLine represents one entry in the shopping cart. Product fields are
// copied at add time so later catalog changes do not alter cart display.
// Qty is always >= 1; reducing below 1 clamps, it never removes the line.
type CartLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Qty   int             `json:"qty"`
}

// Session is the persisted pair of current user and cart contents.
type Session struct {
	User *User      `json:"user"`
	Cart []CartLine `json:"cart"`
}
