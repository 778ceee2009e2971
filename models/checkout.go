package models

import (
	"github.com/shopspring/decimal"
)

// Payment methods accepted by the simulated checkout.
const (
	PaymentStripe = "stripe"
	PaymentPaypal = "paypal"
)

// CheckoutForm holds the shipping and payment fields submitted at checkout.
type CheckoutForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Postal        string `json:"postal"`
	PaymentMethod string `json:"payment_method"`
}

// Receipt is returned after a simulated checkout completes. No order is
// stored anywhere; the receipt is the only artifact.
type Receipt struct {
	OrderID   string          `json:"order_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}
