package store

import (
	"go-storefront/models"
)

// Action is a tagged request to transition store state. The set of actions
// is closed; anything else is a no-op for the reducer.
type Action interface {
	isAction()
}

// InitSession replaces the user and cart wholesale, typically from a
// restored session. Absent fields fall back to no user / empty cart.
type InitSession struct {
	User *models.User
	Cart []models.CartLine
}

// AddToCart adds Qty of Product to the cart, merging into an existing line
// for the same product id. The resulting quantity is clamped to >= 1.
type AddToCart struct {
	Product models.Product
	Qty     int
}

// RemoveFromCart deletes the line with the given product id, if present.
type RemoveFromCart struct {
	ID string
}

// SetQty sets a line's quantity to max(1, Qty). Unknown ids are ignored.
type SetQty struct {
	ID  string
	Qty int
}

// ClearCart empties the cart.
type ClearCart struct{}

// Login sets the active user, replacing any existing session.
type Login struct {
	User models.User
}

// Logout clears the active user. The cart is untouched.
type Logout struct{}

func (InitSession) isAction()    {}
func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (SetQty) isAction()         {}
func (ClearCart) isAction()      {}
func (Login) isAction()          {}
func (Logout) isAction()         {}
