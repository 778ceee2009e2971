package store

import (
	"go-storefront/models"
)

// State is the aggregate owned by the store: the immutable catalog, the
// cart, and the optional active user.
type State struct {
	Products []models.Product
	Cart     []models.CartLine
	User     *models.User
}

// clone returns a copy of s with its own cart slice. Products are shared;
// the catalog is never mutated.
func (s State) clone() State {
	cart := make([]models.CartLine, len(s.Cart))
	copy(cart, s.Cart)
	s.Cart = cart
	return s
}

func clampQty(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// Reduce computes the next state for an action. It never mutates its input
// and performs no I/O; an unrecognized action returns the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case InitSession:
		next := s.clone()
		next.User = a.User
		if a.Cart != nil {
			next.Cart = append([]models.CartLine(nil), a.Cart...)
		} else {
			next.Cart = []models.CartLine{}
		}
		return next

	case AddToCart:
		next := s.clone()
		for i, line := range next.Cart {
			if line.ID == a.Product.ID {
				next.Cart[i].Qty = clampQty(line.Qty + a.Qty)
				return next
			}
		}
		next.Cart = append(next.Cart, models.CartLine{
			ID:    a.Product.ID,
			Name:  a.Product.Name,
			Price: a.Product.Price,
			Image: a.Product.Image,
			Qty:   clampQty(a.Qty),
		})
		return next

	case RemoveFromCart:
		next := s.clone()
		kept := next.Cart[:0]
		for _, line := range next.Cart {
			if line.ID != a.ID {
				kept = append(kept, line)
			}
		}
		next.Cart = kept
		return next

	case SetQty:
		next := s.clone()
		for i, line := range next.Cart {
			if line.ID == a.ID {
				next.Cart[i].Qty = clampQty(a.Qty)
			}
		}
		return next

	case ClearCart:
		next := s.clone()
		next.Cart = []models.CartLine{}
		return next

	case Login:
		next := s.clone()
		user := a.User
		next.User = &user
		return next

	case Logout:
		next := s.clone()
		next.User = nil
		return next

	default:
		return s
	}
}
