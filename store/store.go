package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"go-storefront/models"
)

// Listener observes the state after each transition. Listeners receive a
// snapshot and run synchronously after the dispatch that produced it.
type Listener func(State)

// Store is the single source of truth for catalog, cart, and user. All
// mutation goes through Dispatch; readers get snapshot copies, so no
// partial update is ever visible.
type Store struct {
	// dispatchMu serializes reduce-and-notify as one unit, so listeners
	// observe transitions in dispatch order. mu only guards the fields.
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      State
	listeners  []Listener
}

// New creates a store seeded with the given catalog, an empty cart, and no
// active user.
func New(products []models.Product) *Store {
	return &Store{
		state: State{
			Products: products,
			Cart:     []models.CartLine{},
			User:     nil,
		},
	}
}

// Dispatch runs the reducer for the action and notifies subscribers with
// the resulting snapshot. Dispatches are serialized including the
// notification: each runs to completion before the next begins, so
// listeners see snapshots in transition order. Listeners must not
// dispatch from within the callback.
func (s *Store) Dispatch(a Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	snapshot := s.state.clone()
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// Subscribe registers a listener for future state transitions.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subtotal returns the exact sum of price x qty over the cart lines.
func Subtotal(cart []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range cart {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return total
}

// CartItemCount returns the sum of quantities across cart lines, not the
// number of distinct lines.
func CartItemCount(cart []models.CartLine) int {
	n := 0
	for _, line := range cart {
		n += line.Qty
	}
	return n
}

// Subtotal returns the subtotal of the current cart.
func (s *Store) Subtotal() decimal.Decimal {
	return Subtotal(s.State().Cart)
}

// CartItemCount returns the item count of the current cart.
func (s *Store) CartItemCount() int {
	return CartItemCount(s.State().Cart)
}
