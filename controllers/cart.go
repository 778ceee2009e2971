package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"go-storefront/models"
	"go-storefront/store"
)

// CartController handles cart-related requests
type CartController struct {
	Store *store.Store
}

// NewCartController creates a new CartController
func NewCartController(st *store.Store) *CartController {
	return &CartController{Store: st}
}

// CartView is the cart together with its derived values.
type CartView struct {
	Items     []models.CartLine `json:"items"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

func (cc *CartController) writeCart(w http.ResponseWriter) {
	cart := cc.Store.State().Cart
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CartView{
		Items:     cart,
		Subtotal:  store.Subtotal(cart),
		ItemCount: store.CartItemCount(cart),
	})
}

// GetCart retrieves the cart with subtotal and item count
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.writeCart(w)
}

// AddToCart adds a catalog product to the cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	state := cc.Store.State()
	var product *models.Product
	for i := range state.Products {
		if state.Products[i].ID == req.ProductID {
			product = &state.Products[i]
			break
		}
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	cc.Store.Dispatch(store.AddToCart{Product: *product, Qty: req.Qty})
	cc.writeCart(w)
}

// SetQty sets the quantity of a cart line
func (cc *CartController) SetQty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	params := mux.Vars(r)
	cc.Store.Dispatch(store.SetQty{ID: params["product_id"], Qty: req.Qty})
	cc.writeCart(w)
}

// RemoveFromCart removes a line from the cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	cc.Store.Dispatch(store.RemoveFromCart{ID: params["product_id"]})
	cc.writeCart(w)
}

// ClearCart empties the cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.Store.Dispatch(store.ClearCart{})
	cc.writeCart(w)
}
