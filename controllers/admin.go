package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/models"
	"go-storefront/store"
)

// AdminController exposes read-only views for admin users. The catalog is
// immutable, so there are no admin mutations.
type AdminController struct {
	Store *store.Store
}

// NewAdminController creates a new AdminController
func NewAdminController(st *store.Store) *AdminController {
	return &AdminController{Store: st}
}

// GetState returns a full snapshot of the store state
func (ac *AdminController) GetState(w http.ResponseWriter, r *http.Request) {
	state := ac.Store.State()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Products []models.Product  `json:"products"`
		Cart     []models.CartLine `json:"cart"`
		User     *models.User      `json:"user"`
	}{state.Products, state.Cart, state.User})
}
