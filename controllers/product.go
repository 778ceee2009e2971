package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/store"
)

// ProductController handles catalog-related requests. The catalog is
// immutable, so there are only reads.
type ProductController struct {
	Store *store.Store
}

// NewProductController creates a new ProductController
func NewProductController(st *store.Store) *ProductController {
	return &ProductController{Store: st}
}

// GetProducts retrieves all products
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	state := pc.Store.State()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state.Products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	state := pc.Store.State()
	for _, product := range state.Products {
		if product.ID == id {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(product)
			return
		}
	}

	http.Error(w, "Product not found", http.StatusNotFound)
}
