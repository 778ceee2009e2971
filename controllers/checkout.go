package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
)

// CheckoutController handles the simulated checkout. No real transaction
// happens: after a fixed artificial delay the cart is cleared and a
// receipt is returned.
type CheckoutController struct {
	Store  *store.Store
	Logger *zap.Logger
	Delay  time.Duration
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(st *store.Store, logger *zap.Logger, delay time.Duration) *CheckoutController {
	return &CheckoutController{Store: st, Logger: logger, Delay: delay}
}

func validateCheckoutForm(form models.CheckoutForm) map[string]string {
	errs := map[string]string{}
	if !utils.ValidateRequired(form.Name) {
		errs["name"] = "Name is required"
	}
	if !utils.ValidateEmail(form.Email) {
		errs["email"] = "Enter a valid email"
	}
	if !utils.ValidateRequired(form.Address) {
		errs["address"] = "Address is required"
	}
	if !utils.ValidateRequired(form.City) {
		errs["city"] = "City is required"
	}
	if !utils.ValidateRequired(form.Postal) {
		errs["postal"] = "Postal code is required"
	}
	if form.PaymentMethod != models.PaymentStripe && form.PaymentMethod != models.PaymentPaypal {
		errs["payment_method"] = "Choose a payment method"
	}
	return errs
}

// Checkout validates the form, simulates payment processing, clears the
// cart, and returns a receipt.
func (cc *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	var form models.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if fieldErrors := validateCheckoutForm(form); len(fieldErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"errors": fieldErrors})
		return
	}

	cart := cc.Store.State().Cart
	if len(cart) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	// Simulated processing; in a real shop this would create a payment
	// session with the chosen provider. Not cancellable once started: the
	// cart is cleared even if the client goes away mid-delay.
	time.Sleep(cc.Delay)

	receipt := models.Receipt{
		OrderID:   uuid.NewString(),
		Total:     store.Subtotal(cart),
		ItemCount: store.CartItemCount(cart),
	}
	cc.Store.Dispatch(store.ClearCart{})
	cc.Logger.Info("checkout completed",
		zap.String("order_id", receipt.OrderID),
		zap.String("total", receipt.Total.String()),
		zap.String("payment_method", form.PaymentMethod))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(receipt)
}
