package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
)

// UserController handles the mock authentication flow. There is no
// credential store: the password digest only serves as a stable
// pseudo-identifier, and the role comes from the email address.
type UserController struct {
	Store  *store.Store
	Logger *zap.Logger
}

// NewUserController creates a new UserController
func NewUserController(st *store.Store, logger *zap.Logger) *UserController {
	return &UserController{Store: st, Logger: logger}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs the user in. Register shares this handler; the demo flow is
// identical in both modes.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	fieldErrors := map[string]string{}
	if !utils.ValidateEmail(creds.Email) {
		fieldErrors["email"] = "Enter a valid email address"
	}
	if !utils.ValidatePassword(creds.Password) {
		fieldErrors["password"] = "Password must be 8+ chars with letters and numbers"
	}
	if len(fieldErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"errors": fieldErrors})
		return
	}

	digest, err := utils.DigestPassword(creds.Password)
	if err != nil {
		// Generic failure, no partial state committed.
		uc.Logger.Warn("password digest failed", zap.Error(err))
		http.Error(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	user := models.User{
		ID:    utils.PseudoID(digest),
		Email: creds.Email,
		Role:  utils.DeriveRole(creds.Email),
	}

	token, err := utils.GenerateJWT(user.Email, string(user.Role))
	if err != nil {
		uc.Logger.Warn("token generation failed", zap.Error(err))
		http.Error(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	uc.Store.Dispatch(store.Login{User: user})
	uc.Logger.Info("user logged in", zap.String("email", user.Email), zap.String("role", string(user.Role)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout signs the user out. The cart is untouched.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	uc.Store.Dispatch(store.Logout{})
	json.NewEncoder(w).Encode("Logged out")
}

// GetProfile returns the active session user
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	state := uc.Store.State()
	if state.User == nil {
		http.Error(w, "No active session", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state.User)
}
