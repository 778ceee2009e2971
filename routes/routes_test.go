package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-storefront/controllers"
	"go-storefront/models"
	"go-storefront/store"
)

func newTestRouter(t *testing.T) (*mux.Router, *store.Store) {
	t.Helper()
	st := store.New(models.SeedProducts())
	logger := zaptest.NewLogger(t)

	router := mux.NewRouter()
	RegisterRoutes(router,
		controllers.NewUserController(st, logger),
		controllers.NewProductController(st),
		controllers.NewCartController(st),
		controllers.NewCheckoutController(st, logger, time.Millisecond),
		controllers.NewAdminController(st),
	)
	return router, st
}

func login(t *testing.T, router *mux.Router, email string) string {
	t.Helper()
	body := `{"email":"` + email + `","password":"passw0rd"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestProfileRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileWithToken(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "a@shop.co")

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "a@shop.co", user.Email)
}

func TestAdminStateGatedByRole(t *testing.T) {
	router, st := newTestRouter(t)
	st.Dispatch(store.AddToCart{Product: st.State().Products[0], Qty: 2})

	customerToken := login(t, router, "a@shop.co")
	req := httptest.NewRequest("GET", "/admin/state", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, router, "a@admin.co")
	req = httptest.NewRequest("GET", "/admin/state", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var state struct {
		Products []models.Product  `json:"products"`
		Cart     []models.CartLine `json:"cart"`
		User     *models.User      `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Len(t, state.Products, 4)
	assert.Len(t, state.Cart, 1)
	require.NotNil(t, state.User)
	assert.Equal(t, models.RoleAdmin, state.User.Role)
}

func TestRegisterRouteExists(t *testing.T) {
	router, st := newTestRouter(t)

	body := `{"email":"new@shop.co","password":"passw0rd"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, st.State().User)
	assert.Equal(t, "new@shop.co", st.State().User.Email)
}
