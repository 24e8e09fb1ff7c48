package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/auth"
	orderControllers "github.com/mohanishp9/QKart-Backend/controllers/order"
	"github.com/mohanishp9/QKart-Backend/database"
	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testAPIKey = "admin-key"

type testApp struct {
	t        *testing.T
	router   *gin.Engine
	products *repository.ProductRepository
	users    *repository.UserRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	users := repository.NewUserRepository(db)
	products := repository.NewProductRepository(db)
	accounts := services.NewAccountService(users, services.NewBcryptHasher(bcrypt.MinCost), nil)
	carts := services.NewCartService(repository.NewCartRepository(db), products, repository.NewTxRunner(db), nil)

	r := NewRouter(zap.NewNop(), Deps{
		Accounts:    accounts,
		Carts:       carts,
		Products:    products,
		Tokens:      auth.NewTokenIssuer("test-secret", time.Hour),
		Checkouts:   orderControllers.NewHub(nil),
		AdminAPIKey: testAPIKey,
	})
	return &testApp{t: t, router: r, products: products, users: users}
}

func (a *testApp) do(method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its id and access token.
func (a *testApp) register(email string) (string, string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/v1/auth/register", "", gin.H{
		"name":     "Jane",
		"email":    email,
		"password": "password1",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User   models.User `json:"user"`
		Tokens auth.Tokens `json:"tokens"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User.ID, resp.Tokens.Access.Token
}

func (a *testApp) product(name string, cost int64) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/admin/products", "", gin.H{
		"name":     name,
		"category": "Kitchen",
		"cost":     cost,
		"rating":   4,
	}, "X-API-KEY", testAPIKey)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var p models.Product
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &p))
	return p.ID
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	assert.Equal(t, w.Code, body.Code)
	return body.Message
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	w := app.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)
	app.register("jane@example.com")

	w := app.do(http.MethodPost, "/v1/auth/register", "", gin.H{
		"name": "Jane", "email": "jane@example.com", "password": "password1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgEmailTaken, errorMessage(t, w))

	w = app.do(http.MethodPost, "/v1/auth/login", "", gin.H{"email": "jane@example.com", "password": "password1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"walletMoney":500`)
	assert.NotContains(t, w.Body.String(), "password1")

	w = app.do(http.MethodPost, "/v1/auth/login", "", gin.H{"email": "jane@example.com", "password": "nope12345"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, services.MsgBadCredentials, errorMessage(t, w))
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Please authenticate", errorMessage(t, w))

	w = app.do(http.MethodGet, "/v1/cart", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(http.MethodPost, "/admin/products", "", gin.H{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRoutes(t *testing.T) {
	app := newTestApp(t)
	id, token := app.register("jane@example.com")
	otherID, _ := app.register("john@example.com")

	w := app.do(http.MethodGet, "/v1/users/"+otherID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, services.MsgForbiddenUser, errorMessage(t, w))

	w = app.do(http.MethodGet, "/v1/users/"+id+"?q=address", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"address":"ADDRESS_NOT_SET"}`, w.Body.String())

	w = app.do(http.MethodPut, "/v1/users/"+id, token, gin.H{"address": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPut, "/v1/users/"+id, token, gin.H{"address": "42 Wallaby Way, Sydney, Australia"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42 Wallaby Way")
}

func TestCartRoutes(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register("jane@example.com")
	mug := app.product("Mug", 20)
	tea := app.product("Tea", 15)

	w := app.do(http.MethodGet, "/v1/cart", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, services.MsgNoCart, errorMessage(t, w))

	w = app.do(http.MethodPut, "/v1/cart", token, gin.H{"productId": mug, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgNoCartUsePost, errorMessage(t, w))

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": mug, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": mug, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgProductAlreadyInCart, errorMessage(t, w))

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": "missing", "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgProductNotInDatabase, errorMessage(t, w))

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": tea})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, qty := range []int{0, -3} {
		w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": tea, "quantity": qty})
		assert.Equal(t, http.StatusBadRequest, w.Code, "quantity %d", qty)
	}

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": tea, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodPut, "/v1/cart", token, gin.H{"productId": mug, "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.CartItems, 2)
	assert.Equal(t, 3, cart.CartItems[0].Quantity)

	w = app.do(http.MethodPut, "/v1/cart", token, gin.H{"productId": tea, "quantity": 0})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodDelete, "/v1/cart/"+tea, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgProductNotInCart, errorMessage(t, w))

	w = app.do(http.MethodDelete, "/v1/cart/"+mug, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cartItems":[]`)

	w = app.do(http.MethodGet, "/admin/user-cart/jane@example.com", "", nil, "X-API-KEY", testAPIKey)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutRoute(t *testing.T) {
	app := newTestApp(t)
	id, token := app.register("jane@example.com")
	mug := app.product("Mug", 200)
	tea := app.product("Tea", 150)

	w := app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": mug, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodPut, "/v1/cart/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgAddressNotSet, errorMessage(t, w))

	w = app.do(http.MethodPut, "/v1/users/"+id, token, gin.H{"address": "42 Wallaby Way, Sydney, Australia"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": tea, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodPut, "/v1/cart/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgInsufficientBalance, errorMessage(t, w))

	w = app.do(http.MethodPut, "/v1/cart", token, gin.H{"productId": tea, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodPut, "/v1/cart/checkout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	user, err := app.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, user.WalletMoney.Equal(decimal.Zero), "wallet is %s", user.WalletMoney)

	w = app.do(http.MethodPut, "/v1/cart/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.MsgCartEmpty, errorMessage(t, w))
}

func TestNegativeQuantityCannotCreditWallet(t *testing.T) {
	app := newTestApp(t)
	id, token := app.register("jane@example.com")
	tea := app.product("Tea", 15)

	w := app.do(http.MethodPut, "/v1/users/"+id, token, gin.H{"address": "42 Wallaby Way, Sydney, Australia"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodPost, "/v1/cart", token, gin.H{"productId": tea, "quantity": -3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPut, "/v1/cart/checkout", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, services.MsgNoCart, errorMessage(t, w))

	user, err := app.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, user.WalletMoney.Equal(decimal.NewFromInt(500)), "wallet is %s", user.WalletMoney)
}

func TestProductRoutes(t *testing.T) {
	app := newTestApp(t)
	mug := app.product("Mug", 20)
	app.product("Teapot", 30)

	w := app.do(http.MethodGet, "/v1/products?search=tea", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Teapot", list[0].Name)

	w = app.do(http.MethodGet, "/v1/products/"+mug, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/v1/products/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", errorMessage(t, w))

	w = app.do(http.MethodPost, "/admin/products", "", gin.H{"name": "Bad", "category": "x", "cost": -1}, "X-API-KEY", testAPIKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPut, "/admin/products/"+mug, "", gin.H{"name": "Big Mug", "category": "Kitchen", "cost": 25}, "X-API-KEY", testAPIKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cost":25`)

	w = app.do(http.MethodDelete, "/admin/products/"+mug, "", nil, "X-API-KEY", testAPIKey)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodDelete, "/admin/products/"+mug, "", nil, "X-API-KEY", testAPIKey)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExcelExport(t *testing.T) {
	app := newTestApp(t)
	app.product("Mug", 20)

	w := app.do(http.MethodGet, "/admin/products/export-excel", "", nil, "X-API-KEY", testAPIKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
