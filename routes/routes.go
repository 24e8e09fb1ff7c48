package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/auth"
	orderControllers "github.com/mohanishp9/QKart-Backend/controllers/order"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
)

// Deps is everything the handlers need.
type Deps struct {
	Accounts    *services.AccountService
	Carts       *services.CartService
	Products    *repository.ProductRepository
	Tokens      *auth.TokenIssuer
	Checkouts   *orderControllers.Hub
	AdminAPIKey string
}

// SetupRoutes is the single entry point that wires up the auth, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")

	SetupAuthRoutes(v1, d)
	SetupUserRoutes(v1, d)
	SetupAdminRoutes(r, d)
}
