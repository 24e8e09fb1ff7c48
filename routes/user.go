package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/mohanishp9/QKart-Backend/controllers/cart"
	productcontroller "github.com/mohanishp9/QKart-Backend/controllers/product"
	userControllers "github.com/mohanishp9/QKart-Backend/controllers/user"
	"github.com/mohanishp9/QKart-Backend/middleware"
)

// SetupUserRoutes registers the customer facing endpoints. Products are
// public, users and cart require a token.
func SetupUserRoutes(v1 *gin.RouterGroup, d Deps) {
	products := v1.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.Products))
		products.GET("/:productId", productcontroller.GetProductByID(d.Products))
	}

	authed := v1.Group("")
	authed.Use(middleware.ValidateToken(d.Tokens, d.Accounts))

	users := authed.Group("/users")
	{
		users.GET("/:userId", userControllers.GetUser(d.Accounts))
		users.PUT("/:userId", userControllers.UpdateUser(d.Accounts))
	}

	cart := authed.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart(d.Carts))
		cart.POST("", cartControllers.AddProduct(d.Carts))
		cart.PUT("", cartControllers.UpdateProduct(d.Carts))
		cart.PUT("/checkout", cartControllers.Checkout(d.Carts))
		cart.DELETE("/:productId", cartControllers.DeleteProduct(d.Carts))
	}
}
