package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/middleware"
	"github.com/mohanishp9/QKart-Backend/services"
)

// CartItemInput is the POST body. New items need a positive quantity.
type CartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required,min=1"`
}

// CartItemUpdateInput is the PUT body. A quantity of zero or less removes
// the item.
type CartItemUpdateInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

func bindItem(c *gin.Context, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		respond.Message(c, http.StatusBadRequest, "\"productId\" and \"quantity\" are required; \"quantity\" must be at least 1 when adding")
		return false
	}
	return true
}

// GET /v1/cart
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.GetCartByUser(c.Request.Context(), middleware.CurrentUser(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /v1/cart
func AddProduct(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if !bindItem(c, &input) {
			return
		}

		cart, err := carts.AddProductToCart(c.Request.Context(), middleware.CurrentUser(c), input.ProductID, *input.Quantity)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /v1/cart
func UpdateProduct(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemUpdateInput
		if !bindItem(c, &input) {
			return
		}

		result, err := carts.UpdateProductInCart(c.Request.Context(), middleware.CurrentUser(c), input.ProductID, *input.Quantity)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if result.Removed() {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, result.Cart)
	}
}

// DELETE /v1/cart/:productId
func DeleteProduct(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.DeleteProductFromCart(c.Request.Context(), middleware.CurrentUser(c), c.Param("productId"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /v1/cart/checkout
func Checkout(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := carts.Checkout(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
			respond.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /admin/user-cart/:email
func GetUserCartByEmail(accounts *services.AccountService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.GetUserByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			respond.Error(c, err)
			return
		}

		cart, err := carts.GetCartByUser(c.Request.Context(), user)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
