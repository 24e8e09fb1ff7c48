package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
)

// GET /v1/products?search=&category=
func GetProducts(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), repository.ProductFilter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		})
		if err != nil {
			respond.Error(c, services.Internal("Failed to fetch products", err))
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
