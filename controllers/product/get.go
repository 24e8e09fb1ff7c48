package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
)

const msgProductNotFound = "Product not found"

// GET /v1/products/:productId
func GetProductByID(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.FindByID(c.Request.Context(), c.Param("productId"))
		if err != nil {
			respond.Error(c, services.Internal(services.MsgFetchProductFailed, err))
			return
		}
		if product == nil {
			respond.Error(c, services.NotFound(msgProductNotFound))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
