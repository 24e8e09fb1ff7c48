package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
)

// DELETE /admin/products/:productId
func DeleteProduct(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := products.Delete(c.Request.Context(), c.Param("productId"))
		if err != nil {
			respond.Error(c, services.Internal("Failed to delete product", err))
			return
		}
		if !deleted {
			respond.Error(c, services.NotFound(msgProductNotFound))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
