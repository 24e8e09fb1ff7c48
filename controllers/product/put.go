package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
)

// PUT /admin/products/:productId
//
// Existing cart entries keep the snapshot taken when they were added.
func UpdateProduct(products *repository.ProductRepository) gin.HandlerFunc {
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

		input, ok := bindProduct(c)
		if !ok {
			return
		}
		input.apply(product)

		saved, err := products.Save(c.Request.Context(), product)
		if err != nil {
			respond.Error(c, services.Internal("Failed to update product", err))
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
