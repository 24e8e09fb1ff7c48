package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/mohanishp9/QKart-Backend/controllers/cart"
	productcontroller "github.com/mohanishp9/QKart-Backend/controllers/product"
	"github.com/mohanishp9/QKart-Backend/middleware"
)

// SetupAdminRoutes registers the /admin endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.AdminAPIKey))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(d.Products))
			productAdmin.POST("", productcontroller.CreateProduct(d.Products))
			productAdmin.PUT("/:productId", productcontroller.UpdateProduct(d.Products))
			productAdmin.DELETE("/:productId", productcontroller.DeleteProduct(d.Products))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(d.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Products))
		}

		adminGroup.GET("/user-cart/:email", cartControllers.GetUserCartByEmail(d.Accounts, d.Carts))

		if d.Checkouts != nil {
			adminGroup.GET("/ws/checkouts", d.Checkouts.Handler)
		}
	}
}
