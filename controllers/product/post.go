package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
	"github.com/shopspring/decimal"
)

type ProductInput struct {
	Name     string           `json:"name" binding:"required"`
	Category string           `json:"category" binding:"required"`
	Cost     *decimal.Decimal `json:"cost" binding:"required"`
	Rating   int              `json:"rating" binding:"min=0,max=5"`
	Image    string           `json:"image"`
}

func bindProduct(c *gin.Context) (ProductInput, bool) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Message(c, http.StatusBadRequest, "Invalid product: "+err.Error())
		return input, false
	}
	if input.Cost.IsNegative() {
		respond.Message(c, http.StatusBadRequest, "Invalid product: cost must not be negative")
		return input, false
	}
	return input, true
}

func (in ProductInput) apply(p *models.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.Category = strings.TrimSpace(in.Category)
	p.Cost = *in.Cost
	p.Rating = in.Rating
	p.Image = in.Image
}

// POST /admin/products
func CreateProduct(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := bindProduct(c)
		if !ok {
			return
		}

		var product models.Product
		input.apply(&product)
		created, err := products.Create(c.Request.Context(), &product)
		if err != nil {
			respond.Error(c, services.Internal("Failed to create product", err))
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
