package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
	"github.com/tealeg/xlsx"
)

var excelHeaders = []string{"ID", "Name", "Category", "Cost", "Rating", "Image", "CreatedAt", "UpdatedAt"}

// GET /admin/products/export-excel
func ExportProductsToExcel(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), repository.ProductFilter{})
		if err != nil {
			respond.Error(c, services.Internal("Failed to fetch products", err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			respond.Error(c, services.Internal("Failed to create Excel sheet", err))
			return
		}

		header := sheet.AddRow()
		for _, h := range excelHeaders {
			header.AddCell().SetString(h)
		}

		for _, p := range list {
			row := sheet.AddRow()
			row.AddCell().SetString(p.ID)
			row.AddCell().SetString(p.Name)
			row.AddCell().SetString(p.Category)
			row.AddCell().SetString(p.Cost.StringFixed(2))
			row.AddCell().SetInt(p.Rating)
			row.AddCell().SetString(p.Image)
			row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetString(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			_ = c.Error(err)
		}
	}
}
