package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/services"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// POST /admin/products/import-excel
//
// Rows follow the export layout. A row with an id overwrites that product,
// a row without one creates a new product. Rows that do not parse are
// skipped.
func ImportProductsFromExcel(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			respond.Message(c, http.StatusBadRequest, "Excel file is required")
			return
		}

		file, err := header.Open()
		if err != nil {
			respond.Error(c, services.Internal("Failed to open Excel file", err))
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, header.Size)
		if err != nil {
			respond.Message(c, http.StatusBadRequest, "Failed to parse Excel file")
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			respond.Message(c, http.StatusBadRequest, "Excel file is empty or missing header row")
			return
		}

		parsed, skipped := parseProductRows(xlFile.Sheets[0])
		if err := products.Upsert(c.Request.Context(), parsed); err != nil {
			respond.Error(c, services.Internal("Failed to import products", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Import completed",
			"imported_count": len(parsed),
			"skipped_count":  skipped,
		})
	}
}

func parseProductRows(sheet *xlsx.Sheet) ([]models.Product, int) {
	var out []models.Product
	skipped := 0

	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		name := get(1)
		cost, err := decimal.NewFromString(get(3))
		if name == "" || err != nil || cost.IsNegative() {
			skipped++
			continue
		}
		rating, _ := strconv.Atoi(get(4))

		out = append(out, models.Product{
			ID:       get(0),
			Name:     name,
			Category: get(2),
			Cost:     cost,
			Rating:   rating,
			Image:    get(5),
		})
	}
	return out, skipped
}
