package searchControllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Nivedika-2001/Furlenco-backend/httperr"
	"github.com/Nivedika-2001/Furlenco-backend/services/catalog"
)

// GET /search/exportProducts
// Streams the full catalog as an .xlsx attachment.
func ExportProductsToExcel(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httperr.Render(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			httperr.Render(c, err)
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ProductID", "Name", "Type", "Price", "AvailableStock", "URL"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ProductID)
			row.AddCell().SetValue(p.ProductName)
			row.AddCell().SetValue(p.ProductType)
			row.AddCell().SetValue(p.ProductPrice)
			row.AddCell().SetValue(p.AvailableStock)
			row.AddCell().SetValue(p.ProductURL)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			httperr.Render(c, err)
			return
		}
	}
}
