package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/hearhut/storefront-api/orders"
)

// GET /admin/orders/:email/export
func ExportOrdersToExcel(archive *orders.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		key := "orders_" + email
		if email == "guest" {
			key = orders.GuestKey
		}
		list := archive.List(key)

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Date", "Customer", "Email", "Phone",
			"City", "Country", "ShippingMethod", "Lines", "Units", "Total",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range list {
			units := 0
			for _, it := range o.Items {
				units += it.Quantity
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Form.FirstName + " " + o.Form.LastName)
			row.AddCell().SetValue(o.Form.Email)
			row.AddCell().SetValue(o.Form.Phone)
			row.AddCell().SetValue(o.Form.City)
			row.AddCell().SetValue(o.Form.Country)
			row.AddCell().SetValue(o.Form.ShippingMethod)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(units)
			row.AddCell().SetValue(o.Total)
		}

		c.Header("Content-Disposition", "attachment; filename=orders_"+email+".xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
