package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func GetSales(c *gin.Context) {
	var filter dtos.SalesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := services.NewSalesService(config.DB).List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func GetSaleByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	record, err := services.NewSalesService(config.DB).Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func ExportSales(c *gin.Context) {
	var filter dtos.SalesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := services.NewSalesService(config.DB).Export(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	name := filter.Date
	if name == "" {
		name = time.Now().Format(dtos.DateLayout)
	}
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="sales-%s.xlsx"`, name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
