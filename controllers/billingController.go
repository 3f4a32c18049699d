package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/services"
)

func GetBillingSettings(c *gin.Context) {
	settings, err := services.NewBillingService(config.DB, deps.Billing).Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdateBillingSettings(c *gin.Context) {
	var input dtos.BillingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.NewBillingService(config.DB, deps.Billing).Update(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
