package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/services"
)

func GetInventory(c *gin.Context) {
	var filter dtos.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := services.NewInventoryService(config.DB).List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func GetInventoryItemByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := services.NewInventoryService(config.DB).Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateInventoryItem(c *gin.Context) {
	var input dtos.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.NewInventoryService(config.DB).Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateInventoryItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input dtos.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.NewInventoryService(config.DB).Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateInventoryStock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input dtos.StockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.NewInventoryService(config.DB).UpdateStock(c.Request.Context(), id, *input.CurrentStock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteInventoryItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := services.NewInventoryService(config.DB).Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
