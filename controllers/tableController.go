package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
	"resto-api/services"
)

func GetTables(c *gin.Context) {
	tables, err := services.NewTableService(config.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tables})
}

func GetTableByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	table, err := services.NewTableService(config.DB).Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func CreateTable(c *gin.Context) {
	var input dtos.TableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := services.NewTableService(config.DB).Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func UpdateTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input dtos.TableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := services.NewTableService(config.DB).Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func UpdateTableStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input dtos.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := services.NewTableService(config.DB).UpdateStatus(c.Request.Context(), id, models.TableStatus(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func DeleteTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := services.NewTableService(config.DB).Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}
