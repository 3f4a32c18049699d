package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/services"
)

func SubmitFeedback(c *gin.Context) {
	var input dtos.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := services.NewFeedbackService(config.DB).Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

func GetFeedback(c *gin.Context) {
	list, err := services.NewFeedbackService(config.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func DeleteFeedback(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := services.NewFeedbackService(config.DB).Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
