package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
	"resto-api/services"
)

func reservationService() services.ReservationService {
	return services.NewReservationService(config.DB, deps.Notifier, deps.Billing.RestaurantName)
}

// restaurantName prefers the operator-edited billing settings over the configured default.
func restaurantName(c *gin.Context) string {
	settings, err := services.NewBillingService(config.DB, deps.Billing).Get(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("billing settings unavailable, using configured restaurant name")
		return deps.Billing.RestaurantName
	}
	return settings.RestaurantName
}

func GetReservations(c *gin.Context) {
	var filter dtos.ReservationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := reservationService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func GetReservationByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	r, err := reservationService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// BookTable handles the booking dialog: one pending reservation, table marked reserved.
func BookTable(c *gin.Context) {
	var form dtos.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewReservationService(config.DB, deps.Notifier, restaurantName(c))
	res, err := svc.Book(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func UpdateReservationStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input dtos.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := reservationService().UpdateStatus(c.Request.Context(), id, models.ReservationStatus(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func DeleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := reservationService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
