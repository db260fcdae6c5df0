package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services/bookingsvc"
)

type BookingController struct {
	Svc *bookingsvc.Service
}

func (bc *BookingController) Create(c *gin.Context) {
	var input bookingsvc.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided for booking creation"})
		return
	}

	actor := middleware.CurrentIdentity(c)
	booking, err := bc.Svc.Create(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"data":    booking,
	})
}

func (bc *BookingController) List(c *gin.Context) {
	actor := middleware.CurrentIdentity(c)
	bookings, err := bc.Svc.ListForRole(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Your bookings retrieved successfully"
	if actor.IsAdmin() {
		message = "Bookings retrieved successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "data": bookings})
}

func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided for update"})
		return
	}

	actor := middleware.CurrentIdentity(c)
	booking, err := bc.Svc.UpdateStatus(c.Request.Context(), actor, id, models.BookingStatus(body.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Booking cancelled successfully"
	if booking.Status == models.BookingReturned {
		message = "Booking marked as returned. Vehicle is now available"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "data": booking})
}
