package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/services"
)

func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offsetInt, limitInt, ok := pagination(c)
		if !ok {
			return
		}

		bookings, total, err := b.ListBookings(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(bookings, page, limitInt, total))
	}
}

func GetBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid booking ID format"))
			return
		}

		booking, err := b.GetBooking(c.Request.Context(), bookingId)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("booking not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(booking, ""))
	}
}

func ConfirmBookingPayment(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid booking ID format"))
			return
		}

		var input models.ConfirmPaymentInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
				return
			}
		}

		booking, err := b.ConfirmPayment(c.Request.Context(), bookingId, input)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{
					"success": false,
					"message": "booking not found",
				})
			case errors.Is(err, models.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{
					"success": false,
					"message": "booking was modified concurrently, retry the confirmation",
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": err.Error(),
				})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"booking": booking,
			"message": "payment confirmed",
		})
	}
}
