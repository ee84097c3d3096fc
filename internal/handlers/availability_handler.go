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

func CheckSlotAvailability(a *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slotId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid slot ID format"))
			return
		}

		result, err := a.CheckSlot(c.Request.Context(), slotId)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{
					"available": false,
					"error":     "slot not found",
				})
			case errors.Is(err, services.ErrSlotUnscheduled):
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"available": false,
					"error":     err.Error(),
				})
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func SetSlotBlock(a *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slotId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid slot ID format"))
			return
		}

		var req struct {
			Block  bool   `json:"block"`
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		claims, ok := adminClaims(c)
		if !ok {
			return
		}

		adminId, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("invalid admin ID in token"))
			return
		}

		slot, err := a.SetBlock(c.Request.Context(), slotId, adminId, req.Block, req.Reason)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("slot not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"slot":    slot,
		})
	}
}

// adminClaims pulls the enhanced claims placed by the auth middleware and
// writes the 401 itself when they are missing or malformed.
func adminClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
		return nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid user claims"))
		return nil, false
	}

	return claims, true
}
