package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/services"
)

func CreateServiceHandler(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := cs.CreateService(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "Service created successfully"))
	}
}

func ListServices(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offsetInt, limitInt, ok := pagination(c)
		if !ok {
			return
		}

		servicesList, total, err := cs.ListServices(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(servicesList, page, limitInt, total))
	}
}

// GetServiceByID returns the service with its availability slots and session
// bookings embedded.
func GetServiceByID(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceId, ok := serviceID(c)
		if !ok {
			return
		}

		service, err := cs.GetService(c.Request.Context(), serviceId)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("service not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(service, ""))
	}
}

func UpdateService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceId, ok := serviceID(c)
		if !ok {
			return
		}

		var input models.ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := cs.UpdateService(c.Request.Context(), serviceId, &input)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("service not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "Service updated successfully"))
	}
}

func DeleteService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceId, ok := serviceID(c)
		if !ok {
			return
		}

		if err := cs.DeleteService(c.Request.Context(), serviceId); err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("service not found"))
			case errors.Is(err, models.ErrConflict):
				c.JSON(http.StatusConflict, helpers.ErrorResponse(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func serviceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid service ID format"))
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int, bool) {
	limit := c.DefaultQuery("limit", "10")
	offset := c.DefaultQuery("offset", "0")
	limitInt, err := strconv.Atoi(limit)
	if err != nil || limitInt <= 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offsetInt, err := strconv.Atoi(offset)
	if err != nil || offsetInt < 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offsetInt, limitInt, true
}
