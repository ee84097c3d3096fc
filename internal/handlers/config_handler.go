package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/services"
)

func GetConfigValue(s *services.SystemConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := s.Get(c.Request.Context(), c.Param("key"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, helpers.ErrorResponse("config key not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(cfg, ""))
	}
}

func SetConfigValue(s *services.SystemConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Value string `json:"value" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		cfg, err := s.Set(c.Request.Context(), c.Param("key"), req.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(cfg, "config value saved"))
	}
}
