package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/services"
)

func CreateAdmin(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admin models.AdminUser
		if err := c.ShouldBindJSON(&admin); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		createdAdmin, err := a.CreateAdmin(&admin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, createdAdmin)
	}
}

func AuthenticateAdmin(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		authResponse, err := a.AuthenticateAdmin(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "message": "invalid email or password"})
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"

		if tokenRes, ok := authResponse.(*types.TokenResponse); ok && tokenRes.AccessToken != "" {
			c.SetCookie(
				"access_token",
				tokenRes.AccessToken,
				tokenRes.ExpiresIn,
				"/",
				"", // let Gin pick current domain
				isProduction,
				true,
			)

			// Refresh token - expires in 30 days
			c.SetCookie(
				"refresh_token",
				tokenRes.RefreshToken,
				3600*24*30,
				"/",
				"",
				isProduction,
				true,
			)

			// Return user info but not tokens
			c.JSON(http.StatusOK, gin.H{
				"user": tokenRes.User,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid token response"})
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}
