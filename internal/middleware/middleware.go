package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/amoakoh/coachdesk/internal/helpers"
	"github.com/amoakoh/coachdesk/internal/services"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			// Don't return error details in production
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}
	}
}

// AuthMiddleware validates the access token cookie against the Supabase JWKS,
// refreshing it once when expired, and loads the admin profile into the
// request context as enhanced claims.
func AuthMiddleware(adminService *services.AdminService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized access",
				"error":   "JWT token not found in cookie",
			})
			c.Abort()
			return
		}

		claims, err := helpers.ValidateToken(token)
		if err != nil {
			// Token validation failed, try to refresh
			refreshToken, refreshErr := c.Cookie("refresh_token")
			if refreshErr != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"message": "Unauthorized access",
					"error":   err.Error(),
				})
				c.Abort()
				return
			}

			refreshResponse, refreshErr := adminService.RefreshToken(refreshToken)
			if refreshErr != nil {
				logger.Error("Token refresh failed", "error", refreshErr)
				c.JSON(http.StatusUnauthorized, gin.H{
					"message": "Unauthorized access",
					"error":   "Token expired and refresh failed",
				})
				c.Abort()
				return
			}

			tokenRes, ok := refreshResponse.(*types.TokenResponse)
			if !ok || tokenRes.AccessToken == "" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"message": "Unauthorized access",
					"error":   "Invalid refresh response",
				})
				c.Abort()
				return
			}

			isProduction := os.Getenv("GIN_MODE") == "production"
			c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
			c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)

			token = tokenRes.AccessToken
			claims, err = helpers.ValidateToken(token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"message": "Unauthorized access",
					"error":   "Refreshed token validation failed",
				})
				c.Abort()
				return
			}
		}

		// Fetch the admin profile for the role; unknown subjects fall back to
		// guest and get rejected by RequireAdmin.
		var profileRole, fullname string
		var createdAt string
		adminID, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil {
			logger.Error("Invalid admin ID in token", "admin_id", claims.Subject, "error", parseErr)
			profileRole = "guest"
		} else {
			admin, err := adminService.GetAdmin(adminID, token)
			if err != nil {
				logger.Info("Admin profile not found, using guest role",
					"admin_id", claims.Subject,
					"error", err,
				)
				profileRole = "guest"
			} else {
				profileRole = admin.Role
				if profileRole == "" {
					profileRole = "guest"
				}
				fullname = admin.FullName
				createdAt = admin.CreatedAt.Format(time.RFC3339)
			}
		}

		enhancedClaims := &helpers.EnhancedClaims{
			CustomClaims: claims,
			Role:         profileRole,
			UserID:       claims.Subject,
			Email:        claims.Email,
			Fullname:     fullname,
			CreatedAt:    createdAt,
		}

		c.Set("user", enhancedClaims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose claims do not carry the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claims, ok := userClaims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user claims"})
			c.Abort()
			return
		}

		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
