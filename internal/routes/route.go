package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amoakoh/coachdesk/internal/container"
	"github.com/amoakoh/coachdesk/internal/handlers"
	"github.com/amoakoh/coachdesk/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "coachdesk-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.CreateAdmin(container.AdminService))
		v1.POST("/login", handlers.AuthenticateAdmin(container.AdminService))
		v1.POST("/logout", handlers.Logout())

		// Public storefront reads
		v1.GET("/books", handlers.ListBooks(container.BookService))
		v1.GET("/services", handlers.ListServices(container.CatalogService))
		v1.GET("/availability/:id/check", handlers.CheckSlotAvailability(container.AvailabilityService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.AdminService, container.Logger))
	protected.Use(middleware.RequireAdmin())

	availabilityRoutes := protected.Group("/availability")
	{
		availabilityRoutes.PATCH("/:id/block", handlers.SetSlotBlock(container.AvailabilityService))
		availabilityRoutes.POST("/:id/block", handlers.SetSlotBlock(container.AvailabilityService))
	}

	bookRoutes := protected.Group("/books")
	{
		bookRoutes.POST("/", handlers.CreateBook(container.BookService))
		bookRoutes.GET("/:id", handlers.GetBook(container.BookService))
		bookRoutes.PUT("/:id", handlers.UpdateBook(container.BookService))
		bookRoutes.DELETE("/:id", handlers.DeleteBook(container.BookService))
	}

	serviceRoutes := protected.Group("/services")
	{
		serviceRoutes.POST("/", handlers.CreateServiceHandler(container.CatalogService))
		serviceRoutes.GET("/:id", handlers.GetServiceByID(container.CatalogService))
		serviceRoutes.PUT("/:id", handlers.UpdateService(container.CatalogService))
		serviceRoutes.DELETE("/:id", handlers.DeleteService(container.CatalogService))
	}

	bookingRoutes := protected.Group("/session-bookings")
	{
		bookingRoutes.GET("/", handlers.ListBookings(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.POST("/:id/confirm-payment", handlers.ConfirmBookingPayment(container.BookingService))
	}

	uploadRoutes := protected.Group("/uploads")
	{
		uploadRoutes.POST("/payment-proof", handlers.UploadPaymentProof(container.UploadService))
		uploadRoutes.DELETE("/payment-proof", handlers.DeletePaymentProof(container.UploadService))
	}

	configRoutes := protected.Group("/config")
	{
		configRoutes.GET("/:key", handlers.GetConfigValue(container.ConfigService))
		configRoutes.PUT("/:key", handlers.SetConfigValue(container.ConfigService))
	}

	return r
}
