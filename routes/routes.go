package routes

import (
	"net/http"
	"time"

	"scarlet/handlers"
	"scarlet/middleware"
	"scarlet/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers profile account endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.POST("/register", hb.RegisterProfileHandler)
		api.POST("/login", hb.AuthenticateProfileHandler)

		// Public profile view.
		api.GET("/id/:id", hb.GetProfileByIDHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		protected.GET("/me", hb.GetOwnProfileHandler)
		protected.PATCH("/me", hb.UpdateProfileHandler)
		protected.DELETE("/me", hb.DeleteProfileHandler)
		protected.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
		protected.GET("/me/wizard", hb.GetWizardStateHandler)
		protected.PUT("/me/wizard", hb.SaveWizardStepHandler)
	}
}

// RegisterListingRoutes registers the public browse endpoint.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.BrowseListingsHandler)
	}
}

// RegisterLocationRoutes registers the location directory endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locations")
	{
		api.GET("/regions", hb.GetRegionsHandler)
		api.GET("/resolve/:segment", hb.ResolveLocationHandler)
		api.GET("/:region/counties", hb.GetCountiesHandler)
		api.GET("/:region/:county/towns", hb.GetTownsHandler)
	}
}

// RegisterBookingRoutes sets up the booking inbox endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.GET("/sent", hb.GetSentBookingsHandler)
		bookingGroup.GET("/received", hb.GetReceivedBookingsHandler)
		bookingGroup.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		bookingGroup.POST("/:id/feedback", hb.SubmitFeedbackHandler)
	}
}

// RegisterAvailabilityRoutes sets up availability-window endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.POST("", hb.CreateAvailabilityHandler)
		api.GET("", hb.GetAvailabilityHandler)
		api.DELETE("/:id", hb.DeleteAvailabilityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfileRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r)
}
