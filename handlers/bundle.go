// File: scarlet/handlers/bundle.go
package handlers

import (
	profileRepoPkg "scarlet/database/repository/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProfileRepo profileRepoPkg.ProfileRepository

	// Profile endpoints
	RegisterProfileHandler     gin.HandlerFunc
	AuthenticateProfileHandler gin.HandlerFunc
	GetOwnProfileHandler       gin.HandlerFunc
	GetProfileByIDHandler      gin.HandlerFunc
	UpdateProfileHandler       gin.HandlerFunc
	DeleteProfileHandler       gin.HandlerFunc
	UpdateFCMTokenHandler      gin.HandlerFunc
	GetWizardStateHandler      gin.HandlerFunc
	SaveWizardStepHandler      gin.HandlerFunc

	// Listing endpoints
	BrowseListingsHandler gin.HandlerFunc

	// Location directory endpoints
	GetRegionsHandler      gin.HandlerFunc
	GetCountiesHandler     gin.HandlerFunc
	GetTownsHandler        gin.HandlerFunc
	ResolveLocationHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetSentBookingsHandler     gin.HandlerFunc
	GetReceivedBookingsHandler gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	SubmitFeedbackHandler      gin.HandlerFunc

	// Availability endpoints
	CreateAvailabilityHandler gin.HandlerFunc
	DeleteAvailabilityHandler gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
}
