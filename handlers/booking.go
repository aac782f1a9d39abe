package handlers

import (
	"errors"
	"net/http"

	"scarlet/models"
	bookingSvc "scarlet/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking inbox endpoints.
type BookingHandler struct {
	BookingService bookingSvc.BookingService
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	actorID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req bookingSvc.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	// The sender is always the authenticated profile.
	req.SenderID = actorID

	b, err := h.BookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetSentBookingsHandler handles GET /api/bookings/sent.
func (h *BookingHandler) GetSentBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	actorID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.BookingService.GetSent(c.Request.Context(), actorID)
	if err != nil {
		logger.Error("Failed to list sent bookings", zap.String("profileId", actorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GetReceivedBookingsHandler handles GET /api/bookings/received.
func (h *BookingHandler) GetReceivedBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	actorID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.BookingService.GetReceived(c.Request.Context(), actorID)
	if err != nil {
		logger.Error("Failed to list received bookings", zap.String("profileId", actorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	actorID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bookingID := c.Param("id")
	b, err := h.BookingService.UpdateStatus(c.Request.Context(), bookingID, models.BookingStatus(req.Status), actorID)
	if err != nil {
		switch {
		case errors.Is(err, bookingSvc.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, bookingSvc.ErrNotAuthorized), errors.Is(err, bookingSvc.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Status update failed", zap.String("bookingId", bookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// SubmitFeedbackHandler handles POST /api/bookings/:id/feedback.
func (h *BookingHandler) SubmitFeedbackHandler(c *gin.Context) {
	logger := getLogger(c)

	actorID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req bookingSvc.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bookingID := c.Param("id")
	fb, err := h.BookingService.SubmitFeedback(c.Request.Context(), bookingID, actorID, req)
	if err != nil {
		switch {
		case errors.Is(err, bookingSvc.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, bookingSvc.ErrNotCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, bookingSvc.ErrFeedbackExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Feedback submission failed", zap.String("bookingId", bookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		}
		return
	}
	c.JSON(http.StatusCreated, fb)
}
