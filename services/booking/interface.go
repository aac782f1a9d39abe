package booking

import (
	"context"

	"scarlet/models"
)

// CreateBookingRequest carries a new booking submission.
type CreateBookingRequest struct {
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Start       int    `json:"start"`
	Duration    string `json:"duration" binding:"required"`
	CallType    string `json:"callType" binding:"required"`
	Notes       string `json:"notes"`
}

// FeedbackRequest carries one post-completion feedback submission.
type FeedbackRequest struct {
	Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment"`
}

// BookingService defines the booking inbox operations.
type BookingService interface {
	// CreateBooking records a pending request and notifies the recipient.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	// UpdateStatus applies one status transition on behalf of actorID.
	UpdateStatus(ctx context.Context, bookingID string, next models.BookingStatus, actorID string) (*models.Booking, error)
	// GetSent lists bookings the profile sent.
	GetSent(ctx context.Context, profileID string) ([]models.Booking, error)
	// GetReceived lists bookings the profile received.
	GetReceived(ctx context.Context, profileID string) ([]models.Booking, error)
	// SubmitFeedback records one feedback entry on a completed booking.
	SubmitFeedback(ctx context.Context, bookingID, authorID string, req FeedbackRequest) (*models.Feedback, error)
}
