package feedbackRepo

import (
	"errors"

	"scarlet/models"
)

// ErrDuplicateFeedback signals a second submission for the same booking by
// the same author. It is raised by the storage layer's unique index, so two
// near-simultaneous submissions cannot both succeed.
var ErrDuplicateFeedback = errors.New("feedback already exists for this booking and author")

// FeedbackRepository defines methods for feedback data access.
type FeedbackRepository interface {
	// Create inserts a feedback document. Returns ErrDuplicateFeedback when
	// the (booking, author) pair already has one.
	Create(feedback *models.Feedback) error
	// GetByBooking retrieves all feedback left on a booking.
	GetByBooking(bookingID string) ([]models.Feedback, error)
	// ExistsForAuthor reports whether the author already left feedback on the
	// booking. Advisory only; Create is the authoritative check.
	ExistsForAuthor(bookingID, authorID string) (bool, error)
}
