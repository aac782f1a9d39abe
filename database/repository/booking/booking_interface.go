package bookingRepo

import (
	"errors"

	"scarlet/models"
)

// ErrStatusConflict signals a conditional status write that matched no
// document: the booking's status changed after it was read.
var ErrStatusConflict = errors.New("booking status changed concurrently")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetBySender retrieves bookings sent by a profile, newest first.
	GetBySender(senderID string) ([]models.Booking, error)
	// GetByRecipient retrieves bookings received by a profile, newest first.
	GetByRecipient(recipientID string) ([]models.Booking, error)
	// UpdateStatus sets a booking's status, conditional on the status still
	// being from. Returns ErrStatusConflict when another write got there
	// first.
	UpdateStatus(id string, from, to models.BookingStatus) error
}
