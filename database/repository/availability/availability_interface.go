package availabilityRepo

import (
	"time"

	"scarlet/models"
)

// AvailabilityRepository defines methods for availability-window data access.
type AvailabilityRepository interface {
	// Create inserts a new availability window.
	Create(window *models.AvailabilityWindow) error
	// Delete removes a window by its ID.
	Delete(id string) error
	// GetByProfile retrieves all windows of a profile.
	GetByProfile(profileID string) ([]models.AvailabilityWindow, error)
	// AvailableProfileIDs returns IDs of profiles holding a window on the
	// given date whose end is after now.
	AvailableProfileIDs(date string, now time.Time) ([]string, error)
}
