// Package booking implements the booking request lifecycle: creation, the
// status machine, counterparty notification and post-completion feedback.
package booking

import "scarlet/models"

// CheckTransition validates one status change against the machine:
//
//	pending  -> accepted | declined   (recipient only)
//	accepted -> completed             (either party)
//
// declined and completed are terminal. Returns ErrInvalidTransition for an
// illegal edge and ErrNotAuthorized when the edge exists but the actor may
// not take it.
func CheckTransition(b *models.Booking, next models.BookingStatus, actorID string) error {
	switch b.Status {
	case models.BookingPending:
		if next != models.BookingAccepted && next != models.BookingDeclined {
			return ErrInvalidTransition
		}
		if actorID != b.RecipientID {
			return ErrNotAuthorized
		}
	case models.BookingAccepted:
		if next != models.BookingCompleted {
			return ErrInvalidTransition
		}
		if actorID != b.SenderID && actorID != b.RecipientID {
			return ErrNotAuthorized
		}
	default:
		return ErrInvalidTransition
	}
	return nil
}
