package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scarlet/models"
)

func pendingBooking() *models.Booking {
	return &models.Booking{ID: "b1", SenderID: "sender", RecipientID: "recipient", Status: models.BookingPending}
}

func TestCheckTransitionFromPending(t *testing.T) {
	tests := []struct {
		name    string
		next    models.BookingStatus
		actorID string
		wantErr error
	}{
		{"recipient accepts", models.BookingAccepted, "recipient", nil},
		{"recipient declines", models.BookingDeclined, "recipient", nil},
		{"sender cannot accept", models.BookingAccepted, "sender", ErrNotAuthorized},
		{"sender cannot decline", models.BookingDeclined, "sender", ErrNotAuthorized},
		{"stranger cannot accept", models.BookingAccepted, "other", ErrNotAuthorized},
		{"cannot skip to completed", models.BookingCompleted, "recipient", ErrInvalidTransition},
		{"cannot re-pend", models.BookingPending, "recipient", ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(pendingBooking(), tt.next, tt.actorID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckTransitionFromAccepted(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingAccepted

	assert.NoError(t, CheckTransition(b, models.BookingCompleted, "recipient"))
	assert.NoError(t, CheckTransition(b, models.BookingCompleted, "sender"), "either party may complete")
	assert.ErrorIs(t, CheckTransition(b, models.BookingCompleted, "other"), ErrNotAuthorized)
	assert.ErrorIs(t, CheckTransition(b, models.BookingDeclined, "recipient"), ErrInvalidTransition)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	all := []models.BookingStatus{models.BookingPending, models.BookingAccepted, models.BookingDeclined, models.BookingCompleted}

	for _, terminal := range []models.BookingStatus{models.BookingDeclined, models.BookingCompleted} {
		b := pendingBooking()
		b.Status = terminal
		for _, next := range all {
			assert.ErrorIs(t, CheckTransition(b, next, "recipient"), ErrInvalidTransition,
				"%s -> %s must be rejected", terminal, next)
		}
	}
}
