package notification

import (
	"context"

	"scarlet/models"
)

// NotificationService dispatches booking events to a counterparty. Delivery
// is best-effort: callers log a failed dispatch and move on, the triggering
// state change is never rolled back.
type NotificationService interface {
	NotifyBookingEvent(ctx context.Context, event models.BookingEvent) error
}
