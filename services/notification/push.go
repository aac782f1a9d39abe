package notification

import (
	"context"
	"fmt"

	"scarlet/database/repository/profile"
	"scarlet/models"
	"scarlet/utils"

	"firebase.google.com/go/v4/messaging"
)

// PushNotificationService delivers booking events as FCM pushes to the target
// profile's registered device token.
type PushNotificationService struct {
	Profiles profileRepo.ProfileRepository
}

// NewPushNotificationService wires the FCM-backed dispatcher.
func NewPushNotificationService(profiles profileRepo.ProfileRepository) (*PushNotificationService, error) {
	if profiles == nil {
		return nil, fmt.Errorf("notification service initialization error: profile repository is nil")
	}
	return &PushNotificationService{Profiles: profiles}, nil
}

// NotifyBookingEvent looks up the target profile's FCM token and sends one
// push. One attempt only; the caller decides what a failure means.
func (s *PushNotificationService) NotifyBookingEvent(ctx context.Context, event models.BookingEvent) error {
	p, err := s.Profiles.GetByID(event.TargetID)
	if err != nil {
		return fmt.Errorf("NotifyBookingEvent: could not find profile %s: %w", event.TargetID, err)
	}
	token := p.Security.FCMToken
	if token == "" {
		return fmt.Errorf("NotifyBookingEvent: profile %s has no FCM token", event.TargetID)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: event.Title,
			Body:  event.Body,
		},
		Data: map[string]string{
			"type":      "booking_event",
			"bookingId": event.BookingID,
			"status":    string(event.Status),
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("NotifyBookingEvent: failed to send FCM message: %w", err)
	}
	return nil
}
