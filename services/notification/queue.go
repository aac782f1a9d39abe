package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"scarlet/models"

	"github.com/hibiken/asynq"
)

// TypeBookingNotify is the asynq task type for booking-event pushes.
const TypeBookingNotify = "notification:booking"

// QueueNotificationService enqueues booking events for background dispatch so
// the booking write path never waits on FCM. MaxRetry is zero: delivery is
// at-most-once.
type QueueNotificationService struct {
	Client *asynq.Client
}

// NewQueueNotificationService wires the enqueuing dispatcher.
func NewQueueNotificationService(client *asynq.Client) *QueueNotificationService {
	return &QueueNotificationService{Client: client}
}

// NotifyBookingEvent enqueues the event for the worker in cron.
func (s *QueueNotificationService) NotifyBookingEvent(ctx context.Context, event models.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}
	task := asynq.NewTask(TypeBookingNotify, payload)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(0)); err != nil {
		return fmt.Errorf("failed to enqueue booking notification: %w", err)
	}
	return nil
}
