package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"scarlet/database/repository/booking"
	"scarlet/database/repository/feedback"
	"scarlet/models"
	"scarlet/services/notification"

	"github.com/google/uuid"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	FeedbackRepo feedbackRepo.FeedbackRepository
	Notifier     notification.NotificationService
}

// CreateBooking records a pending request and notifies the recipient. The
// notification is best-effort and never fails the creation.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if req.SenderID == req.RecipientID {
		return nil, fmt.Errorf("sender and recipient must differ")
	}

	b := &models.Booking{
		ID:          uuid.New().String(),
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Status:      models.BookingPending,
		Date:        req.Date,
		Start:       req.Start,
		Duration:    req.Duration,
		CallType:    req.CallType,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.notify(ctx, models.BookingEvent{
		BookingID: b.ID,
		Status:    b.Status,
		ActorID:   b.SenderID,
		TargetID:  b.RecipientID,
		Title:     "New booking request",
		Body:      fmt.Sprintf("You have a new booking request for %s (%s).", b.Date, b.Duration),
	})
	return b, nil
}

// UpdateStatus applies one transition on behalf of actorID. The status write
// is authoritative: the counterparty notification is attempted afterwards and
// its failure is only logged.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, next models.BookingStatus, actorID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if err := CheckTransition(b, next, actorID); err != nil {
		return nil, err
	}
	// The write is conditional on the status we validated against. A booking
	// that moved underneath us (say a decline landing just before this
	// accept) makes the transition invalid, not lost.
	if err := s.Repo.UpdateStatus(bookingID, b.Status, next); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	b.Status = next

	s.notify(ctx, models.BookingEvent{
		BookingID: b.ID,
		Status:    next,
		ActorID:   actorID,
		TargetID:  b.Counterparty(actorID),
		Title:     "Booking update",
		Body:      fmt.Sprintf("Your booking for %s is now %s.", b.Date, next),
	})
	return b, nil
}

// GetSent lists bookings the profile sent.
func (s *DefaultBookingService) GetSent(ctx context.Context, profileID string) ([]models.Booking, error) {
	return s.Repo.GetBySender(profileID)
}

// GetReceived lists bookings the profile received.
func (s *DefaultBookingService) GetReceived(ctx context.Context, profileID string) ([]models.Booking, error) {
	return s.Repo.GetByRecipient(profileID)
}

// SubmitFeedback records one feedback entry on a completed booking. The
// exists check here is advisory; the repository's unique index is what makes
// one-per-participant hold under concurrent submissions.
func (s *DefaultBookingService) SubmitFeedback(ctx context.Context, bookingID, authorID string, req FeedbackRequest) (*models.Feedback, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if authorID != b.SenderID && authorID != b.RecipientID {
		return nil, ErrNotParticipant
	}
	if b.Status != models.BookingCompleted {
		return nil, ErrNotCompleted
	}

	exists, err := s.FeedbackRepo.ExistsForAuthor(bookingID, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if exists {
		return nil, ErrFeedbackExists
	}

	f := &models.Feedback{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.FeedbackRepo.Create(f); err != nil {
		if err == feedbackRepo.ErrDuplicateFeedback {
			return nil, ErrFeedbackExists
		}
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return f, nil
}

func (s *DefaultBookingService) notify(ctx context.Context, event models.BookingEvent) {
	if s.Notifier == nil || event.TargetID == "" {
		return
	}
	if err := s.Notifier.NotifyBookingEvent(ctx, event); err != nil {
		zap.L().Warn("booking notification dispatch failed",
			zap.String("bookingID", event.BookingID),
			zap.String("targetID", event.TargetID),
			zap.Error(err))
	}
}
