package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scarlet/database/repository/booking"
	"scarlet/database/repository/feedback"
	"scarlet/models"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	// staleRead, when set, is served by GetByID instead of the stored
	// document, standing in for a read that happened before a concurrent
	// write landed.
	staleRead *models.Booking
}

func newFakeBookingRepo(bs ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bs {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if r.staleRead != nil && r.staleRead.ID == id {
		copied := *r.staleRead
		return &copied, nil
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetBySender(senderID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.SenderID == senderID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByRecipient(recipientID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.RecipientID == recipientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	return nil
}

type fakeFeedbackRepo struct {
	items map[string]*models.Feedback // keyed bookingID+authorID
	// hideFromExists makes ExistsForAuthor report false even for stored
	// items, simulating the advisory check losing a race that the unique
	// index then catches.
	hideFromExists bool
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: map[string]*models.Feedback{}}
}

func (r *fakeFeedbackRepo) Create(f *models.Feedback) error {
	key := f.BookingID + "/" + f.AuthorID
	if _, ok := r.items[key]; ok {
		return feedbackRepo.ErrDuplicateFeedback
	}
	r.items[key] = f
	return nil
}

func (r *fakeFeedbackRepo) GetByBooking(bookingID string) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.items {
		if f.BookingID == bookingID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) ExistsForAuthor(bookingID, authorID string) (bool, error) {
	if r.hideFromExists {
		return false, nil
	}
	_, ok := r.items[bookingID+"/"+authorID]
	return ok, nil
}

type fakeNotifier struct {
	events []models.BookingEvent
	err    error
}

func (n *fakeNotifier) NotifyBookingEvent(_ context.Context, event models.BookingEvent) error {
	n.events = append(n.events, event)
	return n.err
}

func newService(b *models.Booking, notifier *fakeNotifier) (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	if b != nil {
		repo.bookings[b.ID] = b
	}
	return &DefaultBookingService{
		Repo:         repo,
		FeedbackRepo: newFakeFeedbackRepo(),
		Notifier:     notifier,
	}, repo
}

func TestCreateBookingNotifiesRecipient(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, repo := newService(nil, notifier)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		SenderID:    "member-1",
		RecipientID: "escort-1",
		Date:        "2025-07-01",
		Duration:    "1 hour",
		CallType:    "inCall",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Contains(t, repo.bookings, b.ID)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "escort-1", notifier.events[0].TargetID)
}

func TestCreateBookingRejectsSelfBooking(t *testing.T) {
	svc, _ := newService(nil, &fakeNotifier{})
	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		SenderID: "p1", RecipientID: "p1", Date: "2025-07-01", Duration: "1 hour", CallType: "inCall",
	})
	assert.Error(t, err)
}

func TestUpdateStatusAppliesTransitionAndNotifiesCounterparty(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, repo := newService(pendingBooking(), notifier)

	b, err := svc.UpdateStatus(context.Background(), "b1", models.BookingAccepted, "recipient")
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, b.Status)
	assert.Equal(t, models.BookingAccepted, repo.bookings["b1"].Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "sender", notifier.events[0].TargetID, "the original sender is notified on accept")
}

func TestUpdateStatusNotificationFailureDoesNotBlock(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("push channel down")}
	svc, repo := newService(pendingBooking(), notifier)

	b, err := svc.UpdateStatus(context.Background(), "b1", models.BookingDeclined, "recipient")
	require.NoError(t, err, "status write is authoritative regardless of notification outcome")
	assert.Equal(t, models.BookingDeclined, b.Status)
	assert.Equal(t, models.BookingDeclined, repo.bookings["b1"].Status)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	svc, repo := newService(pendingBooking(), &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), "b1", models.BookingCompleted, "recipient")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.BookingPending, repo.bookings["b1"].Status, "no partial mutation on rejection")

	_, err = svc.UpdateStatus(context.Background(), "b1", models.BookingAccepted, "sender")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUpdateStatusConcurrentDeclineStaysTerminal(t *testing.T) {
	// An accept validated against a pending read must not overwrite a
	// decline that landed in between: the conditional write matches nothing
	// and the transition is rejected.
	svc, repo := newService(pendingBooking(), &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), "b1", models.BookingDeclined, "recipient")
	require.NoError(t, err)

	stale := pendingBooking() // what the slower request saw before the decline
	repo.staleRead = stale

	_, err = svc.UpdateStatus(context.Background(), "b1", models.BookingAccepted, "recipient")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.BookingDeclined, repo.bookings["b1"].Status, "declined is terminal")
}

func TestSubmitFeedbackGating(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingCompleted
	svc, _ := newService(b, &fakeNotifier{})

	// A stranger cannot leave feedback.
	_, err := svc.SubmitFeedback(context.Background(), "b1", "other", FeedbackRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrNotParticipant)

	// Each participant may leave exactly one.
	f, err := svc.SubmitFeedback(context.Background(), "b1", "sender", FeedbackRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, "b1", f.BookingID)

	_, err = svc.SubmitFeedback(context.Background(), "b1", "sender", FeedbackRequest{Rating: 4})
	assert.ErrorIs(t, err, ErrFeedbackExists)

	_, err = svc.SubmitFeedback(context.Background(), "b1", "recipient", FeedbackRequest{Rating: 3})
	assert.NoError(t, err, "the other participant still gets their one submission")
}

func TestSubmitFeedbackRequiresCompletion(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingPending, models.BookingAccepted, models.BookingDeclined} {
		b := pendingBooking()
		b.Status = status
		svc, _ := newService(b, &fakeNotifier{})

		_, err := svc.SubmitFeedback(context.Background(), "b1", "sender", FeedbackRequest{Rating: 5})
		assert.ErrorIs(t, err, ErrNotCompleted, "status %s", status)
	}
}

func TestSubmitFeedbackDuplicateKeyMapsToFeedbackExists(t *testing.T) {
	// Simulate the advisory check passing while the unique index rejects.
	b := pendingBooking()
	b.Status = models.BookingCompleted
	svc, _ := newService(b, &fakeNotifier{})

	fr := svc.FeedbackRepo.(*fakeFeedbackRepo)
	fr.hideFromExists = true
	fr.items["b1/sender"] = &models.Feedback{BookingID: "b1", AuthorID: "sender"}

	_, err := svc.SubmitFeedback(context.Background(), "b1", "sender", FeedbackRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrFeedbackExists)
}
