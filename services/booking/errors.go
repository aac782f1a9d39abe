package booking

import "errors"

var (
	// ErrInvalidTransition signals the requested status change is not legal
	// from the booking's current status.
	ErrInvalidTransition = errors.New("invalid booking status transition")
	// ErrNotAuthorized signals the actor may not perform this transition.
	ErrNotAuthorized = errors.New("actor not authorized for this transition")
	// ErrNotParticipant signals the actor is on neither side of the booking.
	ErrNotParticipant = errors.New("actor is not a participant in this booking")
	// ErrNotCompleted signals feedback was attempted before completion.
	ErrNotCompleted = errors.New("feedback requires a completed booking")
	// ErrFeedbackExists signals the actor already left feedback.
	ErrFeedbackExists = errors.New("feedback already submitted for this booking")
)
