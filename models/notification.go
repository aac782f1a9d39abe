package models

// BookingEvent is the payload dispatched to a booking counterparty when the
// booking is created or its status changes. Delivery is best-effort and
// at-most-once; a failed dispatch never affects the booking record.
type BookingEvent struct {
	BookingID string        `json:"bookingId"`
	Status    BookingStatus `json:"status"`
	ActorID   string        `json:"actorId"`
	TargetID  string        `json:"targetId"` // profile receiving the push
	Title     string        `json:"title"`
	Body      string        `json:"body"`
}
