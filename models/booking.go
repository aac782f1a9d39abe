package models

import "time"

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingDeclined  BookingStatus = "declined"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a meeting request sent by a member to a profile. Only the
// recipient accepts or declines; either party may mark an accepted booking
// completed.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	SenderID    string        `bson:"senderId" json:"senderId"`
	RecipientID string        `bson:"recipientId" json:"recipientId"`
	Status      BookingStatus `bson:"status" json:"status"`
	Date        string        `bson:"date" json:"date"`         // "YYYY-MM-DD"
	Start       int           `bson:"start" json:"start"`       // minutes from midnight
	Duration    string        `bson:"duration" json:"duration"` // rate-table key, e.g. "1 hour"
	CallType    string        `bson:"callType" json:"callType"` // "inCall" or "outCall"
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Counterparty returns the participant on the other side of the booking from
// actorID, or an empty string when actorID is not a participant.
func (b *Booking) Counterparty(actorID string) string {
	switch actorID {
	case b.SenderID:
		return b.RecipientID
	case b.RecipientID:
		return b.SenderID
	}
	return ""
}
