package models

import "time"

// Feedback is submitted once per participant after a booking completes.
// Uniqueness per (booking, author) is enforced by a storage-layer index, not
// only by the advisory read-before-write check in the service.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Rating    float64   `bson:"rating" json:"rating"` // 1 to 5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
