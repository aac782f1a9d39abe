package models

import "time"

// AvailabilityWindow marks a span of a calendar day a profile is open for
// bookings. A profile counts as available on a date iff a window exists for
// that date whose end is still in the future.
type AvailabilityWindow struct {
	ID        string    `bson:"id" json:"id"`
	ProfileID string    `bson:"profileId" json:"profileId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
}
