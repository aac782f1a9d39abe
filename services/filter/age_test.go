package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday today", time.Date(2007, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{"birthday tomorrow", time.Date(2007, time.June, 16, 0, 0, 0, 0, time.UTC), 17},
		{"birthday yesterday", time.Date(2007, time.June, 14, 0, 0, 0, 0, time.UTC), 18},
		{"earlier month", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), 35},
		{"later month", time.Date(1990, time.December, 1, 0, 0, 0, 0, time.UTC), 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(tt.dob, now))
		})
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{17, ""},
		{18, "18-24"},
		{24, "18-24"},
		{25, "25-30"},
		{30, "25-30"},
		{31, "31-35"},
		{35, "31-35"},
		{36, "36-40"},
		{40, "36-40"},
		{41, "41-45"},
		{45, "41-45"},
		{46, "46-55"},
		{55, "46-55"},
		{56, "56+"},
		{80, "56+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.age), "age %d", tt.age)
	}
}
