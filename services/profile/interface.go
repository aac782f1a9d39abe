package profile

import (
	"context"

	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// WizardState is the saved progress of the onboarding wizard. Steps run in
// order; Completed flips when the final step is saved.
type WizardState struct {
	Step      int  `json:"step"`
	Completed bool `json:"completed"`
}

// WizardSteps lists the onboarding steps in order.
var WizardSteps = []string{"basics", "location", "rates", "activities", "photos"}

// ProfileService defines profile account and settings operations.
type ProfileService interface {
	// Register creates a new profile account and returns it with a fresh
	// auth token.
	Register(ctx context.Context, p *models.Profile) (*models.Profile, error)
	// Authenticate verifies credentials and returns the profile with a fresh
	// auth token.
	Authenticate(ctx context.Context, email, password string) (*models.Profile, error)
	// GetByID retrieves a profile. Soft-deleted profiles are not returned.
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	// GetPublicByID retrieves the public view of a profile: no email, no
	// credential or device-token material.
	GetPublicByID(ctx context.Context, id string) (*models.Profile, error)
	// UpdateProfile patches profile fields.
	UpdateProfile(ctx context.Context, id string, updates bson.M) (*models.Profile, error)
	// UpdateFCMToken stores the device push token.
	UpdateFCMToken(ctx context.Context, id, token string) error
	// Delete soft-deletes a profile.
	Delete(ctx context.Context, id string) error
	// WizardState returns the saved onboarding progress.
	WizardState(ctx context.Context, id string) (WizardState, error)
	// SaveWizardStep records completion of one onboarding step.
	SaveWizardStep(ctx context.Context, id string, step int) (WizardState, error)
}
