// Package profile implements profile accounts: registration, sign-in, the
// settings surface and the onboarding wizard.
package profile

import (
	"github.com/go-redis/redis/v8"

	"scarlet/database/repository/profile"
)

// DefaultProfileService is the production implementation of ProfileService.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
	// WizardCache holds onboarding progress keyed by profile ID.
	WizardCache *redis.Client
}
