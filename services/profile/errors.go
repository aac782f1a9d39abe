package profile

import "errors"

var (
	// ErrEmailTaken signals a registration with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNameTaken signals a duplicate display name.
	ErrNameTaken = errors.New("display name already taken")
	// ErrInvalidCredentials signals a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrProfileNotFound signals an unknown or soft-deleted profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidWizardStep signals an out-of-range onboarding step.
	ErrInvalidWizardStep = errors.New("invalid wizard step")
)
