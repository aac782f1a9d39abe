package profile

import (
	"context"
	"fmt"
	"strings"

	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByID retrieves a profile by ID. Soft-deleted profiles behave as absent.
func (s *DefaultProfileService) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	if p.IsDeleted {
		return nil, ErrProfileNotFound
	}
	return sanitize(p), nil
}

// GetPublicByID retrieves a profile for the unauthenticated read path. The
// owner's view keeps email and push token; this one does not.
func (s *DefaultProfileService) GetPublicByID(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pub := p.Public()
	return &pub, nil
}

// UpdateProfile patches the given fields. A display-name change re-runs the
// duplicate check; credential and deletion fields cannot be patched here.
func (s *DefaultProfileService) UpdateProfile(ctx context.Context, id string, updates bson.M) (*models.Profile, error) {
	for _, forbidden := range []string{"id", "security", "security.passwordHash", "security.tokenHash", "isDeleted"} {
		delete(updates, forbidden)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no updatable fields supplied")
	}

	if name, ok := updates["fullName"].(string); ok {
		name = strings.TrimSpace(name)
		existing, err := s.Repo.GetByFullName(name)
		if err != nil {
			return nil, fmt.Errorf("failed to check display name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrNameTaken
		}
		updates["fullName"] = name
	}

	if err := s.Repo.UpdateSetDocument(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

// UpdateFCMToken stores the device push token used by the notification
// dispatcher.
func (s *DefaultProfileService) UpdateFCMToken(ctx context.Context, id, token string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"security.fcmToken": token}); err != nil {
		return fmt.Errorf("failed to update FCM token for %s: %w", id, err)
	}
	return nil
}

// Delete soft-deletes the profile. The record stays in the store; every read
// path honours the flag.
func (s *DefaultProfileService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}

// sanitize strips credential material before a profile leaves the service.
func sanitize(p *models.Profile) *models.Profile {
	p.Security.Password = ""
	p.Security.PasswordHash = ""
	return p
}
