package profile

import (
	"context"
	"fmt"
	"strings"

	"scarlet/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"scarlet/models"
)

// Authenticate verifies credentials and rotates the auth token. Unknown
// email, wrong password and soft-deleted account all collapse into
// ErrInvalidCredentials.
func (s *DefaultProfileService) Authenticate(ctx context.Context, email, password string) (*models.Profile, error) {
	p, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if p == nil || p.IsDeleted {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Security.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, p.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(p.ID, bson.M{"security.tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	p.Security.Token = token
	p.Security.TokenHash = tokenHash
	return sanitize(p), nil
}
