package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scarlet/models"
	"scarlet/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// Register creates a new profile account. Email and display name must both
// be unused; duplicate display names are a validation error surfaced inline,
// not a system fault.
func (s *DefaultProfileService) Register(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.FullName = strings.TrimSpace(p.FullName)
	if p.Email == "" || p.FullName == "" || p.Security.Password == "" {
		return nil, fmt.Errorf("email, display name and password are required")
	}

	if existing, err := s.Repo.GetByEmail(p.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.Repo.GetByFullName(p.FullName); err != nil {
		return nil, fmt.Errorf("failed to check display name: %w", err)
	} else if existing != nil {
		return nil, ErrNameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p.ID = uuid.New().String()
	if p.MemberType == "" {
		p.MemberType = models.MemberTypeEscort
	}
	p.Security.Password = ""
	p.Security.PasswordHash = string(hash)
	p.IsDeleted = false

	token, err := utils.GenerateToken(p.ID, p.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	p.Security.Token = token
	p.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return sanitize(p), nil
}
