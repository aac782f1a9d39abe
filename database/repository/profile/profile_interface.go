package profileRepo

import (
	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchCriteria narrows a profile search at the store. All members are
// optional; region/county/town compare case-insensitively since search seeds
// may arrive as free text. Soft-deleted profiles are always excluded.
type SearchCriteria struct {
	MemberType string
	Region     string
	County     string
	Town       string
}

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// Create inserts a new profile document.
	Create(profile *models.Profile) error
	// UpdateSetDocument patches a profile document with the given fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// SoftDelete flags a profile deleted without removing the document.
	SoftDelete(id string) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.Profile, error)
	// GetByEmail retrieves a profile by email, or nil when absent.
	GetByEmail(email string) (*models.Profile, error)
	// GetByFullName retrieves a profile by display name, or nil when absent.
	GetByFullName(fullName string) (*models.Profile, error)
	// GetByTokenHash retrieves the profile whose tokenHash matches.
	GetByTokenHash(tokenHash string) (*models.Profile, error)
	// Search retrieves non-deleted profiles matching the criteria.
	Search(criteria SearchCriteria) ([]models.Profile, error)
}
