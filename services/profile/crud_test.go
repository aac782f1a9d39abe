package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scarlet/database/repository/profile"
	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo(ps ...*models.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: map[string]*models.Profile{}}
	for _, p := range ps {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(p *models.Profile) error         { r.profiles[p.ID] = p; return nil }
func (r *fakeProfileRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (r *fakeProfileRepo) SoftDelete(id string) error {
	if p, ok := r.profiles[id]; ok {
		p.IsDeleted = true
	}
	return nil
}

func (r *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByEmail(string) (*models.Profile, error)     { return nil, nil }
func (r *fakeProfileRepo) GetByFullName(string) (*models.Profile, error)  { return nil, nil }
func (r *fakeProfileRepo) GetByTokenHash(string) (*models.Profile, error) { return nil, nil }
func (r *fakeProfileRepo) Search(profileRepo.SearchCriteria) ([]models.Profile, error) {
	return nil, nil
}

func storedProfile() *models.Profile {
	return &models.Profile{
		ID:       "p1",
		FullName: "Scarlett",
		Email:    "scarlett@example.com",
		Location: models.ProfileLocation{Region: "East Midlands", County: "Derbyshire", Town: "Derby"},
		Security: models.Security{
			PasswordHash: "bcrypt-hash",
			TokenHash:    "token-hash",
			FCMToken:     "device-token",
		},
	}
}

func TestGetPublicByIDStripsContactAndCredentials(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeProfileRepo(storedProfile())}

	p, err := svc.GetPublicByID(context.Background(), "p1")
	require.NoError(t, err)

	assert.Empty(t, p.Email, "public view must not expose the contact email")
	assert.Equal(t, models.Security{}, p.Security, "public view must not expose token material")

	// Listing fields survive.
	assert.Equal(t, "Scarlett", p.FullName)
	assert.Equal(t, "Derby", p.Location.Town)
}

func TestGetByIDKeepsOwnerFieldsButSanitizesHashes(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeProfileRepo(storedProfile())}

	p, err := svc.GetByID(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "scarlett@example.com", p.Email, "the owner still sees their email")
	assert.Equal(t, "device-token", p.Security.FCMToken)
	assert.Empty(t, p.Security.PasswordHash)
}

func TestGetByIDHidesSoftDeleted(t *testing.T) {
	stored := storedProfile()
	stored.IsDeleted = true
	svc := &DefaultProfileService{Repo: newFakeProfileRepo(stored)}

	_, err := svc.GetByID(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.GetPublicByID(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
