package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scarlet/database/repository/profile"
	"scarlet/models"
	"scarlet/services/directory"
	"scarlet/services/filter"
	"scarlet/services/geo"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles []models.Profile
	err      error
}

func (r *fakeProfileRepo) Create(*models.Profile) error                   { return nil }
func (r *fakeProfileRepo) UpdateSetDocument(string, bson.M) error         { return nil }
func (r *fakeProfileRepo) SoftDelete(string) error                        { return nil }
func (r *fakeProfileRepo) GetByID(string) (*models.Profile, error)        { return nil, nil }
func (r *fakeProfileRepo) GetByEmail(string) (*models.Profile, error)     { return nil, nil }
func (r *fakeProfileRepo) GetByFullName(string) (*models.Profile, error)  { return nil, nil }
func (r *fakeProfileRepo) GetByTokenHash(string) (*models.Profile, error) { return nil, nil }

func (r *fakeProfileRepo) Search(profileRepo.SearchCriteria) ([]models.Profile, error) {
	return r.profiles, r.err
}

type fakeAvailabilityRepo struct {
	ids []string
}

func (r *fakeAvailabilityRepo) Create(*models.AvailabilityWindow) error { return nil }
func (r *fakeAvailabilityRepo) Delete(string) error                     { return nil }
func (r *fakeAvailabilityRepo) GetByProfile(string) ([]models.AvailabilityWindow, error) {
	return nil, nil
}
func (r *fakeAvailabilityRepo) AvailableProfileIDs(string, time.Time) ([]string, error) {
	return r.ids, nil
}

type failingGeocoder struct{}

func (failingGeocoder) Lookup(context.Context, string) (models.Coordinates, error) {
	return models.Coordinates{}, errors.New("service unreachable")
}

func derbyProfiles() []models.Profile {
	loc := models.ProfileLocation{Region: "East Midlands", County: "Derbyshire", Town: "Derby"}
	return []models.Profile{
		{ID: "p1", FullName: "Amber", Location: loc},
		{ID: "p2", FullName: "Bella", Location: loc, IsDeleted: true},
		{ID: "p3", FullName: "Chloe", Location: models.ProfileLocation{Region: "London", County: "Central London", Town: "Mayfair"}},
		{ID: "p4", FullName: "Dana", Location: models.ProfileLocation{Region: "East Midlands", County: "Nottinghamshire", Town: "Nottingham"}},
		{ID: "p5", FullName: "Erin", Location: models.ProfileLocation{Region: "North West", County: "Cheshire", Town: "Chester"}},
	}
}

func newListingService(profiles []models.Profile) *DefaultListingService {
	return &DefaultListingService{
		ProfileRepo:      &fakeProfileRepo{profiles: profiles},
		AvailabilityRepo: &fakeAvailabilityRepo{},
		Directory:        directory.UK(),
	}
}

func browseIDs(t *testing.T, s *DefaultListingService, req Request) []string {
	t.Helper()
	got, err := s.Browse(context.Background(), req)
	require.NoError(t, err)
	var ids []string
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestBrowseSeedsTownFromURLSegment(t *testing.T) {
	// Scenario from the browse surface: "derby" resolves to the town, and of
	// the two Derby profiles one is soft-deleted, leaving exactly one.
	s := newListingService(derbyProfiles())

	match := s.Directory.Resolve("derby")
	require.Equal(t, directory.TownMatch, match.Kind)
	require.Equal(t, "Derbyshire", match.County)

	assert.Equal(t, []string{"p1"}, browseIDs(t, s, Request{LocationSeed: "derby"}))
}

func TestBrowseSeedDoesNotOverrideExplicitFilters(t *testing.T) {
	s := newListingService(derbyProfiles())

	// The seed says Derby, the explicit county filter says Nottinghamshire;
	// the explicit filter wins, and the seeded region still applies.
	req := Request{
		LocationSeed: "derby",
		Filters:      filter.FilterSet{County: "Nottinghamshire", Town: "Nottingham"},
	}
	assert.Equal(t, []string{"p4"}, browseIDs(t, s, req))
}

func TestBrowseUnknownSeedAppliesNoLocationFilter(t *testing.T) {
	s := newListingService(derbyProfiles())

	ids := browseIDs(t, s, Request{LocationSeed: "atlantis"})
	assert.Equal(t, []string{"p1", "p3", "p4", "p5"}, ids, "lookup miss is not an error, just unfiltered")
}

func TestBrowseAvailableOnly(t *testing.T) {
	s := newListingService(derbyProfiles())
	s.AvailabilityRepo = &fakeAvailabilityRepo{ids: []string{"p3", "p5"}}

	ids := browseIDs(t, s, Request{AvailableOnly: true})
	assert.Equal(t, []string{"p3", "p5"}, ids, "availability intersects while preserving order")
}

func TestBrowseOriginLookupFailureLeavesListUnfiltered(t *testing.T) {
	s := newListingService(derbyProfiles())
	s.Geocoder = failingGeocoder{}
	s.Distance = &geo.DistanceFilter{Geo: failingGeocoder{}}

	ids := browseIDs(t, s, Request{Postcode: "DE1 2AB", RadiusMiles: 10})
	assert.Equal(t, []string{"p1", "p3", "p4", "p5"}, ids)
}

func TestBrowsePrefersRefresherSnapshot(t *testing.T) {
	s := newListingService(nil)
	s.Refresher = NewRefresher(nil, 0)
	s.Refresher.apply(1, derbyProfiles())

	ids := browseIDs(t, s, Request{Filters: filter.FilterSet{Town: "Derby"}})
	assert.Equal(t, []string{"p1"}, ids)
}
