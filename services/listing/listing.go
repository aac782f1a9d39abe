// Package listing implements the public browse surface: profile fetch,
// location seeding, filter-engine pass, availability and distance
// refinements.
package listing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scarlet/database/repository/availability"
	"scarlet/database/repository/profile"
	"scarlet/models"
	"scarlet/services/directory"
	"scarlet/services/filter"
	"scarlet/services/geo"
)

// Request carries one browse query.
type Request struct {
	Filters filter.FilterSet
	// LocationSeed is a raw URL segment ("milton-keynes") resolved through
	// the directory to seed region/county/town before the filter pass.
	LocationSeed string
	// Postcode plus RadiusMiles activate the distance refinement.
	Postcode    string
	RadiusMiles float64
	// AvailableOnly keeps only profiles with an open window today.
	AvailableOnly bool
}

// ListingService defines the browse operation.
type ListingService interface {
	Browse(ctx context.Context, req Request) ([]models.Profile, error)
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	ProfileRepo      profileRepo.ProfileRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Directory        *directory.Directory
	Distance         *geo.DistanceFilter
	Geocoder         geo.Geocoder
	// Refresher, when set, supplies the in-memory candidate snapshot so the
	// filter pass never waits on the store.
	Refresher *Refresher
}

// Browse runs the full pipeline: seed location filters, fetch candidates,
// filter, then apply the optional availability and distance refinements.
func (s *DefaultListingService) Browse(ctx context.Context, req Request) ([]models.Profile, error) {
	fs := req.Filters
	if req.LocationSeed != "" {
		seedLocation(&fs, s.Directory.ResolveSegment(req.LocationSeed))
	}

	candidates, err := s.candidates()
	if err != nil {
		return nil, err
	}

	result := filter.Apply(candidates, fs)

	if req.AvailableOnly {
		result, err = s.availableToday(result)
		if err != nil {
			return nil, err
		}
	}

	if req.Postcode != "" && req.RadiusMiles > 0 {
		result = s.refineByDistance(ctx, req, result)
	}
	return result, nil
}

// seedLocation fills unset location filters from a resolver match. An
// explicit filter always wins over the seed.
func seedLocation(fs *filter.FilterSet, match directory.LocationMatch) {
	if match.Kind == directory.NoMatch {
		return
	}
	if fs.Region == "" {
		fs.Region = match.Region
	}
	if fs.County == "" {
		fs.County = match.County
	}
	if match.Kind == directory.TownMatch && fs.Town == "" {
		fs.Town = match.Town
	}
}

func (s *DefaultListingService) candidates() ([]models.Profile, error) {
	if s.Refresher != nil {
		if snap, ok := s.Refresher.Snapshot(); ok {
			return snap, nil
		}
	}
	profiles, err := s.ProfileRepo.Search(profileRepo.SearchCriteria{MemberType: models.MemberTypeEscort})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing candidates: %w", err)
	}
	return profiles, nil
}

// availableToday keeps profiles holding an open availability window today,
// preserving order.
func (s *DefaultListingService) availableToday(profiles []models.Profile) ([]models.Profile, error) {
	now := time.Now()
	ids, err := s.AvailabilityRepo.AvailableProfileIDs(now.Format("2006-01-02"), now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	available := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		available[id] = struct{}{}
	}

	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if _, ok := available[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// refineByDistance resolves the origin postcode and filters by radius. An
// origin that cannot be resolved leaves the list untouched: that is a
// user-input problem reported inline by the handler layer, not a reason to
// drop results.
func (s *DefaultListingService) refineByDistance(ctx context.Context, req Request, profiles []models.Profile) []models.Profile {
	origin, err := s.Geocoder.Lookup(ctx, req.Postcode)
	if err != nil {
		zap.L().Warn("listing: origin postcode lookup failed, skipping distance refinement",
			zap.String("postcode", req.Postcode), zap.Error(err))
		return profiles
	}
	return s.Distance.WithinDistance(ctx, origin, profiles, req.RadiusMiles)
}
