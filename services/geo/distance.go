package geo

import (
	"context"
	"math"
	"sync"

	"go.uber.org/zap"

	"scarlet/models"
)

// DistanceFilter refines a candidate list to the profiles within a radius of
// an origin point.
type DistanceFilter struct {
	Geo Geocoder
}

// WithinDistance geocodes every candidate's postcode concurrently and keeps
// those within radiusMiles of origin, boundary inclusive. The result
// preserves the candidates' original relative order regardless of lookup
// completion order. A candidate with no postcode, or whose lookup fails, is
// silently dropped; a single failure never surfaces to the caller.
func (f *DistanceFilter) WithinDistance(ctx context.Context, origin models.Coordinates, candidates []models.Profile, radiusMiles float64) []models.Profile {
	keep := make([]bool, len(candidates))

	var wg sync.WaitGroup
	for i, p := range candidates {
		postcode := p.Location.Postcode
		if postcode == "" {
			continue
		}
		wg.Add(1)
		go func(i int, postcode string) {
			defer wg.Done()
			coords, err := f.Geo.Lookup(ctx, postcode)
			if err != nil {
				zap.L().Warn("distance filter: candidate postcode lookup failed",
					zap.String("postcode", postcode), zap.Error(err))
				return
			}
			if HaversineMiles(origin, coords) <= radiusMiles {
				keep[i] = true
			}
		}(i, postcode)
	}
	wg.Wait()

	out := make([]models.Profile, 0, len(candidates))
	for i, p := range candidates {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// HaversineMiles calculates the great-circle distance (in miles) between two
// points.
func HaversineMiles(a, b models.Coordinates) float64 {
	const R = 3958.8
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	lat1Rad := a.Latitude * math.Pi / 180
	lat2Rad := b.Latitude * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return R * c
}
