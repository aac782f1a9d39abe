package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scarlet/models"
)

// stubGeocoder resolves from a fixed table, optionally delaying per postcode
// so lookups complete out of input order.
type stubGeocoder struct {
	coords map[string]models.Coordinates
	delays map[string]time.Duration
}

func (s *stubGeocoder) Lookup(_ context.Context, postcode string) (models.Coordinates, error) {
	if d, ok := s.delays[postcode]; ok {
		time.Sleep(d)
	}
	c, ok := s.coords[postcode]
	if !ok {
		return models.Coordinates{}, errors.New("lookup failed")
	}
	return c, nil
}

func profileWithPostcode(id, postcode string) models.Profile {
	return models.Profile{ID: id, Location: models.ProfileLocation{Postcode: postcode}}
}

func TestWithinDistancePreservesInputOrder(t *testing.T) {
	// All three candidates sit at the origin; C resolves first, then A, then
	// B. The output must still be A, B, C.
	origin := models.Coordinates{Latitude: 52.9, Longitude: -1.5}
	geo := &stubGeocoder{
		coords: map[string]models.Coordinates{
			"AA1 1AA": origin,
			"BB1 1BB": origin,
			"CC1 1CC": origin,
		},
		delays: map[string]time.Duration{
			"AA1 1AA": 20 * time.Millisecond,
			"BB1 1BB": 40 * time.Millisecond,
		},
	}
	f := &DistanceFilter{Geo: geo}

	candidates := []models.Profile{
		profileWithPostcode("A", "AA1 1AA"),
		profileWithPostcode("B", "BB1 1BB"),
		profileWithPostcode("C", "CC1 1CC"),
	}
	got := f.WithinDistance(context.Background(), origin, candidates, 10)

	var ids []string
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestWithinDistanceDropsFailuresSilently(t *testing.T) {
	origin := models.Coordinates{Latitude: 51.5, Longitude: -0.1}
	geo := &stubGeocoder{
		coords: map[string]models.Coordinates{
			"AA1 1AA": origin,
		},
	}
	f := &DistanceFilter{Geo: geo}

	candidates := []models.Profile{
		profileWithPostcode("ok", "AA1 1AA"),
		profileWithPostcode("bad", "XX9 9XX"), // lookup fails
		{ID: "none"},                          // no postcode at all
	}
	got := f.WithinDistance(context.Background(), origin, candidates, 5)

	assert.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestWithinDistanceRadius(t *testing.T) {
	// Derby to Nottingham is roughly 13 miles.
	derby := models.Coordinates{Latitude: 52.9225, Longitude: -1.4746}
	nottingham := models.Coordinates{Latitude: 52.9548, Longitude: -1.1581}

	geo := &stubGeocoder{coords: map[string]models.Coordinates{"NG1 1AA": nottingham}}
	f := &DistanceFilter{Geo: geo}
	candidates := []models.Profile{profileWithPostcode("nottingham", "NG1 1AA")}

	assert.Len(t, f.WithinDistance(context.Background(), derby, candidates, 20), 1)
	assert.Empty(t, f.WithinDistance(context.Background(), derby, candidates, 5))

	// The boundary itself is inclusive.
	exact := HaversineMiles(derby, nottingham)
	assert.Len(t, f.WithinDistance(context.Background(), derby, candidates, exact), 1)
}

func TestHaversineMiles(t *testing.T) {
	london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	manchester := models.Coordinates{Latitude: 53.4808, Longitude: -2.2426}

	d := HaversineMiles(london, manchester)
	assert.InDelta(t, 163, d, 5, "London to Manchester is about 163 miles")
	assert.Zero(t, HaversineMiles(london, london))
}
