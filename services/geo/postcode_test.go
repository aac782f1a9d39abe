package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPostcode(t *testing.T) {
	valid := []string{"DE1 2AB", "de1 2ab", "SW1A 1AA", "M1 1AE", "CR26XH", "EC1A 1BB"}
	for _, pc := range valid {
		assert.True(t, ValidPostcode(pc), "%q should be valid", pc)
	}

	invalid := []string{"", "12345", "DERBY", "D 1AB", "SW1A 1AAA", "1A 2BC"}
	for _, pc := range invalid {
		assert.False(t, ValidPostcode(pc), "%q should be invalid", pc)
	}
}

func TestClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/postcodes/DE12AB":
			w.Write([]byte(`{"status":200,"result":{"latitude":52.92,"longitude":-1.47}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	coords, err := c.Lookup(context.Background(), "de1 2ab")
	require.NoError(t, err, "postcode should be upcased and compacted before the request")
	assert.InDelta(t, 52.92, coords.Latitude, 0.001)
	assert.InDelta(t, -1.47, coords.Longitude, 0.001)

	_, err = c.Lookup(context.Background(), "ZZ9 9ZZ")
	assert.ErrorIs(t, err, ErrPostcodeNotFound)

	_, err = c.Lookup(context.Background(), "not a postcode")
	assert.ErrorIs(t, err, ErrInvalidPostcode)
}

func TestClientLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Lookup(context.Background(), "DE1 2AB")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPostcodeNotFound)
}
