// Package geo resolves UK postcodes to coordinates through an external lookup
// service and refines candidate lists by great-circle distance.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"scarlet/models"
)

// ErrPostcodeNotFound signals the lookup service knows no such postcode.
var ErrPostcodeNotFound = errors.New("postcode not found")

// ErrInvalidPostcode signals the input does not look like a UK postcode at
// all; no lookup is attempted for such input.
var ErrInvalidPostcode = errors.New("invalid UK postcode")

var postcodePattern = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`)

// ValidPostcode reports whether s matches the UK postcode shape, case
// insensitively.
func ValidPostcode(s string) bool {
	return postcodePattern.MatchString(strings.TrimSpace(s))
}

// Geocoder resolves a postcode to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, postcode string) (models.Coordinates, error)
}

// Client is the HTTP postcode lookup client. The service speaks the
// postcodes.io shape: GET {base}/postcodes/{postcode} returning
// {"result": {"latitude": ..., "longitude": ...}} and 404 for unknown codes.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup resolves a single postcode. Each call is one attempt; there is no
// retry.
func (c *Client) Lookup(ctx context.Context, postcode string) (models.Coordinates, error) {
	if !ValidPostcode(postcode) {
		return models.Coordinates{}, fmt.Errorf("lookup %q: %w", postcode, ErrInvalidPostcode)
	}

	compact := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
	reqURL := fmt.Sprintf("%s/postcodes/%s", c.baseURL, url.PathEscape(compact))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("failed to build postcode request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("postcode lookup failed for %s: %w", compact, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.Coordinates{}, fmt.Errorf("lookup %s: %w", compact, ErrPostcodeNotFound)
	case resp.StatusCode != http.StatusOK:
		return models.Coordinates{}, fmt.Errorf("postcode service returned status %d for %s", resp.StatusCode, compact)
	}

	var body struct {
		Result struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Coordinates{}, fmt.Errorf("failed to decode postcode response for %s: %w", compact, err)
	}
	return models.Coordinates{Latitude: body.Result.Latitude, Longitude: body.Result.Longitude}, nil
}
