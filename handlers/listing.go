package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"scarlet/models"
	"scarlet/services/filter"
	"scarlet/services/geo"
	"scarlet/services/listing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes the public browse endpoint.
type ListingHandler struct {
	ListingService listing.ListingService
}

// BrowseListingsHandler handles GET /api/listings.
//
// Query parameters map onto the filter set; all are optional. "location"
// takes a hyphenated segment ("milton-keynes") and seeds region/county/town
// through the directory. "postcode" plus "radius" activate the distance
// refinement; a malformed postcode is rejected here, before any lookup.
func (h *ListingHandler) BrowseListingsHandler(c *gin.Context) {
	logger := getLogger(c)

	req := listing.Request{
		Filters: filter.FilterSet{
			TextQuery:       c.Query("q"),
			Region:          c.Query("region"),
			County:          c.Query("county"),
			Town:            c.Query("town"),
			Gender:          c.Query("gender"),
			AgeBucket:       c.Query("age"),
			Ethnicity:       c.Query("ethnicity"),
			Nationality:     c.Query("nationality"),
			BookingDuration: c.Query("duration"),
		},
		LocationSeed:  c.Query("location"),
		Postcode:      strings.TrimSpace(c.Query("postcode")),
		AvailableOnly: c.Query("available") == "true",
	}

	if acts := c.Query("activities"); acts != "" {
		for _, a := range strings.Split(acts, ",") {
			if a = strings.TrimSpace(a); a != "" {
				req.Filters.RequiredActivities = append(req.Filters.RequiredActivities, a)
			}
		}
	}

	if radius := c.Query("radius"); radius != "" {
		miles, err := strconv.ParseFloat(radius, 64)
		if err != nil || miles <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
		req.RadiusMiles = miles
	}

	if req.Postcode != "" && !geo.ValidPostcode(req.Postcode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postcode"})
		return
	}

	profiles, err := h.ListingService.Browse(c.Request.Context(), req)
	if err != nil {
		logger.Error("Browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listings"})
		return
	}

	// Listings are a public surface: same view as the public profile read.
	public := make([]models.Profile, len(profiles))
	for i, p := range profiles {
		public[i] = p.Public()
	}
	c.JSON(http.StatusOK, gin.H{"count": len(public), "profiles": public})
}
