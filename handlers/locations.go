package handlers

import (
	"net/http"

	"scarlet/services/directory"

	"github.com/gin-gonic/gin"
)

// LocationHandler exposes the location directory endpoints.
type LocationHandler struct {
	Directory *directory.Directory
}

// GetRegionsHandler handles GET /api/locations/regions.
func (h *LocationHandler) GetRegionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.Directory.Regions()})
}

// GetCountiesHandler handles GET /api/locations/:region/counties.
// An unknown region yields an empty list, not an error.
func (h *LocationHandler) GetCountiesHandler(c *gin.Context) {
	region := c.Param("region")
	c.JSON(http.StatusOK, gin.H{"region": region, "counties": h.Directory.CountiesOf(region)})
}

// GetTownsHandler handles GET /api/locations/:region/:county/towns.
func (h *LocationHandler) GetTownsHandler(c *gin.Context) {
	region := c.Param("region")
	county := c.Param("county")
	c.JSON(http.StatusOK, gin.H{
		"region": region,
		"county": county,
		"towns":  h.Directory.TownsOf(region, county),
	})
}

// ResolveLocationHandler handles GET /api/locations/resolve/:segment. It
// resolves a hyphenated place-name segment to its directory hierarchy.
func (h *LocationHandler) ResolveLocationHandler(c *gin.Context) {
	segment := c.Param("segment")
	match := h.Directory.ResolveSegment(segment)
	if match.Kind == directory.NoMatch {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"region": match.Region,
		"county": match.County,
		"town":   match.Town,
	})
}
