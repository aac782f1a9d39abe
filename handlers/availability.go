package handlers

import (
	"net/http"
	"time"

	availabilityRepo "scarlet/database/repository/availability"
	"scarlet/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability-window endpoints.
type AvailabilityHandler struct {
	Repo availabilityRepo.AvailabilityRepository
}

// CreateAvailabilityHandler handles POST /api/availability.
func (h *AvailabilityHandler) CreateAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Date  string    `json:"date" binding:"required"`
		Start time.Time `json:"start" binding:"required"`
		End   time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	if !req.End.After(req.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Window end must be after start"})
		return
	}

	window := &models.AvailabilityWindow{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
	}
	if err := h.Repo.Create(window); err != nil {
		logger.Error("Failed to create availability window", zap.String("profileId", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create window"})
		return
	}
	c.JSON(http.StatusCreated, window)
}

// DeleteAvailabilityHandler handles DELETE /api/availability/:id.
func (h *AvailabilityHandler) DeleteAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("id")

	// Only the owner may delete a window.
	windows, err := h.Repo.GetByProfile(profileID)
	if err != nil {
		logger.Error("Failed to load windows", zap.String("profileId", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete window"})
		return
	}
	owned := false
	for _, w := range windows {
		if w.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		c.JSON(http.StatusNotFound, gin.H{"error": "Window not found"})
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete window", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete window"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Window deleted"})
}

// GetAvailabilityHandler handles GET /api/availability.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	profileID, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	windows, err := h.Repo.GetByProfile(profileID)
	if err != nil {
		logger.Error("Failed to load windows", zap.String("profileId", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load windows"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}
