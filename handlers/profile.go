package handlers

import (
	"errors"
	"net/http"

	"scarlet/models"
	profileSvc "scarlet/services/profile"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ProfileHandler exposes the profile account endpoints.
type ProfileHandler struct {
	ProfileService profileSvc.ProfileService
}

// RegisterProfileHandler handles POST /api/profiles/register.
func (h *ProfileHandler) RegisterProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	registered, err := h.ProfileService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, profileSvc.ErrEmailTaken) || errors.Is(err, profileSvc.ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Profile registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// AuthenticateProfileHandler handles POST /api/profiles/login.
func (h *ProfileHandler) AuthenticateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.ProfileService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, profileSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetOwnProfileHandler handles GET /api/profiles/me.
func (h *ProfileHandler) GetOwnProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	p, err := h.ProfileService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, profileSvc.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get profile", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProfileByIDHandler handles GET /api/profiles/id/:id. This is the public
// view: no email, no token material.
func (h *ProfileHandler) GetProfileByIDHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	p, err := h.ProfileService.GetPublicByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, profileSvc.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get profile", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PATCH /api/profiles/me.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var updates bson.M
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.ProfileService.UpdateProfile(c.Request.Context(), id, updates)
	if err != nil {
		switch {
		case errors.Is(err, profileSvc.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, profileSvc.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update profile", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProfileHandler handles DELETE /api/profiles/me.
func (h *ProfileHandler) DeleteProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.ProfileService.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

// UpdateFCMTokenHandler handles PUT /api/profiles/me/fcm-token.
func (h *ProfileHandler) UpdateFCMTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.ProfileService.UpdateFCMToken(c.Request.Context(), id, req.Token); err != nil {
		logger.Error("Failed to store FCM token", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}

// GetWizardStateHandler handles GET /api/profiles/me/wizard.
func (h *ProfileHandler) GetWizardStateHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.ProfileService.WizardState(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to load wizard state", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wizard state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "steps": profileSvc.WizardSteps})
}

// SaveWizardStepHandler handles PUT /api/profiles/me/wizard.
func (h *ProfileHandler) SaveWizardStepHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := authProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	state, err := h.ProfileService.SaveWizardStep(c.Request.Context(), id, req.Step)
	if err != nil {
		if errors.Is(err, profileSvc.ErrInvalidWizardStep) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save wizard step", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save wizard step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}
