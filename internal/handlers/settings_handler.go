package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// SettingsHandler handles settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the request payload for updating settings.
// Absent fields keep their current values.
type UpdateSettingsRequest struct {
	Currency           *string             `json:"currency" binding:"omitempty,iso4217"`
	Theme              *models.Theme       `json:"theme" binding:"omitempty,theme"`
	Language           *string             `json:"language" binding:"omitempty,min=2,max=10"`
	UseCloudStorage    *bool               `json:"useCloudStorage"`
	RemoteStoreURL     *string             `json:"remoteStoreUrl" binding:"omitempty,url"`
	SpikeNotifications *SpikeConfigRequest `json:"spikeNotifications"`
}

// SpikeConfigRequest represents the spike-detection portion of a settings update.
type SpikeConfigRequest struct {
	Enabled         *bool    `json:"enabled"`
	Threshold       *float64 `json:"threshold" binding:"omitempty,gt=0"`
	Period          *int     `json:"period" binding:"omitempty,gt=0"`
	MutedCategories []string `json:"mutedCategories"`
}

// GetSettings handles retrieving the settings singleton.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.settingsService.GetSettings()})
}

// UpdateSettings handles a partial settings update.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(func(s *models.Settings) {
		if req.Currency != nil {
			s.Currency = *req.Currency
		}
		if req.Theme != nil {
			s.Theme = *req.Theme
		}
		if req.Language != nil {
			s.Language = *req.Language
		}
		if req.UseCloudStorage != nil {
			s.UseCloudStorage = *req.UseCloudStorage
		}
		if req.RemoteStoreURL != nil {
			s.RemoteStoreURL = *req.RemoteStoreURL
		}
		if req.SpikeNotifications != nil {
			if req.SpikeNotifications.Enabled != nil {
				s.SpikeNotifications.Enabled = *req.SpikeNotifications.Enabled
			}
			if req.SpikeNotifications.Threshold != nil {
				s.SpikeNotifications.Threshold = *req.SpikeNotifications.Threshold
			}
			if req.SpikeNotifications.Period != nil {
				s.SpikeNotifications.Period = *req.SpikeNotifications.Period
			}
			if req.SpikeNotifications.MutedCategories != nil {
				s.SpikeNotifications.MutedCategories = req.SpikeNotifications.MutedCategories
			}
		}
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
