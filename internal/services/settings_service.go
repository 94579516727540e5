package services

import (
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// settingsService exposes the settings singleton.
type settingsService struct {
	store *store.Store
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(s *store.Store) SettingsServicer {
	return &settingsService{store: s}
}

// GetSettings returns the current settings merged against defaults.
func (s *settingsService) GetSettings() models.Settings {
	return s.store.Settings.Get()
}

// UpdateSettings applies mutate to the current settings and persists the
// result.
func (s *settingsService) UpdateSettings(mutate func(*models.Settings)) (models.Settings, error) {
	return s.store.Settings.Update(mutate)
}
