package store

import (
	"encoding/json"

	"pocketledger/internal/logger"
	"pocketledger/internal/models"
)

// SettingsStore persists the singleton Settings record. Reads merge the
// stored object over the documented defaults, so setting fields introduced
// after the user's data was written are backfilled transparently.
type SettingsStore struct {
	backend Backend
}

// NewSettingsStore creates the settings accessor.
func NewSettingsStore(backend Backend) *SettingsStore {
	return &SettingsStore{backend: backend}
}

// Get returns the current settings merged against defaults. Parse failures
// degrade to pure defaults.
func (s *SettingsStore) Get() models.Settings {
	settings := models.DefaultSettings()

	raw, ok, err := s.backend.Get(KeySettings)
	if err != nil {
		logger.Get().Errorw("failed to read settings", "error", err)
		return settings
	}
	if !ok {
		return settings
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		logger.Get().Errorw("failed to parse stored settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Save overwrites the stored settings object.
func (s *SettingsStore) Save(settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.backend.Set(KeySettings, string(raw))
}

// Update applies mutate to the current settings and saves the result.
func (s *SettingsStore) Update(mutate func(*models.Settings)) (models.Settings, error) {
	settings := s.Get()
	mutate(&settings)
	return settings, s.Save(settings)
}

// Clear removes the stored settings; subsequent reads return defaults.
func (s *SettingsStore) Clear() error {
	return s.backend.Delete(KeySettings)
}
