package models

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// SpikeConfig controls unusual-spending detection.
type SpikeConfig struct {
	Enabled         bool     `json:"enabled"`
	Threshold       float64  `json:"threshold"` // percentage over the historical average
	Period          int      `json:"period"`    // trailing window in days
	MutedCategories []string `json:"mutedCategories"`
}

// Settings is the singleton user configuration record. It is stored as a
// single object, not a collection, and is merged against DefaultSettings on
// every read so fields added later are backfilled for existing users.
type Settings struct {
	Currency           string      `json:"currency"`
	Theme              Theme       `json:"theme"`
	Language           string      `json:"language"`
	UseCloudStorage    bool        `json:"useCloudStorage"`
	RemoteStoreURL     string      `json:"remoteStoreUrl,omitempty"`
	SpikeNotifications SpikeConfig `json:"spikeNotifications"`
}

// DefaultSettings returns the documented defaults for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Currency:        "USD",
		Theme:           ThemeSystem,
		Language:        "en",
		UseCloudStorage: false,
		SpikeNotifications: SpikeConfig{
			Enabled:         true,
			Threshold:       50,
			Period:          30,
			MutedCategories: []string{},
		},
	}
}
