package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-geom/components"
	"github.com/quasilyte/gdata"
)

const settingsKey = "viewer-settings"

// SavedSettings represents the viewer state stored on disk
type SavedSettings struct {
	ShowColliders bool `json:"showColliders"`
	ShowOccluders bool `json:"showOccluders"`
	LevelIndex    int  `json:"levelIndex"`
}

// settingsStore is the subset of *gdata.Manager used here.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-geom",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the overlay toggles and the level being viewed.
func SaveCurrentSettings(s *components.SettingsData, levelIndex int) {
	_ = SaveSettings(&SavedSettings{
		ShowColliders: s.ShowColliders,
		ShowOccluders: s.ShowOccluders,
		LevelIndex:    levelIndex,
	})
}

// Apply returns the saved toggles, or the defaults when nothing was saved.
func (s *SavedSettings) Apply() components.SettingsData {
	if s == nil {
		return DefaultSettings()
	}
	return components.SettingsData{
		ShowColliders: s.ShowColliders,
		ShowOccluders: s.ShowOccluders,
	}
}
