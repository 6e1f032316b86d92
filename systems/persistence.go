package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/savegame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	DebugOverlay    bool `json:"debugOverlay"`
}

const settingsKey = "settings"

var (
	gdataManager *gdata.Manager
	saveManager  *savegame.Manager
)

// InitPersistence opens the per-user data directory used for settings and
// save slots.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	saveManager = savegame.NewManager(m, cfg.Save.Slots, cfg.Save.Version)
	return nil
}

// UseSaveManager replaces the save slot manager.
func UseSaveManager(m *savegame.Manager) {
	saveManager = m
}

// Saves returns the save slot manager, or nil when persistence is not
// available.
func Saves() *savegame.Manager {
	return saveManager
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
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
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live window and debug state.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: resolutionIndex,
		DebugOverlay:    cfg.Debug.Overlay,
	}
}

var resolutionIndex = cfg.Settings.DefaultResolutionIndex

// ApplySavedSettingsGlobal applies settings during startup, before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if saved.DebugOverlay {
		cfg.Debug.Overlay = true
	}

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		resolutionIndex = saved.ResolutionIndex
		if !saved.Fullscreen {
			res := cfg.Settings.Resolutions[resolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
}
