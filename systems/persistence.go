package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"

	cfg "github.com/hollowmoor/echoes/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	LoopDuration    float64 `json:"loopDuration"`
}

// SavedProgress tracks best completion times per level.
type SavedProgress struct {
	BestTimes map[string]float64 `json:"bestTimes"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "echoes",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	if ok := loadItem("settings", &settings); !ok {
		return nil, nil
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// LoadProgress loads per-level best times.
func LoadProgress() *SavedProgress {
	progress := SavedProgress{BestTimes: map[string]float64{}}
	loadItem("progress", &progress)
	if progress.BestTimes == nil {
		progress.BestTimes = map[string]float64{}
	}
	return &progress
}

// RecordBestTime stores the completion time if it beats the saved best.
// Returns true when a new best was recorded.
func RecordBestTime(level string, seconds float64) bool {
	progress := LoadProgress()
	best, ok := progress.BestTimes[level]
	if ok && best <= seconds {
		return false
	}
	progress.BestTimes[level] = seconds
	_ = saveItem("progress", progress)
	return true
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	if saved.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	if saved.LoopDuration > 0 {
		cfg.Loop.LoopDuration = saved.LoopDuration
	}
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
