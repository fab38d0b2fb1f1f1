package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoor/echoes/archive"
	"github.com/hollowmoor/echoes/assets"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/leveldata"
	"github.com/hollowmoor/echoes/systems"
	"github.com/hollowmoor/echoes/ui"
)

// MenuScene displays the main menu: level select and settings.
type MenuScene struct {
	sceneChanger SceneChanger
	store        *archive.Store
	menu         *ui.MenuUI
	levels       map[string]*leveldata.Level
	once         sync.Once
}

func NewMenuScene(sc SceneChanger, store *archive.Store) *MenuScene {
	return &MenuScene{sceneChanger: sc, store: store}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menu.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ms.menu == nil {
		return
	}
	ms.menu.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	ms.levels = levels

	progress := systems.LoadProgress()
	ms.menu = ui.NewMenuUI(names, progress.BestTimes)

	ms.menu.OnPlay = func(level string) {
		lvl, ok := ms.levels[level]
		if !ok {
			return
		}
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, lvl, ms.store))
	}
	ms.menu.OnLoopDuration = func(seconds float64) {
		cfg.Loop.LoopDuration = seconds
		saveSettings(seconds)
	}
	ms.menu.OnVolume = func(v float64) {
		systems.SetMusicVolume(v)
		systems.SetSFXVolume(v)
		saveSettings(cfg.Loop.LoopDuration)
	}
	ms.menu.OnQuit = func() {
		os.Exit(0)
	}
}

func saveSettings(loopDuration float64) {
	_ = systems.SaveSettings(&systems.SavedSettings{
		MusicVolume:  systems.MusicVolume(),
		SFXVolume:    systems.SFXVolume(),
		Fullscreen:   ebiten.IsFullscreen(),
		LoopDuration: loopDuration,
	})
}
