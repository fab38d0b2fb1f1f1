package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/assets"
	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, "assets")
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on
// first play. Missing files are tolerated; those sounds stay silent.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		_ = globalAudioLoader.PreloadSFX(path)
	}
}

// PlaySFX queues a sound effect for this frame.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// UpdateAudio drains the pending SFX queue.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayMusic starts looping music from the given path, replacing whatever
// is playing.
func PlayMusic(musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		globalMusicKey = ""
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// SetMusicVolume adjusts music volume, applied to the active player.
func SetMusicVolume(v float64) {
	globalMusicVolume = v
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(v)
	}
}

// SetSFXVolume adjusts effect volume for subsequent plays.
func SetSFXVolume(v float64) {
	globalSFXVolume = v
}

// MusicVolume returns the current music volume.
func MusicVolume() float64 { return globalMusicVolume }

// SFXVolume returns the current effect volume.
func SFXVolume() float64 { return globalSFXVolume }
