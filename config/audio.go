package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundDash
	// Interaction sounds
	SoundPickup
	SoundThrow
	SoundSwitch
	// Loop sounds
	SoundCloneSpawn
	SoundCloneStuck
	SoundLoopRestart
	SoundRetract
	SoundGoal
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths under the assets audio directory
type SoundConfig struct {
	LevelMusic string
	SFXPaths   map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		LevelMusic: "audio/music/loop.ogg",
		SFXPaths: map[SoundID]string{
			SoundJump:         "audio/sfx/jump.wav",
			SoundLand:         "audio/sfx/land.wav",
			SoundDash:         "audio/sfx/dash.wav",
			SoundPickup:       "audio/sfx/pickup.wav",
			SoundThrow:        "audio/sfx/throw.wav",
			SoundSwitch:       "audio/sfx/switch.wav",
			SoundCloneSpawn:   "audio/sfx/clone_spawn.wav",
			SoundCloneStuck:   "audio/sfx/clone_stuck.wav",
			SoundLoopRestart:  "audio/sfx/loop_restart.wav",
			SoundRetract:      "audio/sfx/retract.wav",
			SoundGoal:         "audio/sfx/goal.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
	}
}
