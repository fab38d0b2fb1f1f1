package config

import "image/color"

// PlayerConfig contains all character-related configuration values. Clones
// share these with the live player so replayed commands land on identical
// movement mechanics.
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	JumpCutSpeed float64 // upward speed cap applied on early jump release
	Acceleration float64
	MaxSpeed     float64

	// Physics
	Gravity  float64
	Friction float64

	// Dash mechanics
	DashSpeed          float64
	DashFrames         int // frames of dash drive
	DashCooldownFrames int

	// Carry/throw mechanics
	ThrowSpeedX   float64
	ThrowSpeedY   float64
	CarryOffsetY  float64 // carried object offset above the carrier
	InteractRange float64 // pixels

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity        float64
	MaxFallSpeed   float64
	WallSlideSpeed float64

	// Decay applied to recorded external force per tick
	ExternalForceDecay float64
}

// LoopConfig contains the record/replay cycle configuration. This is the
// recognized option surface of the loop core.
type LoopConfig struct {
	SampleInterval    float64 // seconds between samples (50 Hz default)
	MaxRecordDuration float64 // recorder safety ceiling, seconds
	LoopDuration      float64 // automatic loop cadence, seconds
	MaxClones         int     // population cap; oldest evicted first

	ManualTriggerEnabled bool // allow snapshotting a clone on demand

	// RestartAtAnchor selects the loop-wrap repositioning policy: true
	// snaps a wrapping clone back to the spawn anchor (baseline), false
	// snaps it to its own first recorded position.
	RestartAtAnchor bool

	// ResetPlayerOnSnapshot returns the live player to the anchor when a
	// clone is created.
	ResetPlayerOnSnapshot bool
}

// InteractableConfig contains switch, door and crate dimensions
type InteractableConfig struct {
	SwitchWidth   int
	SwitchHeight  int
	CrateSize     int
	CrateFriction float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera follows (0.0-1.0)
}

// TransitionConfig contains the loop-boundary screen fade configuration
type TransitionConfig struct {
	FadeOutSeconds float32
	FadeInSeconds  float32
	MaxAlpha       float32
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	LoopBarWidth  float64
	LoopBarHeight float64
	Margin        float64

	LoopBarBgColor color.RGBA
	LoopBarFgColor color.RGBA
	TextColor      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // skip menu and go directly to the game
	DrawHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Loop LoopConfig
var Interactable InteractableConfig
var Camera CameraConfig
var Transition TransitionConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	CloneBlue    = color.RGBA{R: 110, G: 160, B: 255, A: 255}
	CloneGray    = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	GoalGold     = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Echoes",
	}

	Physics = PhysicsConfig{
		Gravity:            0.75,
		MaxFallSpeed:       10.0,
		WallSlideSpeed:     1.0,
		ExternalForceDecay: 0.9,
	}

	Player = PlayerConfig{
		JumpSpeed:    15.0,
		JumpCutSpeed: 4.0,
		Acceleration: 0.75,
		MaxSpeed:     6.0,

		Gravity:  0.75,
		Friction: 0.5,

		DashSpeed:          12.0,
		DashFrames:         10,
		DashCooldownFrames: 45,

		ThrowSpeedX:   8.0,
		ThrowSpeedY:   -4.0,
		CarryOffsetY:  -18.0,
		InteractRange: 24.0,

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Loop = LoopConfig{
		SampleInterval:    0.02,
		MaxRecordDuration: 30.0,
		LoopDuration:      15.0,
		MaxClones:         10,

		ManualTriggerEnabled:  true,
		RestartAtAnchor:       true,
		ResetPlayerOnSnapshot: true,
	}

	Interactable = InteractableConfig{
		SwitchWidth:   16,
		SwitchHeight:  10,
		CrateSize:     14,
		CrateFriction: 0.6,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Transition = TransitionConfig{
		FadeOutSeconds: 0.25,
		FadeInSeconds:  0.35,
		MaxAlpha:       0.8,
	}

	UI = UIConfig{
		LoopBarWidth:  130,
		LoopBarHeight: 8,
		Margin:        10,

		LoopBarBgColor: color.RGBA{40, 40, 40, 255},
		LoopBarFgColor: color.RGBA{110, 160, 255, 255},
		TextColor:      White,
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		DrawHitboxes: false,
	}
}
