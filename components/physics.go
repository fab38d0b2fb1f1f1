package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	// Recorded external influence (wind, pushers), tracked separately from
	// self-propelled speed so the recorder can capture it on its own.
	ExternalForceX float64
	ExternalForceY float64

	Gravity  float64
	Friction float64
	MaxSpeed float64

	OnGround    *resolv.Object
	WallSliding *resolv.Object

	// Dash drive state
	DashFrames   int
	DashCooldown int
	DashDirX     float64
	DashDirY     float64

	// Frozen disables the whole physics step for this body. Set when a
	// clone goes stuck: movement stops at the physics level, not just at
	// the input level.
	Frozen bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
