// Package leveldata provides TMX level parsing for the game world.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// Level holds everything parsed from a TMX level file.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int

	Anchor SpawnPoint

	Solids     []SolidRect
	Goals      []GoalSpot
	Switches   []SwitchSpot
	Doors      []DoorSpot
	Carryables []CarryableSpot
	DeadZones  []ZoneRect
	Platforms  []PlatformPath
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is the level's anchor: where the player spawns and where
// loop restarts place clones under the anchor restart policy.
type SpawnPoint struct {
	X, Y float64
}

// GoalSpot represents a goal trigger region.
type GoalSpot struct {
	X, Y, W, H float64
	// Mode is "any", "specific", or "player"; see components.GoalMode.
	Mode string
	// RequiredIdentity only applies to "specific" goals.
	RequiredIdentity int
}

// SwitchSpot represents a floor switch. Switches and doors sharing a
// LinkID are wired together.
type SwitchSpot struct {
	X, Y   float64
	LinkID int
}

// DoorSpot represents a door blocking passage until its switch is held.
type DoorSpot struct {
	X, Y, W, H float64
	LinkID     int
}

// CarryableSpot is the initial position of a carryable crate.
type CarryableSpot struct {
	X, Y float64
}

// ZoneRect is a generic trigger rectangle (dead zones).
type ZoneRect struct {
	X, Y, W, H float64
}

// PlatformPath describes a floating platform that travels vertically
// from its spawn position and back.
type PlatformPath struct {
	X, Y, W, H float64
	// TravelY is the vertical travel distance in pixels (negative = up).
	TravelY float64
	// Seconds is the one-way travel time.
	Seconds float64
}
