package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Clone            = donburi.NewTag().SetName("Clone")
	Wall             = donburi.NewTag().SetName("Wall")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Goal             = donburi.NewTag().SetName("Goal")
	Switch           = donburi.NewTag().SetName("Switch")
	Door             = donburi.NewTag().SetName("Door")
	Carryable        = donburi.NewTag().SetName("Carryable")
	DeadZone         = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlayer    = "Player"
	ResolvClone     = "Clone"
	ResolvGoal      = "goal"
	ResolvSwitch    = "switch"
	ResolvDoor      = "door"
	ResolvCarryable = "carryable"
	ResolvDeadZone  = "deadzone"
	ResolvPlatform  = "platform"
)
