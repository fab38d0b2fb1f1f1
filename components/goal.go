package components

import "github.com/yohamta/donburi"

// GoalMode restricts which actor may satisfy a goal.
type GoalMode int

const (
	// GoalAnyClone accepts any replaying clone.
	GoalAnyClone GoalMode = iota
	// GoalSpecificClone accepts only the clone with RequiredIdentity.
	GoalSpecificClone
	// GoalPlayerOnly accepts only the live player.
	GoalPlayerOnly
)

type GoalData struct {
	Mode             GoalMode
	RequiredIdentity int

	// Claimed goals never fire again within a puzzle attempt.
	Claimed   bool
	ClaimedBy int // claiming clone identity, -1 for the live player
}

var Goal = donburi.NewComponentType[GoalData]()
