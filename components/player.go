package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector

	// Carrying is the carryable entity currently held, nil when empty.
	Carrying *donburi.Entry

	// JumpHeld mirrors the jump button's continuous state for variable
	// jump height.
	JumpHeld bool
}

var Player = donburi.NewComponentType[PlayerData]()
