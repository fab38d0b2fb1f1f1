package components

import (
	"github.com/hollowmoor/echoes/loop"
	"github.com/yohamta/donburi"
)

// CloneData attaches a replayer to a clone entity. Identity is duplicated
// here so population queries don't have to reach through the replayer.
type CloneData struct {
	Replayer *loop.Replayer
	Identity int

	// Carrying is the carryable entity currently held, nil when empty.
	Carrying *donburi.Entry

	FacingRight bool
}

var Clone = donburi.NewComponentType[CloneData]()
