package components

import (
	"github.com/yohamta/donburi"
)

// LoopData is the loop coordinator's state: the ordered clone population
// (insertion order = identity order), loop timing, and the spawn anchor all
// clones and the live player return to.
type LoopData struct {
	// Clones in creation order. Entries may become invalid if destroyed
	// externally; the coordinator purges them before any aggregate query.
	Clones []*donburi.Entry

	NextIdentity int

	// Clock is the game-time in seconds, advanced once per fixed tick.
	// Recorder and replayers are all driven from this single clock.
	Clock float64

	LoopStart  float64
	LoopActive bool

	AnchorX float64
	AnchorY float64
}

var Loop = donburi.NewComponentType[LoopData]()
