// Package events declares the typed world events systems publish and
// subscribe to. Events are queued during a tick and flushed once per
// frame via donburi's event processor.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// CloneCreatedData fires when a recorded sequence is handed to a new clone.
type CloneCreatedData struct {
	Clone    *donburi.Entry
	Identity int
	// Evicted is the clone removed to make room, nil if under the cap.
	Evicted *donburi.Entry
}

// CloneStuckData fires when a clone enters its terminal stuck state.
type CloneStuckData struct {
	Clone    *donburi.Entry
	Identity int
}

// LoopStartedData fires when a recording session begins.
type LoopStartedData struct {
	StartedAt float64
	Manual    bool
}

// LoopEndedData fires when a recording session is captured or discarded.
type LoopEndedData struct {
	EndedAt  float64
	Duration float64
	Captured bool
}

// GoalClaimedData fires when an actor satisfies a goal's binding.
type GoalClaimedData struct {
	Goal *donburi.Entry
	// Identity of the claiming clone, -1 for the player.
	Identity int
}

// LevelCompleteData fires once all goals in the level are claimed.
type LevelCompleteData struct {
	Name string
	Time float64
}

var (
	CloneCreated  = devents.NewEventType[CloneCreatedData]()
	CloneStuck    = devents.NewEventType[CloneStuckData]()
	LoopStarted   = devents.NewEventType[LoopStartedData]()
	LoopEnded     = devents.NewEventType[LoopEndedData]()
	GoalClaimed   = devents.NewEventType[GoalClaimedData]()
	LevelComplete = devents.NewEventType[LevelCompleteData]()
)

// ProcessAll flushes every queued event to its subscribers.
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}
