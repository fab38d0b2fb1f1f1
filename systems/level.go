package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archive"
	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/events"
	"github.com/hollowmoor/echoes/loop"
)

// completeDelayTicks is how long the completion banner stays up before the
// scene advances.
const completeDelayTicks = 180

var completeTimer int

// SubscribeLevelComplete wires the completion event to the run archive and
// best-time store. Call once when the world scene is configured.
func SubscribeLevelComplete(e *ecs.ECS, store *archive.Store) {
	completeTimer = 0
	events.LevelComplete.Subscribe(e.World, func(w donburi.World, ev events.LevelCompleteData) {
		if RecordBestTime(ev.Name, ev.Time) {
			log.Printf("new best time for %s: %.1fs", ev.Name, ev.Time)
		}
		if store == nil {
			return
		}
		if _, err := store.SaveRun(ev.Name, ev.Time, collectSequences(w)); err != nil {
			log.Printf("Warning: could not archive run: %v", err)
		}
	})
}

// collectSequences snapshots every live clone's sequence keyed by identity.
func collectSequences(w donburi.World) map[int]loop.Sequence {
	out := map[int]loop.Sequence{}
	components.Clone.Each(w, func(e *donburi.Entry) {
		clone := components.Clone.Get(e)
		out[clone.Identity] = clone.Replayer.Sequence()
	})
	return out
}

// UpdateLevelComplete counts down the banner delay after completion and
// then invokes the scene's advance callback.
func UpdateLevelComplete(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok || !components.Level.Get(levelEntry).Complete {
		return
	}

	completeTimer++
	if completeTimer == completeDelayTicks && pauseActions.Exit != nil {
		pauseActions.Exit()
	}
}
