package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateClones advances every replaying clone against the shared game
// clock. A clone whose hard-corrected position lands inside a solid (a
// door that was open during recording and is closed now) goes stuck.
func UpdateClones(ecs *ecs.ECS) {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Loop.Get(loopEntry).Clock

	tags.Clone.Each(ecs.World, func(e *donburi.Entry) {
		clone := components.Clone.Get(e)
		if clone.Replayer.State() != loop.StateReplaying {
			return
		}

		drv := &entryDriver{ecs: ecs, entry: e}
		clone.Replayer.Step(clock, drv)

		if embeddedInSolid(e) {
			StickClone(ecs, e)
		}
	})
}

// embeddedInSolid reports whether the entity's body overlaps level
// geometry after replay correction. A grounded touch does not count; the
// check shrinks the probe inward so only real penetration trips it.
func embeddedInSolid(e *donburi.Entry) bool {
	obj := components.Object.Get(e).Object
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		overlapX := min(obj.X+obj.W, solid.X+solid.W) - max(obj.X, solid.X)
		overlapY := min(obj.Y+obj.H, solid.Y+solid.H) - max(obj.Y, solid.Y)
		if overlapX > 2 && overlapY > 2 {
			return true
		}
	}
	return false
}
