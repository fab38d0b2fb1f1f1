package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateObjects syncs every collision object's cell registration.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}

// UpdateFloatingPlatforms advances platform tweens, carrying any riders by
// the same delta so characters (and replaying clones between corrections)
// stay planted.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e).Object

		y, _, seqDone := tw.Update(float32(tickSeconds))
		if seqDone {
			tw.Reset()
			return
		}

		dy := float64(y) - obj.Y
		if dy == 0 {
			return
		}

		// Move riders with the platform.
		components.Physics.Each(ecs.World, func(rider *donburi.Entry) {
			physics := components.Physics.Get(rider)
			if physics.OnGround != obj || physics.Frozen {
				return
			}
			riderObj := components.Object.Get(rider).Object
			riderObj.Y += dy
			riderObj.Update()
		})

		obj.Y = float64(y)
		obj.Update()
	})
}
