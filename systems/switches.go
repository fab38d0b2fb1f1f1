package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateSwitches resolves pressure switches and their linked doors. A
// switch is on while any character or carryable overlaps it; a door is
// open while any switch sharing its link is on. Closed doors are solid.
func UpdateSwitches(ecs *ecs.ECS) {
	onLinks := map[int]bool{}

	tags.Switch.Each(ecs.World, func(e *donburi.Entry) {
		sw := components.Switch.Get(e)
		obj := components.Object.Get(e).Object

		pressed := obj.Check(0, 0, "character", tags.ResolvCarryable) != nil
		if pressed != sw.On {
			sw.On = pressed
			if pressed {
				PlaySFX(ecs, cfg.SoundSwitch)
			}
		}
		if sw.On {
			onLinks[sw.LinkID] = true
		}
	})

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		obj := components.Object.Get(e).Object

		open := onLinks[door.LinkID]
		if open == door.Open {
			return
		}
		door.Open = open
		if open {
			obj.RemoveTags(tags.ResolvSolid)
		} else {
			obj.AddTags(tags.ResolvSolid)
		}
	})
}
