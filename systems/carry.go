package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateCarry pins every held carryable above its carrier. Runs after
// collision so the carrier's position is final for the tick.
func UpdateCarry(ecs *ecs.ECS) {
	tags.Carryable.Each(ecs.World, func(e *donburi.Entry) {
		carry := components.Carryable.Get(e)
		if carry.CarriedBy == nil {
			return
		}
		if !carry.CarriedBy.Valid() {
			carry.CarriedBy = nil
			return
		}

		carrier := components.Object.Get(carry.CarriedBy).Object
		obj := components.Object.Get(e).Object
		obj.X = carrier.X + carrier.W/2 - obj.W/2
		obj.Y = carrier.Y + cfg.Player.CarryOffsetY
		obj.Update()

		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0
	})
}
