package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
)

// UpdateState derives each character's animation state from its physics.
// Runs after collision so ground contact is settled for the tick.
func UpdateState(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Physics) {
			return
		}
		state := components.State.Get(e)
		physics := components.Physics.Get(e)

		next := deriveState(physics)
		if next != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}
	})
}

func deriveState(physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.DashFrames > 0:
		return cfg.Dash
	case physics.WallSliding != nil:
		return cfg.WallSlide
	case physics.OnGround == nil:
		return cfg.Jump
	case math.Abs(physics.SpeedX) > 0.1:
		return cfg.Running
	default:
		return cfg.Idle
	}
}
