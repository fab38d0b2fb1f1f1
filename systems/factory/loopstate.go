package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
)

// CreateLoopState spawns the singleton loop coordinator state anchored at
// the level's spawn point.
func CreateLoopState(ecs *ecs.ECS, anchorX, anchorY float64) *donburi.Entry {
	entry := archetypes.LoopState.Spawn(ecs)
	components.Loop.SetValue(entry, components.LoopData{
		AnchorX: anchorX,
		AnchorY: anchorY,
		// Identity 0 is reserved; -1 means the live player.
		NextIdentity: 1,
	})
	return entry
}

// CreateTransition spawns the singleton screen-fade state.
func CreateTransition(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Transition.Spawn(ecs)
	components.Transition.SetValue(entry, components.TransitionData{})
	return entry
}
