package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

// CreateClone spawns a clone body at the sequence's first recorded position.
// The replayer is created but not started; the loop coordinator starts it.
func CreateClone(ecs *ecs.ECS, seq loop.Sequence, identity int) *donburi.Entry {
	clone := archetypes.Clone.Spawn(ecs)

	x, y := 0.0, 0.0
	if len(seq) > 0 {
		x, y = seq[0].Position.X, seq[0].Position.Y
	}

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.AddTags("character", tags.ResolvClone)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)))
	obj.Data = clone
	components.Object.SetValue(clone, components.ObjectData{Object: obj})

	components.Clone.SetValue(clone, components.CloneData{
		Replayer: loop.NewReplayer(seq, identity),
		Identity: identity,
	})
	components.State.SetValue(clone, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(clone, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	addToSpace(ecs, obj)

	return clone
}
