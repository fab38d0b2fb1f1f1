package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Input,
		components.Recorder,
	)
	Clone = newArchetype(
		tags.Clone,
		components.Clone,
		components.Object,
		components.Physics,
		components.State,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	Switch = newArchetype(
		tags.Switch,
		components.Switch,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
	)
	Carryable = newArchetype(
		tags.Carryable,
		components.Carryable,
		components.Object,
		components.Physics,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	LoopState = newArchetype(
		components.Loop,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Transition = newArchetype(
		components.Transition,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
