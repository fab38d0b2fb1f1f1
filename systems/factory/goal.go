package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/tags"
)

func CreateGoal(ecs *ecs.ECS, x, y, w, h float64, mode components.GoalMode, requiredIdentity int) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	components.Goal.SetValue(goal, components.GoalData{
		Mode:             mode,
		RequiredIdentity: requiredIdentity,
		ClaimedBy:        -1,
	})
	addToSpace(ecs, obj)

	return goal
}
