package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/leveldata"
)

// CreateLevel builds the full entity population for a parsed level: the
// collision space, geometry, interactables, goals and the level entity
// itself. The player and loop state are created separately.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	CreateSpace(ecs, lvl.MapWidth, lvl.MapHeight, 16, 16)

	for _, s := range lvl.Solids {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}
	for _, g := range lvl.Goals {
		CreateGoal(ecs, g.X, g.Y, g.W, g.H, goalMode(g.Mode), g.RequiredIdentity)
	}
	for _, s := range lvl.Switches {
		CreateSwitch(ecs, s.X, s.Y, s.LinkID)
	}
	for _, d := range lvl.Doors {
		CreateDoor(ecs, d.X, d.Y, d.W, d.H, d.LinkID)
	}
	for _, c := range lvl.Carryables {
		CreateCarryable(ecs, c.X, c.Y)
	}
	for _, z := range lvl.DeadZones {
		CreateDeadZone(ecs, z.X, z.Y, z.W, z.H)
	}
	for _, p := range lvl.Platforms {
		CreateFloatingPlatform(ecs, p.X, p.Y, p.W, p.H, p.TravelY, p.Seconds)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Current: lvl})
	return entry
}

func goalMode(mode string) components.GoalMode {
	switch mode {
	case "specific":
		return components.GoalSpecificClone
	case "player":
		return components.GoalPlayerOnly
	default:
		return components.GoalAnyClone
	}
}
