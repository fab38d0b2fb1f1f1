package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/tags"
)

// CreateSwitch spawns a pressure switch. The switch closes while any
// character or carryable rests on it.
func CreateSwitch(ecs *ecs.ECS, x, y float64, linkID int) *donburi.Entry {
	sw := archetypes.Switch.Spawn(ecs)

	w, h := float64(cfg.Interactable.SwitchWidth), float64(cfg.Interactable.SwitchHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSwitch)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = sw

	components.Object.SetValue(sw, components.ObjectData{Object: obj})
	components.Switch.SetValue(sw, components.SwitchData{LinkID: linkID})
	addToSpace(ecs, obj)

	return sw
}

// CreateDoor spawns a door. Closed doors carry the solid tag and block
// movement like a wall; opening strips the tag.
func CreateDoor(ecs *ecs.ECS, x, y, w, h float64, linkID int) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDoor, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = door

	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.Door.SetValue(door, components.DoorData{LinkID: linkID})
	addToSpace(ecs, obj)

	return door
}

func CreateCarryable(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	crate := archetypes.Carryable.Spawn(ecs)

	w, h := float64(cfg.Interactable.CrateSize), float64(cfg.Interactable.CrateSize)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCarryable)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = crate

	components.Object.SetValue(crate, components.ObjectData{Object: obj})
	components.Carryable.SetValue(crate, components.CarryableData{})
	components.Physics.SetValue(crate, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Interactable.CrateFriction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	addToSpace(ecs, obj)

	return crate
}

func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return zone
}
