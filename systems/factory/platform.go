package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/tags"
)

func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateFloatingPlatform spawns a platform that travels travelY pixels from
// its start and back, each leg taking the given number of seconds. The
// deterministic tween keeps platform phase identical across loop restarts.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travelY, seconds float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The floating platform moves using a *gween.Sequence of tweens,
	// moving it out and back forever.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y+travelY), float32(seconds), ease.Linear),
		gween.New(float32(y+travelY), float32(y), float32(seconds), ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
