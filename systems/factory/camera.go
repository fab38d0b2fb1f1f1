package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archetypes"
	"github.com/hollowmoor/echoes/components"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
}
