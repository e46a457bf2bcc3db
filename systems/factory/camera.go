package factory

import (
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, position math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: position})
}
