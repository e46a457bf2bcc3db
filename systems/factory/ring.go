package factory

import (
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateRing adds a ring to the world and to space. Scattered rings fall
// with velocity and expire.
func CreateRing(ecs *ecs.ECS, space *resolv.Space, position, velocity math.Vec2, scattered bool) *donburi.Entry {
	ring := archetypes.Ring.Spawn(ecs)

	r := cfg.Ring.Radius
	obj := resolv.NewObject(position.X-r, position.Y-r, r*2, r*2, tags.ResolvRing)
	obj.Data = ring
	space.Add(obj)
	components.Object.SetValue(ring, components.ObjectData{Object: obj})

	data := components.RingData{
		Position:  position,
		Velocity:  velocity,
		Scattered: scattered,
	}
	if scattered {
		data.Life = cfg.Ring.ScatterLife
	}
	components.Ring.SetValue(ring, data)

	return ring
}

// RemoveRing takes a ring out of the world and its space.
func RemoveRing(ecs *ecs.ECS, space *resolv.Space, ring *donburi.Entry) {
	if !ring.Valid() {
		return
	}
	space.Remove(components.Object.Get(ring).Object)
	ecs.World.Remove(ring.Entity())
}
