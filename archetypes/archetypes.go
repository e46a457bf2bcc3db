package archetypes

import (
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Input,
		components.Object,
		components.Animation,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Solid,
	)
	Spring = newArchetype(
		tags.Spring,
		components.Spring,
	)
	SlopedSolid = newArchetype(
		tags.SlopedSolid,
		components.SlopedSolid,
	)
	LayerSwitcher = newArchetype(
		tags.LayerSwitcher,
		components.LayerSwitcher,
	)
	Ring = newArchetype(
		tags.Ring,
		components.Ring,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
		components.Pause,
		components.HUD,
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
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
