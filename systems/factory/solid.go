package factory

import (
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/shared/leveldata"
	"github.com/lmsonic/sonicmaker/sim"
	"github.com/lmsonic/sonicmaker/solid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Solids use their entity id as the handle a standing character keeps.
func entityID(entry *donburi.Entry) uint64 {
	return uint64(entry.Entity())
}

func CreateSolid(ecs *ecs.ECS, spawn leveldata.SolidSpawn) *donburi.Entry {
	entry := archetypes.Solid.Spawn(ecs)
	components.Solid.SetValue(entry, components.SolidData{
		Platform: sim.NewPlatform(entityID(entry), spawn),
	})
	return entry
}

func CreateSpring(ecs *ecs.ECS, spawn leveldata.SpringSpawn) *donburi.Entry {
	entry := archetypes.Spring.Spawn(ecs)
	components.Spring.SetValue(entry, components.SpringData{
		Spring: sim.NewSpring(entityID(entry), spawn),
	})
	return entry
}

func CreateSlopedSolid(ecs *ecs.ECS, spawn leveldata.SlopedSolidSpawn) *donburi.Entry {
	entry := archetypes.SlopedSolid.Spawn(ecs)
	sloped := solid.NewSloped(entityID(entry), math.Vec2{X: spawn.X, Y: spawn.Y}, sim.Vecs(spawn.Points))
	sloped.TopSolidOnly = spawn.TopSolidOnly
	components.SlopedSolid.SetValue(entry, components.SlopedSolidData{Sloped: sloped})
	return entry
}

func CreateLayerSwitcher(ecs *ecs.ECS, spawn leveldata.SwitcherSpawn) *donburi.Entry {
	entry := archetypes.LayerSwitcher.Spawn(ecs)
	components.LayerSwitcher.SetValue(entry, components.LayerSwitcherData{
		Switcher: sim.NewSwitcher(spawn),
	})
	return entry
}
