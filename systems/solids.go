package systems

import (
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves platforms along their tweens. It runs before the
// character so a standing character is carried on the same frame.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	for entry := range components.Solid.Iter(ecs.World) {
		components.Solid.Get(entry).Advance(dt)
	}
}

// UpdateSolids resolves the character against every box solid.
func UpdateSolids(ecs *ecs.ECS) {
	c := playerCharacter(ecs)
	for entry := range components.Solid.Iter(ecs.World) {
		components.Solid.Get(entry).Update(c)
	}
}

func UpdateSlopedSolids(ecs *ecs.ECS) {
	c := playerCharacter(ecs)
	for entry := range components.SlopedSolid.Iter(ecs.World) {
		components.SlopedSolid.Get(entry).Update(c)
	}
}

// UpdateSprings resolves springs as solids and launches the character off
// their faces.
func UpdateSprings(ecs *ecs.ECS) {
	c := playerCharacter(ecs)
	for entry := range components.Spring.Iter(ecs.World) {
		components.Spring.Get(entry).Update(c)
	}
}

func UpdateLayerSwitchers(ecs *ecs.ECS) {
	c := playerCharacter(ecs)
	if c == nil {
		return
	}
	for entry := range components.LayerSwitcher.Iter(ecs.World) {
		components.LayerSwitcher.Get(entry).Update(c)
	}
}
