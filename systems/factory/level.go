package factory

import (
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/assets"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

// CreateLevelAtIndex loads every embedded level and builds the terrain of
// the selected one.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels := assets.NewLevelLoader().MustLoadLevels()
	if len(levels) == 0 {
		panic("No levels found in assets/levels directory")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	current := levels[levelIndex]
	components.Level.SetValue(level, components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
		Terrain:      sim.BuildTerrain(current),
	})

	return level
}
