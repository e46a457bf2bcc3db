package systems

import (
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getLevel returns the loaded level, or nil before the scene is configured.
func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(entry)
	if level.CurrentLevel == nil || level.Terrain == nil {
		return nil
	}
	return level
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

func getPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// playerCharacter returns the character of the player, or nil.
func playerCharacter(ecs *ecs.ECS) *character.Character {
	entry, ok := getPlayer(ecs)
	if !ok {
		return nil
	}
	return components.Player.Get(entry).Character
}
