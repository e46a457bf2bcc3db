package systems

import (
	"log"

	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// fallMargin is how far below the level bottom the character dies.
const fallMargin = 64.0

// UpdateCharacter steps the character physics and its animation.
func UpdateCharacter(ecs *ecs.ECS) {
	entry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	c := player.Character

	c.SetInput(components.Input.Get(entry))
	c.Step(1.0 / float64(cfg.C.TPS))
	components.Animation.Get(entry).Update(c.AnimationFrames())

	if level := getLevel(ecs); level != nil && c.Position.Y > float64(level.CurrentLevel.Height)+fallMargin {
		c.Die()
	}
}

// UpdateDeaths respawns a character that died during this frame, either by
// falling out of the level, by being crushed or by being hurt without rings.
func UpdateDeaths(ecs *ecs.ECS) {
	entry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if !player.Dead {
		return
	}

	player.Deaths++
	log.Printf("Character died (%d deaths), respawning", player.Deaths)
	SavePlayerRecord(ecs)

	level := getLevel(ecs)
	if level == nil {
		return
	}
	factory.RespawnPlayer(entry, level.Terrain)
}

// SavePlayerRecord persists the best ring count for the current level.
func SavePlayerRecord(ecs *ecs.ECS) {
	entry, ok := getPlayer(ecs)
	level := getLevel(ecs)
	if !ok || level == nil {
		return
	}
	if best := components.Player.Get(entry).BestRings; best > 0 {
		SaveRecord(level.CurrentLevel.Name, best)
	}
}
