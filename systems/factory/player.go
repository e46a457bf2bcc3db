package factory

import (
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/assets/animations"
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the character at spawn. rc is the level terrain.
func CreatePlayer(ecs *ecs.ECS, spawn math.Vec2, rc sensor.Raycaster) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, 1, 1, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	sprite := animations.NewSprite()
	components.Animation.SetValue(player, components.AnimationData{Sprite: sprite})
	components.Player.SetValue(player, components.PlayerData{Spawn: spawn})

	RespawnPlayer(player, rc)
	return player
}

// RespawnPlayer replaces the player's character with a fresh one at its
// spawn point. Deaths and the best ring count are kept.
func RespawnPlayer(player *donburi.Entry, rc sensor.Raycaster) {
	data := components.Player.Get(player)

	c := character.New(cfg.Character, rc)
	c.Position = data.Spawn
	c.SetGrounded(false)
	c.SetSprite(components.Animation.Get(player).Sprite)
	c.OnDie = func() {
		components.Player.Get(player).Dead = true
	}
	c.OnRingsChanged = func(rings int) {
		p := components.Player.Get(player)
		if rings > p.BestRings {
			p.BestRings = rings
		}
	}

	data.Character = c
	data.Dead = false
	SyncPlayerObject(player)
}

// SyncPlayerObject fits the player's resolv box to the character hitbox.
func SyncPlayerObject(player *donburi.Entry) {
	c := components.Player.Get(player).Character
	obj := components.Object.Get(player)
	w, h := c.Hitbox()
	obj.X = c.Position.X - w/2
	obj.Y = c.Position.Y - h/2
	obj.W = w
	obj.H = h
	obj.Update()
}
