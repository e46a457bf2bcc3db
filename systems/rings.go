package systems

import (
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/sim"
	"github.com/lmsonic/sonicmaker/systems/factory"
	"github.com/lmsonic/sonicmaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRings moves scattered rings, expires old ones and collects the rings
// the character's hitbox touches.
func UpdateRings(ecs *ecs.ECS) {
	space := getSpace(ecs)
	level := getLevel(ecs)
	if space == nil || level == nil {
		return
	}

	c := playerCharacter(ecs)
	mask := uint32(1)
	if c != nil {
		mask = c.CollisionMask()
	}

	var expired []*donburi.Entry
	for entry := range components.Ring.Iter(ecs.World) {
		ring := components.Ring.Get(entry)
		if !ring.Scattered {
			continue
		}
		sim.FallRing(&ring.Position, &ring.Velocity, level.Terrain, mask)
		obj := components.Object.Get(entry)
		obj.X = ring.Position.X - cfg.Ring.Radius
		obj.Y = ring.Position.Y - cfg.Ring.Radius
		obj.Update()

		ring.Life--
		if ring.Life <= 0 {
			expired = append(expired, entry)
		}
	}
	for _, entry := range expired {
		factory.RemoveRing(ecs, space, entry)
	}

	collectRings(ecs)
}

func collectRings(ecs *ecs.ECS) {
	playerEntry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	c := components.Player.Get(playerEntry).Character
	if !c.CanGatherRings() {
		return
	}

	factory.SyncPlayerObject(playerEntry)
	probe := components.Object.Get(playerEntry)
	check := probe.Check(0, 0, tags.ResolvRing)
	if check == nil {
		return
	}

	space := getSpace(ecs)
	collected := 0
	for _, obj := range check.ObjectsByTags(tags.ResolvRing) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !sim.Overlaps(probe.Object, obj) {
			continue
		}
		factory.RemoveRing(ecs, space, entry)
		collected++
	}
	if collected > 0 {
		c.AddRings(collected)
	}
}

// HurtPlayer damages the character as if hit from just in front of it and
// scatters its rings.
func HurtPlayer(ecs *ecs.ECS) {
	space := getSpace(ecs)
	c := playerCharacter(ecs)
	if space == nil || c == nil || c.IsInvulnerable() {
		return
	}
	from := c.Position
	if c.FacingLeft() {
		from.X -= 8
	} else {
		from.X += 8
	}
	for _, spawn := range c.Hurt(from) {
		factory.CreateRing(ecs, space, spawn.Position, spawn.Velocity, true)
	}
}
