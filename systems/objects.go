package systems

import (
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every resolv object in its space cells, fitting
// the player's box to the character first.
func UpdateObjects(ecs *ecs.ECS) {
	if entry, ok := getPlayer(ecs); ok {
		factory.SyncPlayerObject(entry)
	}
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
