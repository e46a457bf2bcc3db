package components

import (
	"github.com/lmsonic/sonicmaker/character"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Character *character.Character
	Spawn     math.Vec2
	// Dead is set by the character's die callback and handled at the end of
	// the character update.
	Dead      bool
	Deaths    int
	BestRings int
}

var Player = donburi.NewComponentType[PlayerData]()
