package components

import (
	"github.com/lmsonic/sonicmaker/shared/leveldata"
	"github.com/lmsonic/sonicmaker/terrain"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Terrain      *terrain.Terrain
	LevelIndex   int
	Levels       []*leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
