package components

import (
	"github.com/lmsonic/sonicmaker/layerswitch"
	"github.com/lmsonic/sonicmaker/sim"
	"github.com/lmsonic/sonicmaker/solid"
	"github.com/yohamta/donburi"
)

// SolidData is a box solid. Moving platforms carry their own tween.
type SolidData struct {
	*sim.Platform
}

var Solid = donburi.NewComponentType[SolidData]()

type SpringData struct {
	*sim.Spring
}

var Spring = donburi.NewComponentType[SpringData]()

type SlopedSolidData struct {
	*solid.Sloped
}

var SlopedSolid = donburi.NewComponentType[SlopedSolidData]()

type LayerSwitcherData struct {
	*layerswitch.Switcher
}

var LayerSwitcher = donburi.NewComponentType[LayerSwitcherData]()
