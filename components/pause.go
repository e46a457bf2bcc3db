package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. Step advances a paused game by one tick.
type PauseData struct {
	IsPaused bool
	Step     bool
}

var Pause = donburi.NewComponentType[PauseData]()
