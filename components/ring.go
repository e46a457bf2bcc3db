package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type RingData struct {
	Position  math.Vec2
	Velocity  math.Vec2
	Scattered bool
	Life      int // Frames left for a scattered ring
}

var Ring = donburi.NewComponentType[RingData]()
