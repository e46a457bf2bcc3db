package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	LookY      float64 // Current smoothed Y offset while looking up or crouching
	LookTimer  int     // Frames spent looking up or crouching
}

var Camera = donburi.NewComponentType[CameraData]()
