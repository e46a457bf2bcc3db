// Package mode classifies ground angles into the four collision modes and
// exposes the basis each mode uses to orient sensors and motion.
package mode

import (
	"log"
	"math"

	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Mode is the surface the character is currently running on.
type Mode int

const (
	Floor Mode = iota
	RightWall
	Ceiling
	LeftWall
)

func (m Mode) String() string {
	switch m {
	case Floor:
		return "floor"
	case RightWall:
		return "right_wall"
	case Ceiling:
		return "ceiling"
	case LeftWall:
		return "left_wall"
	}
	return "unknown"
}

// FromGroundAngle picks the mode for a ground angle in radians.
// Breakpoints are 46, 135, 226 and 315 degrees.
func FromGroundAngle(angle float64) Mode {
	return classify(angle, 46, 135, 226, 315, "ground")
}

// FromWallAngle picks the mode used to orient push sensors.
// Breakpoints are 45, 136, 225 and 316 degrees.
func FromWallAngle(angle float64) Mode {
	return classify(angle, 45, 136, 225, 316, "wall")
}

// classify maps angle onto [0,a) floor, [a,b) right wall, [b,c) ceiling,
// [c,d) left wall and [d,360] floor, with breakpoints in degrees.
func classify(angle, a, b, c, d float64, kind string) Mode {
	switch {
	case angle >= 0 && angle < gamemath.Rad(a), angle >= gamemath.Rad(d) && angle <= gamemath.TwoPi:
		return Floor
	case angle >= gamemath.Rad(a) && angle < gamemath.Rad(b):
		return RightWall
	case angle >= gamemath.Rad(b) && angle < gamemath.Rad(c):
		return Ceiling
	case angle >= gamemath.Rad(c) && angle < gamemath.Rad(d):
		return LeftWall
	}
	log.Printf("Warning: %s angle %.2f° out of range, using floor mode", kind, gamemath.Deg(angle))
	return Floor
}

// Angle is the rotation applied to sensor offsets in this mode.
func (m Mode) Angle() float64 {
	switch m {
	case LeftWall:
		return math.Pi / 2
	case Ceiling:
		return math.Pi
	case RightWall:
		return 3 * math.Pi / 2
	}
	return 0
}

// Down is the direction of "the ground" in this mode.
func (m Mode) Down() gamemath.Direction {
	switch m {
	case RightWall:
		return gamemath.Right
	case Ceiling:
		return gamemath.Up
	case LeftWall:
		return gamemath.Left
	}
	return gamemath.Down
}

// Up is the opposite of Down.
func (m Mode) Up() gamemath.Direction {
	return m.Down().Opposite()
}

// Right is the direction of positive ground speed in this mode.
func (m Mode) Right() gamemath.Direction {
	switch m {
	case RightWall:
		return gamemath.Up
	case Ceiling:
		return gamemath.Left
	case LeftWall:
		return gamemath.Down
	}
	return gamemath.Right
}

// Left is the opposite of Right.
func (m Mode) Left() gamemath.Direction {
	return m.Right().Opposite()
}

func (m Mode) DownVec() dmath.Vec2  { return m.Down().Vector() }
func (m Mode) UpVec() dmath.Vec2    { return m.Up().Vector() }
func (m Mode) RightVec() dmath.Vec2 { return m.Right().Vector() }
func (m Mode) LeftVec() dmath.Vec2  { return m.Left().Vector() }

// IsSideways reports whether the character is running on a wall.
func (m Mode) IsSideways() bool {
	return m == RightWall || m == LeftWall
}
