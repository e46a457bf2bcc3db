package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is one of the four axis-aligned directions in screen space (y grows down).
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Vector returns the unit vector pointing in d.
func (d Direction) Vector() dmath.Vec2 {
	switch d {
	case Up:
		return dmath.Vec2{X: 0, Y: -1}
	case Left:
		return dmath.Vec2{X: -1, Y: 0}
	case Right:
		return dmath.Vec2{X: 1, Y: 0}
	}
	return dmath.Vec2{X: 0, Y: 1}
}

// Opposite returns the direction facing away from d.
func (d Direction) Opposite() Direction {
	switch d {
	case Down:
		return Up
	case Up:
		return Down
	case Left:
		return Right
	}
	return Left
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// MotionDirection classifies a velocity by its dominant axis.
// Ties go to the vertical axis; zero velocity counts as moving up.
func MotionDirection(v dmath.Vec2) Direction {
	if math.Abs(v.X) > math.Abs(v.Y) {
		if v.X > 0 {
			return Right
		}
		return Left
	}
	if v.Y > 0 {
		return Down
	}
	return Up
}
