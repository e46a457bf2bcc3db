package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle wraps a radian angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// InDegrees reports whether a radian angle lies in the inclusive degree range [lo, hi].
func InDegrees(rad, lo, hi float64) bool {
	d := Deg(rad)
	return d >= lo && d <= hi
}

// PlaneAngle turns a surface normal into the tangent angle of the surface.
// A flat floor (normal pointing up the screen) is 0; the result is in [0, 2π).
func PlaneAngle(normal dmath.Vec2) float64 {
	if normal.X == 0 && normal.Y == 0 {
		return 0
	}
	return NormalizeAngle(-math.Atan2(normal.Y, normal.X) - math.Pi/2)
}

// SnapAngle rounds an angle to the nearest multiple of 90 degrees.
func SnapAngle(rad float64) float64 {
	quarter := math.Pi / 2
	n := math.Mod(math.Round(rad/quarter), 4)
	return NormalizeAngle(n * quarter)
}

// Rotate rotates v by angle radians.
func Rotate(v dmath.Vec2, angle float64) dmath.Vec2 {
	sin, cos := math.Sincos(angle)
	return dmath.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
