package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"full turn", TwoPi, 0},
		{"370 degrees", Rad(370), Rad(10)},
		{"negative", Rad(-90), Rad(270)},
		{"two turns", 2*TwoPi + 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("expected angle in [0, 2π), got %f", got)
			}
		})
	}
}

func TestPlaneAngle(t *testing.T) {
	tests := []struct {
		name   string
		normal dmath.Vec2
		want   float64
	}{
		{"zero normal", dmath.Vec2{}, 0},
		{"floor", dmath.Vec2{X: 0, Y: -1}, 0},
		{"wall facing left", dmath.Vec2{X: -1, Y: 0}, 90},
		{"ceiling", dmath.Vec2{X: 0, Y: 1}, 180},
		{"wall facing right", dmath.Vec2{X: 1, Y: 0}, 270},
		{"slope rising right", dmath.Vec2{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deg(PlaneAngle(tt.normal))
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("expected %f degrees, got %f", tt.want, got)
			}
		})
	}
}

func TestSnapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10, 0},
		{44, 0},
		{46, 90},
		{200, 180},
		{350, 0},
	}
	for _, tt := range tests {
		got := Deg(SnapAngle(Rad(tt.in)))
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("SnapAngle(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(dmath.Vec2{X: 9, Y: 19}, 3*math.Pi/2)
	if math.Abs(got.X-19) > 1e-9 || math.Abs(got.Y+9) > 1e-9 {
		t.Errorf("expected (19, -9), got (%f, %f)", got.X, got.Y)
	}
}

func TestMotionDirection(t *testing.T) {
	tests := []struct {
		v    dmath.Vec2
		want Direction
	}{
		{dmath.Vec2{X: 3, Y: 1}, Right},
		{dmath.Vec2{X: -3, Y: 1}, Left},
		{dmath.Vec2{X: 1, Y: 3}, Down},
		{dmath.Vec2{X: 1, Y: -3}, Up},
		{dmath.Vec2{X: 2, Y: 2}, Down},
		{dmath.Vec2{}, Up},
	}
	for _, tt := range tests {
		if got := MotionDirection(tt.v); got != tt.want {
			t.Errorf("MotionDirection(%v): expected %s, got %s", tt.v, tt.want, got)
		}
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(0.03, 0.046875); got != 0 {
		t.Errorf("expected friction to stop small speeds, got %f", got)
	}
	if got := ApplyFriction(-1, 0.5); got != -0.5 {
		t.Errorf("expected -0.5, got %f", got)
	}
}
