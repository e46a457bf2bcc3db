// Package layerswitch swaps the character's collision layer and draw order
// when it crosses a switcher line.
package layerswitch

import (
	"github.com/lmsonic/sonicmaker/character"
	dmath "github.com/yohamta/donburi/features/math"
)

// Orientation is the direction the switcher line runs in.
type Orientation int

const (
	// Vertical lines split left (negative) from right (positive).
	Vertical Orientation = iota
	// Horizontal lines split below (negative) from above (positive).
	Horizontal
)

// Change selects what a switcher changes on the character.
type Change int

const (
	ChangeLayer Change = iota
	ChangeZIndex
	ChangeBoth
)

// DefaultLength is the default half length of a switcher line.
const DefaultLength = 50.0

type Switcher struct {
	Position    dmath.Vec2
	Length      float64
	Orientation Orientation
	Change      Change
	// GroundedOnly switches only while the character is on the ground, e.g.
	// at the top of a loop.
	GroundedOnly bool

	PositiveMask uint32
	NegativeMask uint32
	PositiveZ    int
	NegativeZ    int

	// positive is the side the character was on during the last update.
	positive bool
}

// New creates a switcher of DefaultLength that only changes layers.
func New(position dmath.Vec2, orientation Orientation, positiveMask, negativeMask uint32) *Switcher {
	return &Switcher{
		Position:     position,
		Length:       DefaultLength,
		Orientation:  orientation,
		PositiveMask: positiveMask,
		NegativeMask: negativeMask,
	}
}

// InRange reports whether p is alongside the switcher line.
func (s *Switcher) InRange(p dmath.Vec2) bool {
	along, center := p.Y, s.Position.Y
	if s.Orientation == Horizontal {
		along, center = p.X, s.Position.X
	}
	return along >= center-s.Length && along <= center+s.Length
}

// IsPositiveSide reports whether p is right of a vertical line or above a
// horizontal one.
func (s *Switcher) IsPositiveSide(p dmath.Vec2) bool {
	if s.Orientation == Horizontal {
		return p.Y <= s.Position.Y
	}
	return p.X >= s.Position.X
}

// Update switches the character when it crossed the line since the last
// update. It reports whether a switch happened.
func (s *Switcher) Update(c *character.Character) bool {
	if c == nil {
		return false
	}
	positive := s.IsPositiveSide(c.Position)
	switched := false
	if positive != s.positive && s.InRange(c.Position) && (!s.GroundedOnly || c.IsGrounded()) {
		s.apply(c, positive)
		switched = true
	}
	s.positive = positive
	return switched
}

func (s *Switcher) apply(c *character.Character, positive bool) {
	mask, z := s.NegativeMask, s.NegativeZ
	if positive {
		mask, z = s.PositiveMask, s.PositiveZ
	}
	if s.Change == ChangeLayer || s.Change == ChangeBoth {
		c.SetCollisionMask(mask)
	}
	if s.Change == ChangeZIndex || s.Change == ChangeBoth {
		c.ZIndex = z
	}
}
