package solid

import (
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Object is an axis-aligned solid box. Position is its center.
type Object struct {
	ID           uint64
	Position     dmath.Vec2
	WidthRadius  float64
	HeightRadius float64
	TopSolidOnly bool
	Monitor      bool

	// Velocity is the distance moved since the previous Update.
	Velocity dmath.Vec2
	// Last is the result of the previous Update.
	Last Result

	motion       tracker
	crushLatched bool
}

// tracker measures how far a solid moved between updates.
type tracker struct {
	last    dmath.Vec2
	started bool
}

func (t *tracker) delta(position dmath.Vec2) dmath.Vec2 {
	if !t.started {
		t.last = position
		t.started = true
	}
	d := dmath.Vec2{X: position.X - t.last.X, Y: position.Y - t.last.Y}
	t.last = position
	return d
}

// NewObject creates a box solid with the given half extents.
func NewObject(id uint64, position dmath.Vec2, widthRadius, heightRadius float64) *Object {
	return &Object{
		ID:           id,
		Position:     position,
		WidthRadius:  widthRadius,
		HeightRadius: heightRadius,
	}
}

// Ref is the handle a character stores while standing on the object.
func (o *Object) Ref() character.SolidRef {
	return character.SolidRef{Kind: character.SolidSimple, ID: o.ID}
}

func (o *Object) Radius() dmath.Vec2 {
	return dmath.Vec2{X: o.WidthRadius, Y: o.HeightRadius}
}

// Update carries a character standing on the object along with it, then
// resolves the collision and registers the character as standing on it.
func (o *Object) Update(c *character.Character) Result {
	o.Velocity = o.motion.delta(o.Position)
	if c == nil {
		return Result{}
	}

	standing := c.StandingOn() == o.Ref()
	if standing {
		c.Position.X += o.Velocity.X
		c.Position.Y += o.Velocity.Y
	}

	var r Result
	switch {
	case o.Monitor:
		if c.IsAttacking() {
			break
		}
		r = Monitor(c, o.Position, o.Radius())
	case o.TopSolidOnly:
		r = TopSolid(c, o.Position, o.Radius())
	default:
		r = FullySolid(c, o.Position, o.Radius())
	}

	o.Last = settle(c, o.Ref(), r, standing, &o.crushLatched)
	return o.Last
}

// settle applies the side effects shared by box and sloped solids: crush,
// standing registration, walking off and pushing.
func settle(c *character.Character, ref character.SolidRef, r Result, wasStanding bool, latch *bool) Result {
	if !r.Overlapping {
		*latch = false
	}
	if r.Crushed {
		if *latch {
			r.Crushed = false
		} else {
			*latch = true
			c.Die()
		}
	}

	switch r.Collision {
	case Up:
		if !wasStanding {
			c.StandOn(ref)
		}
	case Left, Right:
		pushIfHeld(c, r.Collision)
	}

	if wasStanding && r.Collision != Up && c.StandingOn() == ref {
		c.ClearStandingOn()
	}
	return r
}

// Sloped is a solid bounded by a polygon. Its top and bottom are sampled at
// the character's x, so standing on it follows the polygon outline.
type Sloped struct {
	ID uint64
	// Polygon is relative to Position.
	Polygon      []dmath.Vec2
	Position     dmath.Vec2
	TopSolidOnly bool

	Velocity dmath.Vec2
	Last     Result

	motion       tracker
	crushLatched bool
}

func NewSloped(id uint64, position dmath.Vec2, polygon []dmath.Vec2) *Sloped {
	return &Sloped{
		ID:       id,
		Position: position,
		Polygon:  polygon,
	}
}

func (s *Sloped) Ref() character.SolidRef {
	return character.SolidRef{Kind: character.SolidSloped, ID: s.ID}
}

// WorldPolygon returns the polygon in world space.
func (s *Sloped) WorldPolygon() []dmath.Vec2 {
	return gamemath.Translate(s.Polygon, s.Position)
}

// Extent returns the box the polygon occupies at column x.
func (s *Sloped) Extent(x float64) (center, radius dmath.Vec2) {
	polygon := s.WorldPolygon()
	minX, _, maxX, _ := gamemath.Bounds(polygon)
	top, bottom := gamemath.ColumnSpan(polygon, x)
	center = dmath.Vec2{X: (minX + maxX) / 2, Y: (top + bottom) / 2}
	radius = dmath.Vec2{X: (maxX - minX) / 2, Y: (bottom - top) / 2}
	return center, radius
}

func (s *Sloped) Update(c *character.Character) Result {
	s.Velocity = s.motion.delta(s.Position)
	if c == nil || len(s.Polygon) < 3 {
		return Result{}
	}

	standing := c.StandingOn() == s.Ref()
	if standing {
		c.Position.X += s.Velocity.X
		c.Position.Y += s.Velocity.Y
	}

	center, radius := s.Extent(c.Position.X)
	var r Result
	if s.TopSolidOnly {
		r = TopSolid(c, center, radius)
	} else {
		r = FullySolid(c, center, radius)
	}
	s.Last = settle(c, s.Ref(), r, standing, &s.crushLatched)
	return s.Last
}
