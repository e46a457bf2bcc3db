// Package solid resolves the character against solid objects: boxes,
// top-solid platforms, item monitors and sloped polygons.
package solid

import (
	"math"

	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/sensor"
	dmath "github.com/yohamta/donburi/features/math"
)

// Collision is the side of the object the character was pushed out of.
type Collision int

const (
	None Collision = iota
	Left
	Right
	Up
	Down
)

func (c Collision) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// Result describes one collision pass.
type Result struct {
	Collision Collision
	// Overlapping is true while the character touches the object bounds.
	Overlapping bool
	// Crushed is true when the character is pinned between the object and the ground.
	Crushed bool
}

const (
	verticalTolerance = 4.0
	crushEpsilon      = 1e-5
)

// box is the combined extent of an object and the character.
type box struct {
	position, radius dmath.Vec2

	cxr, cyr     float64
	leftDiff     float64
	xDist        float64
	playerPos    dmath.Vec2
	playerHeight float64
}

func newBox(c *character.Character, position, radius dmath.Vec2) box {
	b := box{
		position:     position,
		radius:       radius,
		cxr:          radius.X + c.PushRadius() + 1,
		cyr:          radius.Y + c.HeightRadius(),
		playerPos:    c.Position,
		playerHeight: c.HeightRadius(),
	}
	b.leftDiff = (b.playerPos.X - position.X) + b.cxr
	b.xDist = b.leftDiff
	if b.playerPos.X > position.X {
		b.xDist = b.leftDiff - 2*b.cxr
	}
	return b
}

func (b box) overlapsX() bool {
	return b.leftDiff >= 0 && b.leftDiff <= 2*b.cxr
}

// landable checks the character stands inside the object's x span.
func (b box) landable() bool {
	cmp := b.position.X - b.playerPos.X + b.radius.X
	return cmp >= 0 && cmp < 2*b.cxr
}

// FullySolid pushes the character out of a box solid on every side.
func FullySolid(c *character.Character, position, radius dmath.Vec2) Result {
	b := newBox(c, position, radius)
	if !b.overlapsX() {
		return Result{}
	}
	topDiff := (b.playerPos.Y - position.Y) + verticalTolerance + b.cyr
	if topDiff < 0 || topDiff > 2*b.cyr {
		return Result{}
	}

	yDist := topDiff
	if b.playerPos.Y > position.Y {
		yDist = topDiff - 2*b.cyr - verticalTolerance
	}

	if math.Abs(b.xDist) > math.Abs(yDist) || math.Abs(yDist) <= verticalTolerance {
		return verticalCollision(c, b, yDist)
	}
	return horizontalCollision(c, b)
}

func verticalCollision(c *character.Character, b box, yDist float64) Result {
	switch {
	case yDist < 0:
		if c.IsGrounded() && math.Abs(c.Velocity.Y) < crushEpsilon {
			return Result{Collision: Down, Overlapping: true, Crushed: true}
		}
		if c.Velocity.Y < 0 {
			c.Position.Y -= yDist
			c.Velocity.Y = 0
			return Result{Collision: Down, Overlapping: true}
		}
	case yDist < sensor.TileSize:
		if !b.landable() || c.Velocity.Y < 0 {
			return Result{Overlapping: true}
		}
		c.Position.Y -= yDist - verticalTolerance + 1
		land(c)
		return Result{Collision: Up, Overlapping: true}
	}
	return Result{Overlapping: true}
}

func horizontalCollision(c *character.Character, b box) Result {
	movingInto := (b.xDist > 0 && c.Velocity.X > 0) || (b.xDist < 0 && c.Velocity.X < 0)
	if b.xDist != 0 && movingInto {
		c.SetGroundSpeed(0)
		c.Velocity.X = 0
	}
	c.Position.X -= b.xDist

	if b.xDist < 0 {
		return Result{Collision: Right, Overlapping: true}
	}
	return Result{Collision: Left, Overlapping: true}
}

// TopSolid only catches a character falling onto the top surface.
func TopSolid(c *character.Character, position, radius dmath.Vec2) Result {
	if c.Velocity.Y < 0 {
		return Result{}
	}
	b := newBox(c, position, radius)
	if !b.overlapsX() {
		return Result{}
	}
	surface := position.Y - radius.Y
	bottom := b.playerPos.Y + b.playerHeight + verticalTolerance
	yDist := surface - bottom
	if yDist < -sensor.TileSize || yDist >= 0 {
		return Result{}
	}
	c.Position.Y += yDist + verticalTolerance - 1
	land(c)
	return Result{Collision: Up, Overlapping: true}
}

// Monitor is the item box variant: it has no vertical tolerance and can
// never crush.
func Monitor(c *character.Character, position, radius dmath.Vec2) Result {
	b := newBox(c, position, radius)
	if !b.overlapsX() {
		return Result{}
	}
	topDiff := (b.playerPos.Y - position.Y) + b.cyr
	if topDiff < 0 || topDiff > 2*b.cyr {
		return Result{}
	}

	yDist := b.playerPos.Y - (position.Y - b.cyr)
	if yDist < sensor.TileSize && math.Abs(b.xDist) >= verticalTolerance {
		if !b.landable() || c.Velocity.Y < 0 {
			return Result{Overlapping: true}
		}
		c.Position.Y -= yDist - verticalTolerance + 1
		land(c)
		return Result{Collision: Up, Overlapping: true}
	}
	return horizontalCollision(c, b)
}

func land(c *character.Character) {
	c.SetGrounded(true)
	c.SetGroundAngle(0)
	c.SetGroundSpeed(c.Velocity.X)
	c.Velocity.Y = 0
}

// pushIfHeld switches a grounded character into Pushing when it walks into
// the object.
func pushIfHeld(c *character.Character, col Collision) {
	if !c.IsGrounded() || c.State() == character.Pushing || c.State().IsBall() {
		return
	}
	if (col == Left && c.Holds(character.ActionRight)) || (col == Right && c.Holds(character.ActionLeft)) {
		c.SetState(character.Pushing)
	}
}
