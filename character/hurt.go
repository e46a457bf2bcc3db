package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

const maxScatteredRings = 32

// RingSpawn is a ring thrown out of the character when hurt.
type RingSpawn struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
}

// Hurt knocks the character away from the hazard at from and scatters its
// rings. Without rings the character dies instead.
func (c *Character) Hurt(from dmath.Vec2) []RingSpawn {
	if c.IsInvulnerable() {
		return nil
	}
	if c.rings <= 0 {
		c.Die()
		return nil
	}

	spawns := scatterRings(c.Position, c.rings)
	c.regatherRings = regatherRingsTicks

	dir := 1.0
	if c.Position.X < from.X {
		dir = -1
	}
	c.Velocity = dmath.Vec2{X: c.Config.HurtXForce * dir, Y: c.Config.HurtYForce}
	c.SetGrounded(false)
	c.standingOn = SolidRef{}
	c.SetState(Hurt)
	c.SetRings(0)
	return spawns
}

// scatterRings fans rings out in two circles: the first 16 at speed 4, the
// rest at speed 2, mirrored in pairs.
func scatterRings(origin dmath.Vec2, count int) []RingSpawn {
	if count > maxScatteredRings {
		count = maxScatteredRings
	}
	spawns := make([]RingSpawn, 0, count)
	angle := gamemath.Rad(101.25)
	speed := 4.0
	flip := false
	for i := 0; i < count; i++ {
		if i == 16 {
			speed = 2
			angle = gamemath.Rad(101.25)
		}
		sin, cos := math.Sincos(angle)
		v := dmath.Vec2{X: cos * speed, Y: -sin * speed}
		if flip {
			v.X = -v.X
			angle += gamemath.Rad(22.5)
		}
		flip = !flip
		spawns = append(spawns, RingSpawn{Position: origin, Velocity: v})
	}
	return spawns
}

// Die fires OnDie.
func (c *Character) Die() {
	if c.OnDie != nil {
		c.OnDie()
	}
}

// Spring launches the character with the given velocity.
func (c *Character) Spring(velocity dmath.Vec2) {
	c.Velocity = velocity
	c.SetGrounded(false)
	c.standingOn = SolidRef{}
	c.hasJumped = false
	c.SetState(SpringBounce)
	c.springBounce = springBounceTicks
}

// OnAttacking bounces the character off something it destroyed or hit.
func (c *Character) OnAttacking(target dmath.Vec2, boss bool) {
	if c.grounded {
		return
	}
	if boss {
		c.Velocity.X *= -0.5
		c.Velocity.Y *= -0.5
		return
	}
	if c.Position.Y > target.Y || c.Velocity.Y < 0 {
		c.Velocity.Y -= gamemath.Sign(c.Velocity.Y)
		return
	}
	c.Velocity.Y = -c.Velocity.Y
}

func (c *Character) Rings() int {
	return c.rings
}

func (c *Character) SetRings(n int) {
	if n < 0 {
		n = 0
	}
	c.rings = n
	if c.OnRingsChanged != nil {
		c.OnRingsChanged(n)
	}
}

func (c *Character) AddRings(n int) {
	c.SetRings(c.rings + n)
}

// CanGatherRings is false shortly after rings were scattered.
func (c *Character) CanGatherRings() bool {
	return (c.state != Hurt || c.invulnerability < regatherRingsTicks) && c.regatherRings <= 0
}

func (c *Character) IsInvulnerable() bool {
	return c.invulnerability > 0 || c.state == Hurt
}

func (c *Character) Invulnerability() int {
	return c.invulnerability
}
