package sim

import (
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

const ringTag = "ring"

// Ring is a collectable ring. Scattered rings fall, bounce and expire.
type Ring struct {
	Position  dmath.Vec2
	Velocity  dmath.Vec2
	Scattered bool
	Life      int

	object *resolv.Object
}

// RingField owns the rings of a level and a resolv space used to find the
// ones the character touches.
type RingField struct {
	space *resolv.Space
	probe *resolv.Object
	rings []*Ring
	rc    sensor.Raycaster
}

// NewRingField creates an empty field; rc may be nil, in which case
// scattered rings fall through the floor.
func NewRingField(width, height int, rc sensor.Raycaster) *RingField {
	f := &RingField{
		space: resolv.NewSpace(width, height, int(sensor.TileSize), int(sensor.TileSize)),
		probe: resolv.NewObject(0, 0, 1, 1),
		rc:    rc,
	}
	f.space.Add(f.probe)
	return f
}

func (f *RingField) Rings() []*Ring {
	return f.rings
}

// Add places a static ring.
func (f *RingField) Add(position dmath.Vec2) *Ring {
	return f.add(&Ring{Position: position})
}

// Scatter spawns the rings a hurt character drops.
func (f *RingField) Scatter(spawns []character.RingSpawn) {
	for _, s := range spawns {
		f.add(&Ring{
			Position:  s.Position,
			Velocity:  s.Velocity,
			Scattered: true,
			Life:      config.Ring.ScatterLife,
		})
	}
}

func (f *RingField) add(r *Ring) *Ring {
	d := config.Ring.Radius * 2
	r.object = resolv.NewObject(r.Position.X-config.Ring.Radius, r.Position.Y-config.Ring.Radius, d, d, ringTag)
	r.object.Data = r
	f.space.Add(r.object)
	f.rings = append(f.rings, r)
	return r
}

func (f *RingField) remove(r *Ring) {
	f.space.Remove(r.object)
	for i, other := range f.rings {
		if other == r {
			f.rings = append(f.rings[:i], f.rings[i+1:]...)
			return
		}
	}
}

// Update moves scattered rings and collects the ones c touches. It returns
// how many were collected.
func (f *RingField) Update(c *character.Character) int {
	mask := uint32(1)
	if c != nil {
		mask = c.CollisionMask()
	}
	for _, r := range append([]*Ring(nil), f.rings...) {
		if !r.Scattered {
			continue
		}
		f.fall(r, mask)
		r.Life--
		if r.Life <= 0 {
			f.remove(r)
		}
	}

	if c == nil || !c.CanGatherRings() {
		return 0
	}
	w, h := c.Hitbox()
	f.probe.X = c.Position.X - w/2
	f.probe.Y = c.Position.Y - h/2
	f.probe.W = w
	f.probe.H = h
	f.probe.Update()

	check := f.probe.Check(0, 0, ringTag)
	if check == nil {
		return 0
	}
	collected := 0
	for _, obj := range check.ObjectsByTags(ringTag) {
		r, ok := obj.Data.(*Ring)
		if !ok || !Overlaps(f.probe, obj) {
			continue
		}
		f.remove(r)
		collected++
	}
	if collected > 0 {
		c.AddRings(collected)
	}
	return collected
}

func (f *RingField) fall(r *Ring, mask uint32) {
	FallRing(&r.Position, &r.Velocity, f.rc, mask)
	r.object.X = r.Position.X - config.Ring.Radius
	r.object.Y = r.Position.Y - config.Ring.Radius
	r.object.Update()
}

// FallRing applies gravity to a scattered ring and bounces it off the floor
// found by rc. rc may be nil.
func FallRing(position, velocity *dmath.Vec2, rc sensor.Raycaster, mask uint32) {
	velocity.Y += config.Ring.ScatterGravity
	position.X += velocity.X
	position.Y += velocity.Y

	if rc == nil || velocity.Y <= 0 {
		return
	}
	radius := config.Ring.Radius
	to := dmath.Vec2{X: position.X, Y: position.Y + radius}
	if hit, ok := rc.Raycast(*position, to, mask); ok {
		position.Y = hit.Position.Y - radius
		velocity.Y *= config.Ring.BounceFactor
	}
}

// Overlaps narrows the cell based broadphase down to a box test.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
