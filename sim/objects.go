package sim

import (
	"log"

	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/layerswitch"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	"github.com/lmsonic/sonicmaker/shared/leveldata"
	"github.com/lmsonic/sonicmaker/solid"
	"github.com/lmsonic/sonicmaker/terrain"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	springRadiusX = 16.0
	springRadiusY = 8.0
	// springLockTicks keeps horizontal springs from being undone by input.
	springLockTicks = 16
)

// Vecs converts level points into vectors.
func Vecs(points []leveldata.Point) []dmath.Vec2 {
	out := make([]dmath.Vec2, len(points))
	for i, p := range points {
		out[i] = dmath.Vec2{X: p.X, Y: p.Y}
	}
	return out
}

// BuildTerrain adds every collision tile and terrain shape of a level.
func BuildTerrain(data *leveldata.Level) *terrain.Terrain {
	width, height := max(data.Width, int(sensor.TileSize)), max(data.Height, int(sensor.TileSize))
	t := terrain.New(width, height)
	for _, tile := range data.Tiles {
		t.AddTile(terrain.Tile(tile))
	}
	for _, shape := range data.Terrain {
		t.AddPolygon(Vecs(shape.Points), shape.Layers, shape.OneWay, sensor.TileFlags{Snap: shape.Snap})
	}
	return t
}

// Platform is a box solid that may travel back and forth along a tween.
type Platform struct {
	*solid.Object
	Origin dmath.Vec2
	Offset dmath.Vec2

	tween *gween.Sequence
}

// NewPlatform creates a platform from a Tiled rectangle.
func NewPlatform(id uint64, s leveldata.SolidSpawn) *Platform {
	center := dmath.Vec2{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
	obj := solid.NewObject(id, center, s.Width/2, s.Height/2)
	obj.TopSolidOnly = s.TopSolidOnly
	obj.Monitor = s.Monitor

	p := &Platform{Object: obj, Origin: center}
	if s.Moves() {
		p.Offset = dmath.Vec2{X: s.MoveX, Y: s.MoveY}
		leg := float32(s.MoveSeconds)
		p.tween = gween.NewSequence()
		p.tween.Add(
			gween.New(0, 1, leg, ease.InOutSine),
			gween.New(1, 0, leg, ease.InOutSine),
		)
	}
	return p
}

func (p *Platform) Moving() bool {
	return p.tween != nil
}

// Advance moves the platform dt seconds along its path. The solid picks up
// the displacement as its velocity on the next Update.
func (p *Platform) Advance(dt float64) {
	if p.tween == nil {
		return
	}
	progress, _, done := p.tween.Update(float32(dt))
	if done {
		p.tween.Reset()
	}
	p.Position = dmath.Vec2{
		X: p.Origin.X + p.Offset.X*float64(progress),
		Y: p.Origin.Y + p.Offset.Y*float64(progress),
	}
}

// Spring is a solid that launches the character away from its face.
type Spring struct {
	*solid.Object
	Power     float64
	Direction gamemath.Direction
}

func NewSpring(id uint64, s leveldata.SpringSpawn) *Spring {
	obj := solid.NewObject(id, dmath.Vec2{X: s.X, Y: s.Y}, springRadiusX, springRadiusY)
	return &Spring{Object: obj, Power: s.Power, Direction: parseDirection(s.Direction)}
}

func parseDirection(s string) gamemath.Direction {
	switch s {
	case "up", "":
		return gamemath.Up
	case "down":
		return gamemath.Down
	case "left":
		return gamemath.Left
	case "right":
		return gamemath.Right
	}
	log.Printf("Warning: unknown spring direction %q, using up", s)
	return gamemath.Up
}

// Update resolves the spring as a solid and fires it when the character
// touches its face.
func (s *Spring) Update(c *character.Character) solid.Result {
	r := s.Object.Update(c)
	if c == nil {
		return r
	}
	switch {
	case s.Direction == gamemath.Up && r.Collision == solid.Up:
		c.Spring(dmath.Vec2{X: c.Velocity.X, Y: -s.Power})
	case s.Direction == gamemath.Down && r.Collision == solid.Down:
		c.Spring(dmath.Vec2{X: c.Velocity.X, Y: s.Power})
	case s.Direction == gamemath.Left && r.Collision == solid.Left:
		s.launchHorizontally(c, -1)
	case s.Direction == gamemath.Right && r.Collision == solid.Right:
		s.launchHorizontally(c, 1)
	}
	return r
}

func (s *Spring) launchHorizontally(c *character.Character, dir float64) {
	if c.IsGrounded() {
		c.SetGroundSpeed(dir * s.Power)
		c.SetControlLock(springLockTicks)
	}
	c.Velocity.X = dir * s.Power
	c.SetFacingLeft(dir < 0)
}

// NewSwitcher creates a layer switcher from its Tiled object.
func NewSwitcher(s leveldata.SwitcherSpawn) *layerswitch.Switcher {
	orientation := layerswitch.Vertical
	if s.Horizontal {
		orientation = layerswitch.Horizontal
	}
	sw := layerswitch.New(dmath.Vec2{X: s.X, Y: s.Y}, orientation, s.PositiveLayer, s.NegativeLayer)
	sw.Length = s.Length
	sw.GroundedOnly = s.GroundedOnly
	sw.PositiveZ = s.PositiveZ
	sw.NegativeZ = s.NegativeZ
	switch s.Change {
	case "z_index":
		sw.Change = layerswitch.ChangeZIndex
	case "both":
		sw.Change = layerswitch.ChangeBoth
	case "layer", "":
	default:
		log.Printf("Warning: unknown switcher change %q, using layer", s.Change)
	}
	return sw
}
