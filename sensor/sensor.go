// Package sensor implements the directional ray probes a character uses to
// find floors, ceilings and walls on a 16px tile grid.
package sensor

import (
	"math"

	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// TileSize is the terrain grid size in pixels.
const TileSize = 16.0

// Solidity tells which sides of a surface are solid.
type Solidity int

const (
	Fully Solidity = iota
	Top
)

func (s Solidity) String() string {
	if s == Top {
		return "top"
	}
	return "fully"
}

// DetectionResult is a single sensor reading.
type DetectionResult struct {
	// Distance from the sensor to the surface along its direction.
	// Negative means the sensor is inside solid ground.
	Distance float64
	// Angle of the surface in radians, in [0, 2π).
	Angle    float64
	Solidity Solidity
	// Snap asks the reader to round Angle to a multiple of 90°.
	Snap bool
}

// Sensor is a ray probe. Position, Direction and Mask are set by its owner
// before every Sense call.
type Sensor struct {
	Position  dmath.Vec2
	Direction gamemath.Direction
	Mask      uint32

	raycaster Raycaster
	tiles     TileLookup
	last      *DetectionResult
}

// New creates a sensor. If rc also implements TileLookup it is used for tile flags.
func New(direction gamemath.Direction, mask uint32, rc Raycaster) *Sensor {
	s := &Sensor{
		Direction: direction,
		Mask:      mask,
		raycaster: rc,
	}
	if tiles, ok := rc.(TileLookup); ok {
		s.tiles = tiles
	}
	return s
}

// Sense snaps the probe to the tile grid, casts one tile ahead and applies
// regression and extension. It returns false when nothing is found.
func (s *Sensor) Sense() (DetectionResult, bool) {
	if s == nil || s.raycaster == nil {
		return DetectionResult{}, false
	}
	origin := s.Position
	snapped := snapToGrid(origin, s.Direction)
	dir := s.Direction.Vector()

	result, ok := s.cast(origin, snapped, 1)
	switch {
	case ok && result.Distance <= 0:
		back := dmath.Vec2{X: snapped.X - dir.X*TileSize, Y: snapped.Y - dir.Y*TileSize}
		if regressed, hit := s.cast(origin, back, 1); hit && regressed.Distance < TileSize {
			result = regressed
		}
	case !ok:
		result, ok = s.cast(origin, snapped, 2)
	}

	if ok {
		s.last = &result
	} else {
		s.last = nil
	}
	return result, ok
}

// Last returns the result of the most recent Sense call.
func (s *Sensor) Last() (DetectionResult, bool) {
	if s == nil || s.last == nil {
		return DetectionResult{}, false
	}
	return *s.last, true
}

func (s *Sensor) cast(origin, from dmath.Vec2, tiles float64) (DetectionResult, bool) {
	dir := s.Direction.Vector()
	to := dmath.Vec2{X: from.X + dir.X*TileSize*tiles, Y: from.Y + dir.Y*TileSize*tiles}
	hit, ok := s.raycaster.Raycast(from, to, s.Mask)
	if !ok {
		return DetectionResult{}, false
	}

	zeroNormal := hit.Normal.X == 0 && hit.Normal.Y == 0
	snap := zeroNormal
	if s.tiles != nil {
		if flags, found := s.tiles.TileFlags(hit); found {
			snap = snap || flags.Snap || flags.FullSquare
		}
	}
	solidity := Fully
	if hit.OneWay {
		solidity = Top
	}
	return DetectionResult{
		Distance: distance(s.Direction, origin, hit.Position),
		Angle:    gamemath.PlaneAngle(hit.Normal),
		Solidity: solidity,
		Snap:     snap,
	}, true
}

func distance(d gamemath.Direction, from, hit dmath.Vec2) float64 {
	switch d {
	case gamemath.Up:
		return from.Y - hit.Y
	case gamemath.Left:
		return from.X - hit.X
	case gamemath.Right:
		return hit.X - from.X
	}
	return hit.Y - from.Y
}

func snapToGrid(p dmath.Vec2, d gamemath.Direction) dmath.Vec2 {
	switch d {
	case gamemath.Down:
		p.Y -= math.Mod(p.Y, TileSize)
	case gamemath.Up:
		p.Y += TileSize - math.Mod(p.Y, TileSize)
	case gamemath.Right:
		p.X -= math.Mod(p.X, TileSize)
	case gamemath.Left:
		p.X += TileSize - math.Mod(p.X, TileSize)
	}
	return p
}
