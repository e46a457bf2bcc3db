// Package terrain stores level collision geometry in a resolv space and
// answers the raycasts sensors make against it.
package terrain

import (
	"fmt"
	"log"

	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// ResolvTag marks every terrain object in the space.
const ResolvTag = "terrain"

// AllLayers matches shapes on any collision layer.
const AllLayers uint32 = 0xFFFFFFFF

// Slope kinds accepted by AddTile, matching the "slope" tile property.
const (
	Slope45UpRight     = "45_up_right"
	Slope45UpLeft      = "45_up_left"
	Slope22UpRightLow  = "22_up_right_low"
	Slope22UpRightHigh = "22_up_right_high"
	Slope22UpLeftLow   = "22_up_left_low"
	Slope22UpLeftHigh  = "22_up_left_high"
)

// LayerTag is the resolv tag for collision layer bit.
func LayerTag(bit int) string {
	return fmt.Sprintf("layer%d", bit)
}

// Shape is one solid piece of terrain.
type Shape struct {
	ID      int
	Polygon []dmath.Vec2
	OneWay  bool
	Flags   sensor.TileFlags
	Layers  uint32

	object  *resolv.Object
	normals []dmath.Vec2
}

// Object returns the resolv object backing the shape.
func (s *Shape) Object() *resolv.Object {
	return s.object
}

// Tile describes a grid-aligned terrain tile.
type Tile struct {
	Col, Row int
	// Slope is one of the Slope* kinds; empty means a full square.
	Slope  string
	FlipY  bool
	OneWay bool
	Snap   bool
	Layers uint32
}

// Terrain is a set of shapes indexed by a resolv space.
type Terrain struct {
	space  *resolv.Space
	shapes []*Shape
	nextID int
}

// New creates terrain covering width x height pixels.
func New(width, height int) *Terrain {
	return NewWithSpace(resolv.NewSpace(width, height, int(sensor.TileSize), int(sensor.TileSize)))
}

// NewWithSpace creates terrain that shares an existing space.
func NewWithSpace(space *resolv.Space) *Terrain {
	return &Terrain{space: space}
}

func (t *Terrain) Space() *resolv.Space {
	return t.space
}

func (t *Terrain) Shapes() []*Shape {
	return t.shapes
}

// AddTile adds a 16x16 tile, full or sloped.
func (t *Terrain) AddTile(tile Tile) *Shape {
	points, full := tilePolygon(tile.Slope)
	origin := dmath.Vec2{X: float64(tile.Col) * sensor.TileSize, Y: float64(tile.Row) * sensor.TileSize}
	for i := range points {
		if tile.FlipY {
			points[i].Y = sensor.TileSize - points[i].Y
		}
		points[i].X += origin.X
		points[i].Y += origin.Y
	}
	flags := sensor.TileFlags{Snap: tile.Snap, FullSquare: full}
	return t.AddPolygon(points, tile.Layers, tile.OneWay, flags)
}

// AddPolygon adds an arbitrary simple polygon in world coordinates.
func (t *Terrain) AddPolygon(points []dmath.Vec2, layers uint32, oneWay bool, flags sensor.TileFlags) *Shape {
	if layers == 0 {
		layers = 1
	}
	shape := &Shape{
		ID:      t.nextID,
		Polygon: points,
		OneWay:  oneWay,
		Flags:   flags,
		Layers:  layers,
		normals: outwardNormals(points),
	}
	t.nextID++

	minX, minY, maxX, maxY := gamemath.Bounds(points)
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		log.Printf("Warning: degenerate terrain polygon at (%.1f, %.1f)", minX, minY)
	}
	objTags := []string{ResolvTag}
	for bit := 0; bit < 32; bit++ {
		if layers&(1<<bit) != 0 {
			objTags = append(objTags, LayerTag(bit))
		}
	}
	obj := resolv.NewObject(minX, minY, w, h, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = shape
	shape.object = obj

	t.space.Add(obj)
	t.shapes = append(t.shapes, shape)
	return shape
}

// Remove takes a shape out of the terrain.
func (t *Terrain) Remove(shape *Shape) {
	for i, s := range t.shapes {
		if s == shape {
			t.space.Remove(s.object)
			t.shapes = append(t.shapes[:i], t.shapes[i+1:]...)
			return
		}
	}
}

// TileFlags implements sensor.TileLookup.
func (t *Terrain) TileFlags(hit sensor.Hit) (sensor.TileFlags, bool) {
	shape, ok := hit.Collider.(*Shape)
	if !ok || shape == nil {
		return sensor.TileFlags{}, false
	}
	return shape.Flags, true
}

func tilePolygon(kind string) ([]dmath.Vec2, bool) {
	const s = sensor.TileSize
	switch kind {
	case Slope45UpRight:
		return []dmath.Vec2{{X: 0, Y: s}, {X: s, Y: s}, {X: s, Y: 0}}, false
	case Slope45UpLeft:
		return []dmath.Vec2{{X: 0, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}, false
	case Slope22UpRightLow:
		return []dmath.Vec2{{X: 0, Y: s}, {X: s, Y: s}, {X: s, Y: s / 2}}, false
	case Slope22UpRightHigh:
		return []dmath.Vec2{{X: 0, Y: s / 2}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}, false
	case Slope22UpLeftLow:
		return []dmath.Vec2{{X: 0, Y: s / 2}, {X: s, Y: s}, {X: 0, Y: s}}, false
	case Slope22UpLeftHigh:
		return []dmath.Vec2{{X: 0, Y: 0}, {X: s, Y: s / 2}, {X: s, Y: s}, {X: 0, Y: s}}, false
	case "":
	default:
		log.Printf("Warning: unknown slope kind %q, using a full tile", kind)
	}
	return []dmath.Vec2{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}, true
}
