package terrain

import (
	"math"

	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

const rayEpsilon = 1e-9

// Raycast implements sensor.Raycaster. The closest surface entered by the
// segment wins; a segment starting inside a solid (not one-way) shape that
// does not enter another surface first reports its origin with a zero normal.
func (t *Terrain) Raycast(from, to dmath.Vec2, mask uint32) (sensor.Hit, bool) {
	d := dmath.Vec2{X: to.X - from.X, Y: to.Y - from.Y}
	if d.X == 0 && d.Y == 0 {
		return sensor.Hit{}, false
	}
	if mask == 0 {
		mask = AllLayers
	}

	best := math.Inf(1)
	var hit sensor.Hit
	found, bestInside := false, false
	for _, shape := range t.candidates(from, to, mask) {
		tHit, normal, inside, ok := shape.intersect(from, d)
		if !ok {
			continue
		}
		if tHit < best || (tHit == best && bestInside && !inside) {
			best = tHit
			bestInside = inside
			found = true
			hit = sensor.Hit{
				Position: dmath.Vec2{X: from.X + d.X*tHit, Y: from.Y + d.Y*tHit},
				Normal:   normal,
				Collider: shape,
				ShapeID:  shape.ID,
				OneWay:   shape.OneWay,
			}
		}
	}
	return hit, found
}

// candidates returns shapes whose bounds share space cells with the segment.
func (t *Terrain) candidates(from, to dmath.Vec2, mask uint32) []*Shape {
	minX, maxX := math.Min(from.X, to.X), math.Max(from.X, to.X)
	minY, maxY := math.Min(from.Y, to.Y), math.Max(from.Y, to.Y)

	probe := resolv.NewObject(minX-1, minY-1, maxX-minX+2, maxY-minY+2)
	t.space.Add(probe)
	defer t.space.Remove(probe)

	check := probe.Check(0, 0, ResolvTag)
	if check == nil {
		return nil
	}
	objects := check.ObjectsByTags(ResolvTag)
	shapes := make([]*Shape, 0, len(objects))
	for _, obj := range objects {
		if shape, ok := obj.Data.(*Shape); ok && shape.Layers&mask != 0 {
			shapes = append(shapes, shape)
		}
	}
	return shapes
}

// intersect returns the segment parameter of the first entering edge, or an
// inside hit at t=0.
func (s *Shape) intersect(from, d dmath.Vec2) (t float64, normal dmath.Vec2, inside, ok bool) {
	n := len(s.Polygon)
	if n < 3 {
		return 0, normal, false, false
	}
	best := math.Inf(1)
	for i := range s.Polygon {
		edgeNormal := s.normals[i]
		if d.X*edgeNormal.X+d.Y*edgeNormal.Y >= 0 {
			continue
		}
		// One-way shapes only block from above.
		if s.OneWay && edgeNormal.Y > -0.5 {
			continue
		}
		a, b := s.Polygon[i], s.Polygon[(i+1)%n]
		e := dmath.Vec2{X: b.X - a.X, Y: b.Y - a.Y}
		denom := cross(d, e)
		if math.Abs(denom) < rayEpsilon {
			continue
		}
		ap := dmath.Vec2{X: a.X - from.X, Y: a.Y - from.Y}
		tEdge := cross(ap, e) / denom
		u := cross(ap, d) / denom
		if tEdge < -rayEpsilon || tEdge > 1+rayEpsilon || u < -rayEpsilon || u > 1+rayEpsilon {
			continue
		}
		tEdge = math.Max(tEdge, 0)
		if tEdge < best {
			best = tEdge
			normal = edgeNormal
		}
	}
	if !math.IsInf(best, 1) && best <= rayEpsilon {
		return 0, normal, false, true
	}
	if !s.OneWay && s.contains(from) {
		return 0, dmath.Vec2{}, true, true
	}
	if math.IsInf(best, 1) {
		return 0, normal, false, false
	}
	return best, normal, false, true
}

// contains reports whether p is inside the polygon or on its outline.
func (s *Shape) contains(p dmath.Vec2) bool {
	n := len(s.Polygon)
	in := false
	for i := range s.Polygon {
		a, b := s.Polygon[i], s.Polygon[(i+1)%n]
		if onSegment(p, a, b) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

func onSegment(p, a, b dmath.Vec2) bool {
	ab := dmath.Vec2{X: b.X - a.X, Y: b.Y - a.Y}
	ap := dmath.Vec2{X: p.X - a.X, Y: p.Y - a.Y}
	if math.Abs(cross(ab, ap)) > 1e-6 {
		return false
	}
	dot := ab.X*ap.X + ab.Y*ap.Y
	return dot >= -rayEpsilon && dot <= ab.X*ab.X+ab.Y*ab.Y+rayEpsilon
}

func cross(a, b dmath.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// outwardNormals returns the unit outward normal of each edge i -> i+1.
func outwardNormals(polygon []dmath.Vec2) []dmath.Vec2 {
	n := len(polygon)
	normals := make([]dmath.Vec2, n)
	ccw := gamemath.SignedArea(polygon) > 0
	for i := range polygon {
		a, b := polygon[i], polygon[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		if ccw {
			normals[i] = dmath.Vec2{X: dy / length, Y: -dx / length}
		} else {
			normals[i] = dmath.Vec2{X: -dy / length, Y: dx / length}
		}
	}
	return normals
}
