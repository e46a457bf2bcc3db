package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// verticalEdgeWidth is the horizontal extent below which an edge is treated as vertical.
const verticalEdgeWidth = 0.1

// Bounds returns the axis-aligned bounds of a polygon.
func Bounds(polygon []dmath.Vec2) (minX, minY, maxX, maxY float64) {
	if len(polygon) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range polygon {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// ColumnSpan returns the highest (top) and lowest (bottom) y of the polygon
// outline at column x. Left or right of the polygon the outermost vertex is
// used; when that vertex sits on a vertical edge the whole edge is returned.
func ColumnSpan(polygon []dmath.Vec2, x float64) (top, bottom float64) {
	n := len(polygon)
	if n == 0 {
		return 0, 0
	}
	minX, _, maxX, _ := Bounds(polygon)
	if x < minX {
		return extremeColumn(polygon, func(a, b float64) bool { return a < b })
	}
	if x > maxX {
		return extremeColumn(polygon, func(a, b float64) bool { return a > b })
	}

	top, bottom = math.Inf(1), math.Inf(-1)
	for i := range polygon {
		a, b := polygon[i], polygon[(i+1)%n]
		if b.X < a.X {
			a, b = b, a
		}
		if x < a.X || x > b.X {
			continue
		}
		if b.X-a.X > verticalEdgeWidth {
			m := (b.Y - a.Y) / (b.X - a.X)
			y := b.Y + m*(x-b.X)
			top = math.Min(top, y)
			bottom = math.Max(bottom, y)
		} else {
			top = math.Min(top, math.Min(a.Y, b.Y))
			bottom = math.Max(bottom, math.Max(a.Y, b.Y))
		}
	}
	return top, bottom
}

func extremeColumn(polygon []dmath.Vec2, better func(a, b float64) bool) (top, bottom float64) {
	n := len(polygon)
	best := 0
	for i := 1; i < n; i++ {
		if better(polygon[i].X, polygon[best].X) {
			best = i
		}
	}
	v := polygon[best]
	prev := polygon[(best+n-1)%n]
	next := polygon[(best+1)%n]
	closest := next
	if math.Abs(prev.X-v.X) < math.Abs(next.X-v.X) {
		closest = prev
	}
	if math.Abs(closest.X-v.X) < verticalEdgeWidth {
		return math.Min(v.Y, closest.Y), math.Max(v.Y, closest.Y)
	}
	return v.Y, v.Y
}

// SignedArea returns the shoelace area of a polygon. Its sign gives the winding.
func SignedArea(polygon []dmath.Vec2) float64 {
	n := len(polygon)
	area := 0.0
	for i := range polygon {
		a, b := polygon[i], polygon[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// Translate returns a copy of polygon moved by offset.
func Translate(polygon []dmath.Vec2, offset dmath.Vec2) []dmath.Vec2 {
	out := make([]dmath.Vec2, len(polygon))
	for i, p := range polygon {
		out[i] = dmath.Vec2{X: p.X + offset.X, Y: p.Y + offset.Y}
	}
	return out
}
