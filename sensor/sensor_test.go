package sensor

import (
	"math"
	"testing"

	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// gridRaycaster is a tile grid of full 16px squares, keyed by cell.
type gridRaycaster struct {
	solid map[[2]int]bool
	snap  map[[2]int]bool
}

func newGrid(cells ...[2]int) *gridRaycaster {
	g := &gridRaycaster{solid: map[[2]int]bool{}, snap: map[[2]int]bool{}}
	for _, c := range cells {
		g.solid[c] = true
	}
	return g
}

func (g *gridRaycaster) Raycast(from, to dmath.Vec2, _ uint32) (Hit, bool) {
	d := dmath.Vec2{X: to.X - from.X, Y: to.Y - from.Y}
	best := math.Inf(1)
	var hit Hit
	found := false
	for cell := range g.solid {
		minX, minY := float64(cell[0])*TileSize, float64(cell[1])*TileSize
		t, normal, ok := slab(from, d, minX, minY, minX+TileSize, minY+TileSize)
		if !ok {
			continue
		}
		inside := normal.X == 0 && normal.Y == 0
		// Surface hits win ties against "origin inside" hits.
		if t < best || (t == best && !inside) {
			best = t
			found = true
			hit = Hit{
				Position: dmath.Vec2{X: from.X + d.X*t, Y: from.Y + d.Y*t},
				Normal:   normal,
				Collider: cell,
			}
		}
	}
	return hit, found
}

func (g *gridRaycaster) TileFlags(hit Hit) (TileFlags, bool) {
	cell, ok := hit.Collider.([2]int)
	if !ok {
		return TileFlags{}, false
	}
	return TileFlags{Snap: g.snap[cell]}, true
}

// slab intersects the segment p + t*d, t in [0, 1], with a box. An origin
// inside the box (boundary included) that does not enter through a face
// reports t=0 with a zero normal.
func slab(p, d dmath.Vec2, minX, minY, maxX, maxY float64) (float64, dmath.Vec2, bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	var normal dmath.Vec2
	axes := []struct {
		p, d, lo, hi float64
		n            dmath.Vec2
	}{
		{p.X, d.X, minX, maxX, dmath.Vec2{X: -gamemath.Sign(d.X)}},
		{p.Y, d.Y, minY, maxY, dmath.Vec2{Y: -gamemath.Sign(d.Y)}},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.p < a.lo || a.p > a.hi {
				return 0, normal, false
			}
			continue
		}
		t1, t2 := (a.lo-a.p)/a.d, (a.hi-a.p)/a.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
			normal = a.n
		}
		tExit = math.Min(tExit, t2)
	}
	if tEnter > tExit || tExit < 0 {
		return 0, normal, false
	}
	if tEnter < 0 {
		return 0, dmath.Vec2{}, true
	}
	if tEnter > 1 {
		return 0, normal, false
	}
	return tEnter, normal, true
}

func TestSenseFloorDistance(t *testing.T) {
	// Floor tile occupies row 2 (y 32..48).
	grid := newGrid([2]int{0, 2})
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"above floor", 28, 4},
		{"on floor", 32, 0},
		{"sunk into floor", 35, -3},
		{"extension finds floor one tile down", 10, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(gamemath.Down, 1, grid)
			s.Position = dmath.Vec2{X: 8, Y: tt.y}
			got, ok := s.Sense()
			if !ok {
				t.Fatal("expected a hit")
			}
			if math.Abs(got.Distance-tt.want) > 1e-9 {
				t.Errorf("expected distance %f, got %f", tt.want, got.Distance)
			}
			if got.Angle != 0 {
				t.Errorf("expected flat angle, got %f", got.Angle)
			}
		})
	}
}

func TestSenseRegressionAcrossTileBoundary(t *testing.T) {
	// The probe sits in an empty cell while the cell behind it is solid:
	// the regression cast must report the surface of the backward cell.
	grid := newGrid([2]int{0, 0})
	s := New(gamemath.Down, 1, grid)
	s.Position = dmath.Vec2{X: 8, Y: 20}

	got, ok := s.Sense()
	if !ok {
		t.Fatal("expected the backward-cell hit, got none")
	}
	if got.Distance != -20 {
		t.Errorf("expected distance -20, got %f", got.Distance)
	}
	if got.Snap {
		t.Error("expected a real surface normal from the regression cast")
	}
}

func TestSenseMiss(t *testing.T) {
	grid := newGrid([2]int{0, 5})
	s := New(gamemath.Down, 1, grid)
	s.Position = dmath.Vec2{X: 8, Y: 4}
	if _, ok := s.Sense(); ok {
		t.Error("expected no hit three tiles away")
	}
	if _, ok := s.Last(); ok {
		t.Error("expected last result to be cleared after a miss")
	}
}

func TestSenseDistanceSigns(t *testing.T) {
	tests := []struct {
		name string
		dir  gamemath.Direction
		cell [2]int
		pos  dmath.Vec2
		want float64
	}{
		{"up", gamemath.Up, [2]int{0, 0}, dmath.Vec2{X: 8, Y: 20}, 4},
		{"right", gamemath.Right, [2]int{2, 0}, dmath.Vec2{X: 26, Y: 8}, 6},
		{"left", gamemath.Left, [2]int{0, 0}, dmath.Vec2{X: 19, Y: 8}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.dir, 1, newGrid(tt.cell))
			s.Position = tt.pos
			got, ok := s.Sense()
			if !ok {
				t.Fatal("expected a hit")
			}
			if math.Abs(got.Distance-tt.want) > 1e-9 {
				t.Errorf("expected distance %f, got %f", tt.want, got.Distance)
			}
		})
	}
}

func TestSenseSnapFlag(t *testing.T) {
	grid := newGrid([2]int{0, 2})
	grid.snap[[2]int{0, 2}] = true
	s := New(gamemath.Down, 1, grid)
	s.Position = dmath.Vec2{X: 8, Y: 28}
	got, ok := s.Sense()
	if !ok || !got.Snap {
		t.Errorf("expected snap flag from tile lookup, got %+v", got)
	}
}

func TestNilSensorIsNoOp(t *testing.T) {
	var s *Sensor
	if _, ok := s.Sense(); ok {
		t.Error("expected nil sensor to report nothing")
	}
	orphan := New(gamemath.Down, 1, nil)
	if _, ok := orphan.Sense(); ok {
		t.Error("expected sensor without raycaster to report nothing")
	}
}
