package sensor

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Hit is what a raycast reports about the first surface it met.
// A ray starting inside a solid shape reports its origin with a zero normal.
type Hit struct {
	Position dmath.Vec2
	Normal   dmath.Vec2
	Collider any
	ShapeID  int
	OneWay   bool
}

// Raycaster is the geometry query every sensor delegates to.
type Raycaster interface {
	Raycast(from, to dmath.Vec2, mask uint32) (Hit, bool)
}

// TileFlags is per-tile metadata attached to terrain.
type TileFlags struct {
	// Snap forces the detected angle to the nearest multiple of 90°.
	Snap bool
	// FullSquare marks a tile whose collision polygon covers the whole cell.
	FullSquare bool
}

// TileLookup is implemented by raycasters that can resolve tile metadata for a hit.
type TileLookup interface {
	TileFlags(hit Hit) (TileFlags, bool)
}
