// Package leveldata parses TMX levels into plain data shared by the client,
// the headless runner and tests. It has no dependencies on ebitengine,
// donburi or resolv.
package leveldata

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name       string
	Width      int // pixels
	Height     int // pixels
	TileWidth  int
	TileHeight int

	Tiles          []Tile
	Terrain        []TerrainShape
	PlayerSpawns   []SpawnPoint
	Solids         []SolidSpawn
	SlopedSolids   []SlopedSolidSpawn
	LayerSwitchers []SwitcherSpawn
	Rings          []Point
	Springs        []SpringSpawn
}

type Point struct {
	X, Y float64
}

// Tile is one collision tile. Layers is the collision layer bit mask.
type Tile struct {
	Col, Row int
	Slope    string // "", "45_up_right", "22_up_left_low", ...
	FlipY    bool
	OneWay   bool
	Snap     bool
	Layers   uint32
}

// TerrainShape is a free-form collision polygon in world coordinates.
type TerrainShape struct {
	Points []Point
	OneWay bool
	Snap   bool
	Layers uint32
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// SolidSpawn is a box solid. X and Y are the top-left corner as placed in Tiled.
type SolidSpawn struct {
	X, Y, Width, Height float64
	TopSolidOnly        bool
	Monitor             bool
	// MoveX and MoveY make the solid travel back and forth by that offset.
	MoveX, MoveY float64
	MoveSeconds  float64
}

// Moves reports whether the solid is a moving platform.
func (s SolidSpawn) Moves() bool {
	return (s.MoveX != 0 || s.MoveY != 0) && s.MoveSeconds > 0
}

// SlopedSolidSpawn is a polygon solid. Points are relative to X, Y.
type SlopedSolidSpawn struct {
	X, Y         float64
	Points       []Point
	TopSolidOnly bool
}

type SwitcherSpawn struct {
	X, Y          float64
	Horizontal    bool
	Length        float64
	PositiveLayer uint32
	NegativeLayer uint32
	GroundedOnly  bool
	PositiveZ     int
	NegativeZ     int
	// Change is "layer", "z_index" or "both".
	Change string
}

type SpringSpawn struct {
	X, Y  float64
	Power float64
	// Direction is "up", "down", "left" or "right".
	Direction string
}
