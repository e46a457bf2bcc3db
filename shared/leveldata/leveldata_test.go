package leveldata

import (
	"testing"
	"testing/fstest"
)

const testLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="12" nextobjectid="20">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="terrain.png" width="32" height="16"/>
  <tile id="1">
   <properties>
    <property name="slope" value="45_up_right"/>
    <property name="snap" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="collision" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,2,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="collision-1" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,1,0,0,
0,0,0,0
</data>
 </layer>
 <layer id="3" name="decoration" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,1,1,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="1" x="40" y="8">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="8" y="8">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Solids">
  <object id="3" x="16" y="0" width="32" height="16">
   <properties>
    <property name="top_solid_only" type="bool" value="true"/>
    <property name="move_x" type="float" value="64"/>
    <property name="move_seconds" type="float" value="2"/>
   </properties>
  </object>
  <object id="4" x="0" y="0" width="30" height="30">
   <properties>
    <property name="monitor" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="SlopedSolids">
  <object id="5" x="100" y="100">
   <polygon points="0,0 32,-32 32,0"/>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Terrain">
  <object id="6" x="10" y="20">
   <polygon points="0,0 20,0 20,10"/>
   <properties>
    <property name="one_way" type="bool" value="true"/>
    <property name="layer" type="int" value="2"/>
   </properties>
  </object>
  <object id="7" x="0" y="40" width="8" height="4"/>
 </objectgroup>
 <objectgroup id="8" name="LayerSwitchers">
  <object id="8" x="30" y="30">
   <properties>
    <property name="orientation" value="horizontal"/>
    <property name="positive_layer" type="int" value="1"/>
    <property name="negative_layer" type="int" value="0"/>
    <property name="grounded_only" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="9" name="Rings">
  <object id="9" x="12" y="4">
   <point/>
  </object>
  <object id="10" x="28" y="4">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="10" name="Springs">
  <object id="11" x="48" y="32">
   <properties>
    <property name="direction" value="left"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noSpawnLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="collision" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testLevel)},
	}
}

func loadTestLevel(t *testing.T) *Level {
	t.Helper()
	level, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("expected level to load, got %v", err)
	}
	return level
}

func TestLoadDimensions(t *testing.T) {
	level := loadTestLevel(t)
	if level.Name != "test" {
		t.Errorf("expected name test, got %q", level.Name)
	}
	if level.Width != 64 || level.Height != 48 {
		t.Errorf("expected 64x48, got %dx%d", level.Width, level.Height)
	}
	if level.TileWidth != 16 || level.TileHeight != 16 {
		t.Errorf("expected 16x16 tiles, got %dx%d", level.TileWidth, level.TileHeight)
	}
}

func TestLoadCollisionTiles(t *testing.T) {
	level := loadTestLevel(t)
	if len(level.Tiles) != 6 {
		t.Fatalf("expected 6 collision tiles, got %d", len(level.Tiles))
	}

	var slope *Tile
	layered := 0
	for i := range level.Tiles {
		tile := &level.Tiles[i]
		if tile.Slope != "" {
			slope = tile
		}
		if tile.Layers == 2 {
			layered++
			if tile.Col != 1 || tile.Row != 1 {
				t.Errorf("expected layer 1 tile at (1, 1), got (%d, %d)", tile.Col, tile.Row)
			}
		}
	}
	if slope == nil {
		t.Fatal("expected a slope tile")
	}
	if slope.Col != 3 || slope.Row != 1 || slope.Slope != "45_up_right" || !slope.Snap {
		t.Errorf("expected snapping 45_up_right at (3, 1), got %+v", *slope)
	}
	if slope.Layers != 1 {
		t.Errorf("expected layer mask 1, got %d", slope.Layers)
	}
	if layered != 1 {
		t.Errorf("expected 1 tile on collision-1, got %d", layered)
	}
}

func TestLoadSpawnsSortedByIndex(t *testing.T) {
	level := loadTestLevel(t)
	if len(level.PlayerSpawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(level.PlayerSpawns))
	}
	if level.PlayerSpawns[0].X != 8 || level.PlayerSpawns[1].X != 40 {
		t.Errorf("expected spawns ordered by index, got %+v", level.PlayerSpawns)
	}
}

func TestLoadSolids(t *testing.T) {
	level := loadTestLevel(t)
	if len(level.Solids) != 2 {
		t.Fatalf("expected 2 solids, got %d", len(level.Solids))
	}
	platform := level.Solids[0]
	if !platform.TopSolidOnly || platform.Width != 32 || platform.Height != 16 {
		t.Errorf("expected a 32x16 top solid platform, got %+v", platform)
	}
	if !platform.Moves() || platform.MoveX != 64 || platform.MoveSeconds != 2 {
		t.Errorf("expected a moving platform, got %+v", platform)
	}
	monitor := level.Solids[1]
	if !monitor.Monitor || monitor.Moves() {
		t.Errorf("expected a static monitor, got %+v", monitor)
	}

	if len(level.SlopedSolids) != 1 {
		t.Fatalf("expected 1 sloped solid, got %d", len(level.SlopedSolids))
	}
	sloped := level.SlopedSolids[0]
	if len(sloped.Points) != 3 || sloped.Points[1] != (Point{X: 32, Y: -32}) {
		t.Errorf("expected relative polygon points, got %+v", sloped.Points)
	}
}

func TestLoadTerrainShapes(t *testing.T) {
	level := loadTestLevel(t)
	if len(level.Terrain) != 2 {
		t.Fatalf("expected 2 terrain shapes, got %d", len(level.Terrain))
	}
	poly := level.Terrain[0]
	if poly.Points[1] != (Point{X: 30, Y: 20}) {
		t.Errorf("expected world point (30, 20), got %+v", poly.Points[1])
	}
	if !poly.OneWay || poly.Layers != 4 {
		t.Errorf("expected one-way shape on layer mask 4, got %+v", poly)
	}
	rect := level.Terrain[1]
	if len(rect.Points) != 4 || rect.Points[2] != (Point{X: 8, Y: 44}) || rect.Layers != 1 {
		t.Errorf("expected rectangle converted to polygon, got %+v", rect)
	}
}

func TestLoadObjects(t *testing.T) {
	level := loadTestLevel(t)

	if len(level.LayerSwitchers) != 1 {
		t.Fatalf("expected 1 layer switcher, got %d", len(level.LayerSwitchers))
	}
	sw := level.LayerSwitchers[0]
	if !sw.Horizontal || !sw.GroundedOnly || sw.Length != defaultSwitcherLength {
		t.Errorf("expected grounded horizontal switcher with default length, got %+v", sw)
	}
	if sw.PositiveLayer != 2 || sw.NegativeLayer != 1 || sw.Change != "layer" {
		t.Errorf("expected masks 2/1 changing layer, got %+v", sw)
	}

	if len(level.Rings) != 2 || level.Rings[1] != (Point{X: 28, Y: 4}) {
		t.Errorf("expected 2 rings, got %+v", level.Rings)
	}

	if len(level.Springs) != 1 {
		t.Fatalf("expected 1 spring, got %d", len(level.Springs))
	}
	if s := level.Springs[0]; s.Power != defaultSpringPower || s.Direction != "left" {
		t.Errorf("expected default power spring pointing left, got %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": &fstest.MapFile{Data: []byte(noSpawnLevel)},
	}
	tests := []struct {
		name string
		path string
	}{
		{"missing file", "levels/missing.tmx"},
		{"no spawn", "levels/empty.tmx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(fsys, tt.path); err == nil {
				t.Errorf("expected an error for %s", tt.path)
			}
		})
	}
}

func TestCollisionBit(t *testing.T) {
	tests := []struct {
		name     string
		bit      int
		expected bool
	}{
		{"collision", 0, true},
		{"collision-3", 3, true},
		{"collision-x", 0, false},
		{"collision-40", 0, false},
		{"decoration", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bit, ok := collisionBit(tt.name)
			if ok != tt.expected || bit != tt.bit {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.bit, tt.expected, bit, ok)
			}
		})
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := testFS()
	fsys["levels/another.tmx"] = &fstest.MapFile{Data: []byte(testLevel)}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(names) != 2 || names[0] != "another" || names[1] != "test" {
		t.Errorf("expected sorted names [another test], got %v", names)
	}
	if levels["test"] == nil {
		t.Error("expected test level in map")
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}
