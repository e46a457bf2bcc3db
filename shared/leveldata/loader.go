package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	collisionLayer       = "collision"
	collisionLayerPrefix = "collision-"

	defaultSwitcherLength = 50.0
	defaultSpringPower    = 10.0
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (client) or os.DirFS (headless runner).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		bit, ok := collisionBit(layer.Name)
		if !ok {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				t := Tile{Col: x, Row: y, FlipY: tile.VerticalFlip, Layers: 1 << bit}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					t.Slope = tilesetTile.Properties.GetString("slope")
					t.Snap = tilesetTile.Properties.GetBool("snap")
					t.OneWay = tilesetTile.Properties.GetBool("one_way")
				}
				level.Tiles = append(level.Tiles, t)
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidSpawn{
					X:            o.X,
					Y:            o.Y,
					Width:        o.Width,
					Height:       o.Height,
					TopSolidOnly: o.Properties.GetBool("top_solid_only"),
					Monitor:      o.Properties.GetBool("monitor"),
					MoveX:        o.Properties.GetFloat("move_x"),
					MoveY:        o.Properties.GetFloat("move_y"),
					MoveSeconds:  o.Properties.GetFloat("move_seconds"),
				})
			}
		case "SlopedSolids":
			for _, o := range og.Objects {
				points := objectPoints(o)
				if len(points) < 3 {
					fmt.Printf("Warning: sloped solid %d in %s needs a polygon\n", o.ID, tmxPath)
					continue
				}
				level.SlopedSolids = append(level.SlopedSolids, SlopedSolidSpawn{
					X:            o.X,
					Y:            o.Y,
					Points:       points,
					TopSolidOnly: o.Properties.GetBool("top_solid_only"),
				})
			}
		case "Terrain":
			for _, o := range og.Objects {
				shape, ok := terrainShape(o)
				if !ok {
					fmt.Printf("Warning: terrain object %d in %s has no shape\n", o.ID, tmxPath)
					continue
				}
				level.Terrain = append(level.Terrain, shape)
			}
		case "LayerSwitchers":
			for _, o := range og.Objects {
				level.LayerSwitchers = append(level.LayerSwitchers, switcherSpawn(o))
			}
		case "Rings":
			for _, o := range og.Objects {
				level.Rings = append(level.Rings, Point{X: o.X, Y: o.Y})
			}
		case "Springs":
			for _, o := range og.Objects {
				power := o.Properties.GetFloat("power")
				if power == 0 {
					power = defaultSpringPower
				}
				direction := o.Properties.GetString("direction")
				if direction == "" {
					direction = "up"
				}
				level.Springs = append(level.Springs, SpringSpawn{
					X:         o.X,
					Y:         o.Y,
					Power:     power,
					Direction: direction,
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: no PlayerSpawn object", tmxPath)
	}
	sort.Slice(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].Index < level.PlayerSpawns[j].Index
	})

	return level, nil
}

// collisionBit maps "collision" to bit 0 and "collision-<n>" to bit n.
func collisionBit(name string) (int, bool) {
	if name == collisionLayer {
		return 0, true
	}
	suffix, ok := strings.CutPrefix(name, collisionLayerPrefix)
	if !ok {
		return 0, false
	}
	bit, err := strconv.Atoi(suffix)
	if err != nil || bit < 0 || bit > 31 {
		fmt.Printf("Warning: ignoring collision layer %q\n", name)
		return 0, false
	}
	return bit, true
}

// objectPoints returns the polygon or polyline points relative to the object.
func objectPoints(o *tiled.Object) []Point {
	var raw *tiled.Points
	switch {
	case len(o.Polygons) > 0:
		raw = o.Polygons[0].Points
	case len(o.PolyLines) > 0:
		raw = o.PolyLines[0].Points
	}
	if raw == nil {
		return nil
	}
	points := make([]Point, len(*raw))
	for i, p := range *raw {
		points[i] = Point{X: p.X, Y: p.Y}
	}
	return points
}

func terrainShape(o *tiled.Object) (TerrainShape, bool) {
	layers := uint32(1) << o.Properties.GetInt("layer")
	shape := TerrainShape{
		OneWay: o.Properties.GetBool("one_way"),
		Snap:   o.Properties.GetBool("snap"),
		Layers: layers,
	}

	rel := objectPoints(o)
	if len(rel) == 0 && o.Width > 0 && o.Height > 0 {
		rel = []Point{{0, 0}, {o.Width, 0}, {o.Width, o.Height}, {0, o.Height}}
	}
	if len(rel) < 3 {
		return shape, false
	}
	shape.Points = make([]Point, len(rel))
	for i, p := range rel {
		shape.Points[i] = Point{X: o.X + p.X, Y: o.Y + p.Y}
	}
	return shape, true
}

func switcherSpawn(o *tiled.Object) SwitcherSpawn {
	length := o.Properties.GetFloat("length")
	if length == 0 {
		length = defaultSwitcherLength
	}
	change := o.Properties.GetString("change")
	if change == "" {
		change = "layer"
	}
	return SwitcherSpawn{
		X:             o.X,
		Y:             o.Y,
		Horizontal:    o.Properties.GetString("orientation") == "horizontal",
		Length:        length,
		PositiveLayer: uint32(1) << o.Properties.GetInt("positive_layer"),
		NegativeLayer: uint32(1) << o.Properties.GetInt("negative_layer"),
		GroundedOnly:  o.Properties.GetBool("grounded_only"),
		PositiveZ:     o.Properties.GetInt("positive_z"),
		NegativeZ:     o.Properties.GetInt("negative_z"),
		Change:        change,
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
