// Package sim runs a level without a window: it builds the terrain, solids,
// switchers, rings and the character from level data and steps them in the
// same order as the client systems.
package sim

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/layerswitch"
	"github.com/lmsonic/sonicmaker/shared/leveldata"
	"github.com/lmsonic/sonicmaker/solid"
	"github.com/lmsonic/sonicmaker/terrain"
	dmath "github.com/yohamta/donburi/features/math"
)

// fallMargin is how far below the level bottom the character dies.
const fallMargin = 64.0

// Level is a running level.
type Level struct {
	Data      *leveldata.Level
	Terrain   *terrain.Terrain
	Character *character.Character
	Platforms []*Platform
	Sloped    []*solid.Sloped
	Springs   []*Spring
	Switchers []*layerswitch.Switcher
	Rings     *RingField

	TPS    int
	Tick   int
	Deaths int

	// BestRings is the highest ring count held so far.
	BestRings int

	cfg  config.CharacterConfig
	dead bool
}

// New builds a level. cfg is the character tuning.
func New(data *leveldata.Level, cfg config.CharacterConfig) *Level {
	l := &Level{
		Data:    data,
		Terrain: BuildTerrain(data),
		TPS:     config.C.TPS,
		cfg:     cfg,
	}

	var id uint64
	for _, s := range data.Solids {
		id++
		l.Platforms = append(l.Platforms, NewPlatform(id, s))
	}
	for _, s := range data.Springs {
		id++
		l.Springs = append(l.Springs, NewSpring(id, s))
	}
	for i, s := range data.SlopedSolids {
		sloped := solid.NewSloped(uint64(i+1), dmath.Vec2{X: s.X, Y: s.Y}, Vecs(s.Points))
		sloped.TopSolidOnly = s.TopSolidOnly
		l.Sloped = append(l.Sloped, sloped)
	}
	for _, s := range data.LayerSwitchers {
		l.Switchers = append(l.Switchers, NewSwitcher(s))
	}

	l.Rings = NewRingField(max(data.Width, 1), max(data.Height, 1), l.Terrain)
	for _, p := range data.Rings {
		l.Rings.Add(dmath.Vec2{X: p.X, Y: p.Y})
	}

	l.spawnCharacter()
	log.Printf("Loaded level %s: %d tiles, %d shapes, %d solids, %d rings",
		data.Name, len(data.Tiles), len(data.Terrain), len(l.Platforms), len(data.Rings))
	return l
}

// Spawn is the first player spawn point, or the origin when there is none.
func (l *Level) Spawn() dmath.Vec2 {
	if len(l.Data.PlayerSpawns) == 0 {
		return dmath.Vec2{}
	}
	s := l.Data.PlayerSpawns[0]
	return dmath.Vec2{X: s.X, Y: s.Y}
}

func (l *Level) spawnCharacter() {
	c := character.New(l.cfg, l.Terrain)
	c.Position = l.Spawn()
	c.SetGrounded(false)
	c.OnDie = func() { l.dead = true }
	c.OnRingsChanged = func(rings int) {
		if rings > l.BestRings {
			l.BestRings = rings
		}
	}
	l.Character = c
	l.dead = false
}

// Step runs one tick: platforms, character, solids, springs, switchers and
// rings, in that order. A character that died this tick respawns.
func (l *Level) Step(in character.Input) {
	dt := 1.0 / float64(l.TPS)
	for _, p := range l.Platforms {
		p.Advance(dt)
	}

	c := l.Character
	c.SetInput(in)
	c.Step(dt)

	for _, p := range l.Platforms {
		p.Update(c)
	}
	for _, s := range l.Sloped {
		s.Update(c)
	}
	for _, s := range l.Springs {
		s.Update(c)
	}
	for _, sw := range l.Switchers {
		sw.Update(c)
	}
	l.Rings.Update(c)

	if c.Position.Y > float64(l.Data.Height)+fallMargin {
		c.Die()
	}
	if l.dead {
		l.Deaths++
		l.spawnCharacter()
	}
	l.Tick++
}

// Hurt damages the character as if hit by something at from.
func (l *Level) Hurt(from dmath.Vec2) {
	l.Rings.Scatter(l.Character.Hurt(from))
}

// LoadLevels loads every level under dir in fsys.
func LoadLevels(fsys fs.FS, dir string) (map[string]*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}
	return levels, names, nil
}
