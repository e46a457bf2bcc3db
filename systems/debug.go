package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/layerswitch"
	"github.com/yohamta/donburi/ecs"
)

// sensorReach is how far an idle sensor ray is drawn.
const sensorReach = 16.0

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	if settings.DrawTerrain {
		drawTerrainOutlines(ecs, screen, v)
	}
	drawSwitchers(ecs, screen, v)

	entry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	c := components.Player.Get(entry).Character
	if settings.DrawHitbox {
		drawHitboxes(ecs, screen, v, c)
	}
	if settings.DrawSensors {
		drawSensors(screen, v, c)
	}
	drawCharacterInfo(screen, c, components.Player.Get(entry))
}

func drawTerrainOutlines(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	for _, shape := range level.Terrain.Shapes() {
		if !v.visible(shape.Polygon) {
			continue
		}
		clr := cfg.DebugColors.Terrain
		if shape.OneWay {
			clr = cfg.DebugColors.OneWay
		}
		strokePolygon(screen, shape.Polygon, v.offX, v.offY, 1, clr)
	}
}

func drawSwitchers(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	for entry := range components.LayerSwitcher.Iter(ecs.World) {
		s := components.LayerSwitcher.Get(entry)
		x, y := s.Position.X+v.offX, s.Position.Y+v.offY
		if s.Orientation == layerswitch.Vertical {
			vector.StrokeLine(screen, float32(x), float32(y-s.Length), float32(x), float32(y+s.Length), 1, cfg.DebugColors.Switcher, false)
		} else {
			vector.StrokeLine(screen, float32(x-s.Length), float32(y), float32(x+s.Length), float32(y), 1, cfg.DebugColors.Switcher, false)
		}
	}
}

func drawHitboxes(ecs *ecs.ECS, screen *ebiten.Image, v view, c *character.Character) {
	w, h := c.Hitbox()
	clr := cfg.DebugColors.Hitbox
	if c.IsAttacking() {
		clr = cfg.DebugColors.Attacking
	}
	vector.FillRect(screen,
		float32(c.Position.X-w/2+v.offX), float32(c.Position.Y-h/2+v.offY),
		float32(w), float32(h), clr, false)

	// Collision box from the width and height radii.
	wr, hr := c.WidthRadius(), c.HeightRadius()
	vector.StrokeRect(screen,
		float32(c.Position.X-wr+v.offX), float32(c.Position.Y-hr+v.offY),
		float32(wr*2), float32(hr*2), 1, cfg.White, false)

	for entry := range components.Solid.Iter(ecs.World) {
		s := components.Solid.Get(entry)
		vector.StrokeRect(screen,
			float32(s.Position.X-s.WidthRadius+v.offX), float32(s.Position.Y-s.HeightRadius+v.offY),
			float32(s.WidthRadius*2), float32(s.HeightRadius*2), 1, cfg.DebugColors.Solid, false)
	}
	for entry := range components.SlopedSolid.Iter(ecs.World) {
		s := components.SlopedSolid.Get(entry)
		strokePolygon(screen, s.WorldPolygon(), v.offX, v.offY, 1, cfg.DebugColors.Solid)
	}
	for entry := range components.Ring.Iter(ecs.World) {
		obj := components.Object.Get(entry)
		vector.StrokeRect(screen, float32(obj.X+v.offX), float32(obj.Y+v.offY),
			float32(obj.W), float32(obj.H), 1, cfg.DebugColors.Ring, false)
	}
}

func sensorColor(id character.SensorID) color.RGBA {
	switch id {
	case character.SensorFloorLeft, character.SensorFloorRight:
		return cfg.DebugColors.SensorFloor
	case character.SensorCeilingLeft, character.SensorCeilingRight:
		return cfg.DebugColors.SensorCeiling
	}
	return cfg.DebugColors.SensorPush
}

func drawSensors(screen *ebiten.Image, v view, c *character.Character) {
	for _, p := range c.Probes() {
		dir := p.Direction.Vector()
		reach := sensorReach
		if p.Hit {
			reach = p.Result.Distance
		}
		x0, y0 := p.Position.X+v.offX, p.Position.Y+v.offY
		x1, y1 := x0+dir.X*reach, y0+dir.Y*reach
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, sensorColor(p.ID), false)
		if p.Hit {
			vector.FillCircle(screen, float32(x1), float32(y1), 2, cfg.DebugColors.SensorHit, false)
		}
	}
}

func drawCharacterInfo(screen *ebiten.Image, c *character.Character, player *components.PlayerData) {
	info := fmt.Sprintf(
		"state %s  mode %s\n"+
			"pos %.1f, %.1f  vel %.2f, %.2f\n"+
			"gs %.2f  angle %.1f  grounded %v\n"+
			"mask %b  z %d  lock %d\n"+
			"deaths %d  TPS %.0f",
		c.State(), c.Mode(),
		c.Position.X, c.Position.Y, c.Velocity.X, c.Velocity.Y,
		c.GroundSpeed(), c.GroundAngle()*180/math.Pi, c.IsGrounded(),
		c.CollisionMask(), c.ZIndex, c.ControlLock(),
		player.Deaths, ebiten.ActualTPS(),
	)
	ebitenutil.DebugPrintAt(screen, info, 4, 40)
}
