package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	"github.com/lmsonic/sonicmaker/terrain"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	skyColor        = color.RGBA{R: 36, G: 92, B: 200, A: 255}
	groundColor     = color.RGBA{R: 150, G: 96, B: 48, A: 255}
	backLayerColor  = color.RGBA{R: 110, G: 70, B: 40, A: 255}
	grassColor      = color.RGBA{R: 60, G: 180, B: 60, A: 255}
	platformColor   = color.RGBA{R: 170, G: 170, B: 180, A: 255}
	monitorColor    = color.RGBA{R: 80, G: 80, B: 90, A: 255}
	springColor     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	characterColor  = color.RGBA{R: 30, G: 60, B: 220, A: 255}
	characterDetail = color.RGBA{R: 240, G: 200, B: 160, A: 255}
)

// cullPadding keeps shapes from popping in at the screen edges.
const cullPadding = 64.0

// whiteSubImage is the source texture for filled polygons.
var whiteSubImage *ebiten.Image

func fillPolygon(screen *ebiten.Image, points []dmath.Vec2, offX, offY float64, clr color.Color) {
	if len(points) < 3 {
		return
	}
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X+offX), float32(points[0].Y+offY))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X+offX), float32(p.Y+offY))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func strokePolygon(screen *ebiten.Image, points []dmath.Vec2, offX, offY float64, width float32, clr color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(screen,
			float32(p.X+offX), float32(p.Y+offY),
			float32(q.X+offX), float32(q.Y+offY),
			width, clr, false)
	}
}

// view is the camera offset and visible world rectangle of one frame.
type view struct {
	offX, offY             float64
	minX, minY, maxX, maxY float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := worldToScreen(camera, width, height)
	return view{
		offX: offX,
		offY: offY,
		minX: camera.Position.X - float64(width)/2 - cullPadding,
		maxX: camera.Position.X + float64(width)/2 + cullPadding,
		minY: camera.Position.Y - float64(height)/2 - cullPadding,
		maxY: camera.Position.Y + float64(height)/2 + cullPadding,
	}, true
}

func (v view) visible(points []dmath.Vec2) bool {
	minX, minY, maxX, maxY := gamemath.Bounds(points)
	return maxX >= v.minX && minX <= v.maxX && maxY >= v.minY && minY <= v.maxY
}

// DrawLevel fills the sky and every terrain shape on the character's side of
// the layer split. Shapes on other layers are drawn after the character
// while it sits behind them.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)
	drawTerrain(ecs, screen, false)
}

// DrawForeground draws the terrain that covers the character.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTerrain(ecs, screen, true)
}

func drawTerrain(ecs *ecs.ECS, screen *ebiten.Image, foreground bool) {
	level := getLevel(ecs)
	v, ok := newView(ecs, screen)
	if level == nil || !ok {
		return
	}
	behind := false
	if c := playerCharacter(ecs); c != nil {
		behind = c.ZIndex < 0
	}

	for _, shape := range level.Terrain.Shapes() {
		front := shape.Layers&1 == 0
		if foreground != (front && behind) {
			continue
		}
		if !v.visible(shape.Polygon) {
			continue
		}
		drawShape(screen, shape, v)
	}
}

func drawShape(screen *ebiten.Image, shape *terrain.Shape, v view) {
	fill := groundColor
	if shape.Layers&1 == 0 {
		fill = backLayerColor
	}
	if shape.OneWay {
		strokePolygon(screen, shape.Polygon, v.offX, v.offY, 1, grassColor)
		minX, minY, maxX, _ := gamemath.Bounds(shape.Polygon)
		vector.FillRect(screen, float32(minX+v.offX), float32(minY+v.offY), float32(maxX-minX), 3, grassColor, false)
		return
	}
	fillPolygon(screen, shape.Polygon, v.offX, v.offY, fill)
}

// DrawSolids draws platforms, monitors, sloped solids and springs.
func DrawSolids(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	for entry := range components.Solid.Iter(ecs.World) {
		s := components.Solid.Get(entry)
		x := s.Position.X - s.WidthRadius + v.offX
		y := s.Position.Y - s.HeightRadius + v.offY
		w, h := s.WidthRadius*2, s.HeightRadius*2
		if s.Monitor {
			vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), monitorColor, false)
			vector.StrokeRect(screen, float32(x+4), float32(y+4), float32(w-8), float32(h-12), 2, cfg.White, false)
			continue
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), platformColor, false)
		if s.TopSolidOnly {
			vector.FillRect(screen, float32(x), float32(y), float32(w), 3, grassColor, false)
		}
	}

	for entry := range components.SlopedSolid.Iter(ecs.World) {
		s := components.SlopedSolid.Get(entry)
		fillPolygon(screen, s.WorldPolygon(), v.offX, v.offY, platformColor)
	}

	for entry := range components.Spring.Iter(ecs.World) {
		s := components.Spring.Get(entry)
		x := s.Position.X - s.WidthRadius + v.offX
		y := s.Position.Y - s.HeightRadius + v.offY
		w, h := s.WidthRadius*2, s.HeightRadius*2
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Yellow, false)

		// The red plate marks the face that launches.
		face := s.Direction.Vector()
		px := s.Position.X + face.X*(s.WidthRadius-2) + v.offX
		py := s.Position.Y + face.Y*(s.HeightRadius-2) + v.offY
		if face.X == 0 {
			vector.FillRect(screen, float32(x), float32(py-2), float32(w), 4, springColor, false)
		} else {
			vector.FillRect(screen, float32(px-2), float32(y), 4, float32(h), springColor, false)
		}
	}
}

// DrawRings draws static rings and blinks scattered ones about to expire.
func DrawRings(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	r := float32(cfg.Ring.Radius) - 2
	for entry := range components.Ring.Iter(ecs.World) {
		ring := components.Ring.Get(entry)
		p := ring.Position
		if p.X < v.minX || p.X > v.maxX || p.Y < v.minY || p.Y > v.maxY {
			continue
		}
		if ring.Scattered && ring.Life < 64 && (ring.Life/4)%2 == 0 {
			continue
		}
		vector.StrokeCircle(screen, float32(p.X+v.offX), float32(p.Y+v.offY), r, 2, cfg.Yellow, true)
	}
}

// DrawCharacter draws the character as a rotated body, or a spinning ball
// while rolling or jumping. It blinks while invulnerable.
func DrawCharacter(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getPlayer(ecs)
	v, vok := newView(ecs, screen)
	if !ok || !vok {
		return
	}
	c := components.Player.Get(entry).Character
	if c.IsInvulnerable() && (c.Invulnerability()/4)%2 == 1 {
		return
	}

	frame := 0
	if anim := components.Animation.Get(entry); anim.Current != nil {
		frame = anim.Current.Frame()
	}
	cx, cy := c.Position.X+v.offX, c.Position.Y+v.offY

	if c.State().IsBall() {
		r := c.HeightRadius()
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r), characterColor, true)
		spin := float64(frame) * math.Pi / 4
		if c.FacingLeft() {
			spin = -spin
		}
		dx, dy := math.Cos(spin)*r, math.Sin(spin)*r
		vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 2, characterDetail, true)
		return
	}

	w, h := c.WidthRadius(), c.HeightRadius()
	body := []dmath.Vec2{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}
	sin, cos := math.Sincos(-c.Rotation)
	for i, p := range body {
		body[i] = dmath.Vec2{X: c.Position.X + p.X*cos - p.Y*sin, Y: c.Position.Y + p.X*sin + p.Y*cos}
	}
	fillPolygon(screen, body, v.offX, v.offY, characterColor)

	// The face marks the facing direction.
	eyeX := w * 0.6
	if c.FacingLeft() {
		eyeX = -eyeX
	}
	eyeY := -h * 0.5
	if c.State() == character.LookUp {
		eyeY = -h * 0.8
	}
	ex := c.Position.X + eyeX*cos - eyeY*sin + v.offX
	ey := c.Position.Y + eyeX*sin + eyeY*cos + v.offY
	vector.FillCircle(screen, float32(ex), float32(ey), 3, characterDetail, true)
}
