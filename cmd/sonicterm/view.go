package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	"github.com/lmsonic/sonicmaker/sim"
	dmath "github.com/yohamta/donburi/features/math"
)

// One terminal cell covers half a tile across and a whole tile down, which
// keeps tiles roughly square in most terminal fonts.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

var glyphStyles = map[rune]tcell.Style{
	'#': tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown),
	'=': tcell.StyleDefault.Foreground(tcell.ColorGreen),
	'+': tcell.StyleDefault.Foreground(tcell.ColorSilver),
	'M': tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
	'^': tcell.StyleDefault.Foreground(tcell.ColorRed),
	'v': tcell.StyleDefault.Foreground(tcell.ColorRed),
	'<': tcell.StyleDefault.Foreground(tcell.ColorRed),
	'>': tcell.StyleDefault.Foreground(tcell.ColorRed),
	'o': tcell.StyleDefault.Foreground(tcell.ColorYellow),
	'@': tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	'O': tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
}

// grid is a character raster of the level centered on the character.
type grid struct {
	cols, rows int
	origin     dmath.Vec2
	cells      [][]rune
}

func newGrid(center dmath.Vec2, cols, rows int) *grid {
	g := &grid{
		cols: cols,
		rows: rows,
		origin: dmath.Vec2{
			X: center.X - float64(cols)*cellWidth/2,
			Y: center.Y - float64(rows)*cellHeight/2,
		},
		cells: make([][]rune, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]rune, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = ' '
		}
	}
	return g
}

func (g *grid) cellCenter(col, row int) dmath.Vec2 {
	return dmath.Vec2{
		X: g.origin.X + (float64(col)+0.5)*cellWidth,
		Y: g.origin.Y + (float64(row)+0.5)*cellHeight,
	}
}

func (g *grid) set(p dmath.Vec2, glyph rune) {
	col := int((p.X - g.origin.X) / cellWidth)
	row := int((p.Y - g.origin.Y) / cellHeight)
	if p.X < g.origin.X || p.Y < g.origin.Y || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row][col] = glyph
}

// fillPolygon marks every cell whose center lies inside the polygon's
// column span.
func (g *grid) fillPolygon(polygon []dmath.Vec2, glyph rune) {
	minX, minY, maxX, maxY := gamemath.Bounds(polygon)
	for col := 0; col < g.cols; col++ {
		x := g.cellCenter(col, 0).X
		if x < minX || x > maxX {
			continue
		}
		top, bottom := gamemath.ColumnSpan(polygon, x)
		for row := 0; row < g.rows; row++ {
			y := g.cellCenter(col, row).Y
			if y < minY || y > maxY {
				continue
			}
			if y >= top && y <= bottom {
				g.cells[row][col] = glyph
			}
		}
	}
}

// rasterize draws terrain, solids, springs, rings and the character.
func rasterize(l *sim.Level, cols, rows int) *grid {
	c := l.Character
	g := newGrid(c.Position, cols, rows)

	for _, shape := range l.Terrain.Shapes() {
		glyph := '#'
		if shape.OneWay {
			glyph = '='
		}
		g.fillPolygon(shape.Polygon, glyph)
	}
	for _, p := range l.Platforms {
		glyph := '+'
		if p.Monitor {
			glyph = 'M'
		}
		g.fillPolygon(box(p.Position, p.WidthRadius, p.HeightRadius), glyph)
	}
	for _, s := range l.Sloped {
		g.fillPolygon(s.WorldPolygon(), '+')
	}
	for _, s := range l.Springs {
		glyph := map[gamemath.Direction]rune{
			gamemath.Up:    '^',
			gamemath.Down:  'v',
			gamemath.Left:  '<',
			gamemath.Right: '>',
		}[s.Direction]
		g.fillPolygon(box(s.Position, s.WidthRadius, s.HeightRadius), glyph)
	}
	for _, r := range l.Rings.Rings() {
		g.set(r.Position, 'o')
	}

	glyph := '@'
	if c.State().IsBall() {
		glyph = 'O'
	}
	g.set(c.Position, glyph)
	return g
}

func box(center dmath.Vec2, wr, hr float64) []dmath.Vec2 {
	return []dmath.Vec2{
		{X: center.X - wr, Y: center.Y - hr},
		{X: center.X + wr, Y: center.Y - hr},
		{X: center.X + wr, Y: center.Y + hr},
		{X: center.X - wr, Y: center.Y + hr},
	}
}

// draw renders the level and a status line onto screen.
func draw(screen tcell.Screen, l *sim.Level, status string) {
	cols, rows := screen.Size()
	if rows < 2 {
		return
	}
	g := rasterize(l, cols, rows-1)

	screen.Clear()
	for r, line := range g.cells {
		for c, glyph := range line {
			if glyph == ' ' {
				continue
			}
			screen.SetContent(c, r, glyph, nil, glyphStyles[glyph])
		}
	}
	for i, ch := range []rune(status) {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows-1, ch, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}
