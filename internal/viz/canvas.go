package viz

import (
	"strings"

	"github.com/san-kum/orbital/internal/gravity"
)

// Braille patterns pack 2x4 dots into one rune, offset 0x2800.
var dotMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-dot drawing surface with a world-coordinate
// window mapped onto it. Dots addressed in world coordinates land on a
// (Width*2) x (Height*4) sub-pixel grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	minX, maxX float64
	minY, maxY float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		minX:   -1, maxX: 1,
		minY: -1, maxY: 1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// SetWindow fixes the world-coordinate rectangle shown by the canvas.
func (c *Canvas) SetWindow(minX, maxX, minY, maxY float64) {
	if maxX <= minX {
		maxX = minX + 1
	}
	if maxY <= minY {
		maxY = minY + 1
	}
	c.minX, c.maxX = minX, maxX
	c.minY, c.maxY = minY, maxY
}

// FitFrame widens the window so every body (and its trail) fits, with
// a margin. Widening only; the window never shrinks mid-run, which
// keeps the view stable while orbits breathe.
func (c *Canvas) FitFrame(f gravity.Frame) {
	fit := func(p gravity.Vec2) {
		if p.X < c.minX {
			c.minX = p.X
		}
		if p.X > c.maxX {
			c.maxX = p.X
		}
		if p.Y < c.minY {
			c.minY = p.Y
		}
		if p.Y > c.maxY {
			c.maxY = p.Y
		}
	}
	for _, p := range f.Positions {
		fit(p)
	}
	for _, trail := range f.Trails {
		for _, p := range trail {
			fit(p)
		}
	}
}

// project maps a world point onto the sub-pixel grid, with a 5% margin
// around the window.
func (c *Canvas) project(p gravity.Vec2) (int, int, bool) {
	padX := (c.maxX - c.minX) * 0.05
	padY := (c.maxY - c.minY) * 0.05
	minX, maxX := c.minX-padX, c.maxX+padX
	minY, maxY := c.minY-padY, c.maxY+padY

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 || spanY <= 0 {
		return 0, 0, false
	}
	x := int((p.X - minX) / spanX * float64(c.Width*2-1))
	// screen y grows downward
	y := int((maxY - p.Y) / spanY * float64(c.Height*4-1))
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return 0, 0, false
	}
	return x, y, true
}

func (c *Canvas) setDot(x, y int) {
	c.Grid[y/4][x/2] |= dotMap[y%4][x%2]
}

// Plot draws a single world-coordinate point.
func (c *Canvas) Plot(p gravity.Vec2) {
	if x, y, ok := c.project(p); ok {
		c.setDot(x, y)
	}
}

// Marker draws a small filled blob, used for body positions so they
// stand out against single-dot trails.
func (c *Canvas) Marker(p gravity.Vec2) {
	cx, cy, ok := c.project(p)
	if !ok {
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cx+dx, cy+dy
			if x >= 0 && y >= 0 && x < c.Width*2 && y < c.Height*4 {
				c.setDot(x, y)
			}
		}
	}
}

// Trail draws a body's past positions.
func (c *Canvas) Trail(points []gravity.Vec2) {
	for _, p := range points {
		c.Plot(p)
	}
}

// DrawFrame clears the canvas and renders one simulation frame:
// trails first, current positions as markers on top.
func (c *Canvas) DrawFrame(f gravity.Frame) {
	c.Clear()
	for _, trail := range f.Trails {
		c.Trail(trail)
	}
	for _, p := range f.Positions {
		c.Marker(p)
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
