package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"termclock/internal/geometry"
)

// Braille dot bits by (column, row) within a cell.
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a braille dot grid laid over a cell rectangle. Canvas
// coordinates [0,Right]×[0,Top] stretch over the whole grid.
type Canvas struct {
	area       geometry.Rect
	right, top float64
	dots       []rune
	styles     []tcell.Style
	dotW, dotH int
}

// NewCanvas returns an empty canvas over area with the given bounds.
func NewCanvas(area geometry.Rect, right, top float64) *Canvas {
	n := area.Width * area.Height
	return &Canvas{
		area:   area,
		right:  right,
		top:    top,
		dots:   make([]rune, n),
		styles: make([]tcell.Style, n),
		dotW:   area.Width * 2,
		dotH:   area.Height * 4,
	}
}

// dot converts a canvas point to dot-grid coordinates.
func (c *Canvas) dot(p geometry.Point) (int, int) {
	var x, y float64
	if c.right > 0 {
		x = p.X / c.right * float64(c.dotW-1)
	}
	if c.top > 0 {
		y = p.Y / c.top * float64(c.dotH-1)
	}
	return int(math.Round(x)), int(math.Round(y))
}

func (c *Canvas) set(x, y int, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.dotW || y >= c.dotH {
		return
	}
	i := (y/4)*c.area.Width + x/2
	c.dots[i] |= brailleBits[x%2][y%4]
	c.styles[i] = style
}

// Point lights the dot nearest p.
func (c *Canvas) Point(p geometry.Point, style tcell.Style) {
	x, y := c.dot(p)
	c.set(x, y, style)
}

// Line draws a segment with Bresenham's algorithm. A cell takes the
// style of the last dot drawn into it.
func (c *Canvas) Line(from, to geometry.Point, style tcell.Style) {
	x0, y0 := c.dot(from)
	x1, y1 := c.dot(to)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Cell returns the braille rune at cell (col, row) relative to the
// canvas area, or 0 when no dot is lit there.
func (c *Canvas) Cell(col, row int) (rune, tcell.Style) {
	i := row*c.area.Width + col
	if c.dots[i] == 0 {
		return 0, tcell.StyleDefault
	}
	return 0x2800 + c.dots[i], c.styles[i]
}

// Paint copies every lit cell onto s.
func (c *Canvas) Paint(s tcell.Screen) {
	for row := 0; row < c.area.Height; row++ {
		for col := 0; col < c.area.Width; col++ {
			if r, st := c.Cell(col, row); r != 0 {
				s.SetContent(c.area.X+col, c.area.Y+row, r, nil, st)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
