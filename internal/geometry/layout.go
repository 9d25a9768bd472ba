package geometry

import "termclock/internal/mode"

// ---- Digital Footprints

// Footprint is the cell size of the titled box holding HH:MM:SS at a tier.
type Footprint struct {
	Height, Width int
}

// One glyph height plus the title rows, and eight glyph widths plus padding.
var footprints = map[mode.Tier]Footprint{
	mode.Full:     {Height: 8 + 1, Width: 8*8 + 1},
	mode.Half:     {Height: 8 + 1, Width: 4*8 + 2},
	mode.Quadrant: {Height: 4 + 2, Width: 4*8 + 2},
	mode.Sextant:  {Height: 3 + 2, Width: 4*8 + 2},
}

// FootprintOf returns the box size for t. Unknown tiers use Quadrant.
func FootprintOf(t mode.Tier) Footprint {
	if f, ok := footprints[t]; ok {
		return f
	}
	return footprints[mode.Quadrant]
}

// DigitalRect centres the footprint of t inside screen. The result is
// clamped to screen on both axes.
func DigitalRect(screen Rect, t mode.Tier) Rect {
	screen = screen.normalized()
	f := FootprintOf(t)
	x, w := centre(screen.X, screen.Width, f.Width)
	y, h := centre(screen.Y, screen.Height, f.Height)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// centre splits avail into leading flex, content and trailing flex. The
// trailing side absorbs the odd cell.
func centre(start, avail, content int) (int, int) {
	content = min(content, avail)
	lead := (avail - content) / 2
	return start + lead, content
}

// ---- Analog Canvas

const (
	HourFraction   = 0.6
	SecondFraction = 0.8
	MinuteFraction = 0.9
)

// Geometry is the analog layout of one frame. It is also kept for one
// more iteration so a click can be tested against what was on screen.
type Geometry struct {
	Screen  Rect // cells the canvas spans
	Content Rect // digital box; empty while analog

	Right, Top float64 // canvas bounds, [0,Right]×[0,Top]
	Origin     Point

	HourScale, MinuteScale, SecondScale float64

	ShorterAxis, LongerAxis float64
	VerticalShort           bool // Top is the shorter axis
}

// Analog lays out the canvas over screen. Top is twice the row count less
// four so the dial stays round on tall cells.
func Analog(screen Rect) Geometry {
	screen = screen.normalized()
	right := float64(screen.Width)
	top := max(float64(screen.Height)*2-4, 0)

	g := Geometry{
		Screen: screen,
		Right:  right,
		Top:    top,
		Origin: Point{X: right / 2, Y: top / 2},
	}
	if top < right {
		g.ShorterAxis, g.LongerAxis, g.VerticalShort = top, right, true
	} else {
		g.ShorterAxis, g.LongerAxis = right, top
	}

	radius := g.ShorterAxis / 2
	g.HourScale = radius * HourFraction
	g.SecondScale = radius * SecondFraction
	g.MinuteScale = radius * MinuteFraction
	return g
}

// Digital records the digital box for t so clicks can be tested against it.
func Digital(screen Rect, t mode.Tier) Geometry {
	screen = screen.normalized()
	return Geometry{Screen: screen, Content: DigitalRect(screen, t)}
}

// CellToCanvas maps the centre of cell (col, row) into canvas space.
func (g Geometry) CellToCanvas(col, row int) Point {
	p := Point{X: float64(col-g.Screen.X) + 0.5}
	if g.Screen.Height > 0 {
		p.Y = (float64(row-g.Screen.Y) + 0.5) * g.Top / float64(g.Screen.Height)
	}
	return p
}

// Dial returns the canvas square of side ShorterAxis centred along the
// longer axis. Its corner and side are in canvas units.
func (g Geometry) Dial() (corner Point, side float64) {
	offset := (g.LongerAxis - g.ShorterAxis) / 2
	if g.VerticalShort {
		return Point{X: offset}, g.ShorterAxis
	}
	return Point{Y: offset}, g.ShorterAxis
}

// DialContains reports whether p lies strictly inside the dial square.
func (g Geometry) DialContains(p Point) bool {
	c, side := g.Dial()
	return p.X > c.X && p.X < c.X+side && p.Y > c.Y && p.Y < c.Y+side
}
