// Package render paints clock frames onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"termclock/internal/clock"
	"termclock/internal/geometry"
	"termclock/internal/mode"
)

// ExitHint is the caption under the digital clock.
const ExitHint = " exit: <q> or <Esc> "

// Theme holds the styles a frame is painted with.
type Theme struct {
	Title  tcell.Style
	Hint   tcell.Style
	Glyph  tcell.Style
	Second tcell.Style
	Minute tcell.Style
	Hour   tcell.Style
	Tick   tcell.Style
	Notice tcell.Style
}

// DefaultTheme draws the second hand muted and the hour hand in red.
var DefaultTheme = Theme{
	Title:  tcell.StyleDefault,
	Hint:   tcell.StyleDefault.Dim(true),
	Glyph:  tcell.StyleDefault,
	Second: tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	Minute: tcell.StyleDefault,
	Hour:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	Tick:   tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	Notice: tcell.StyleDefault.Reverse(true),
}

// dialTicks is where hour marks sit, as a fraction of the dial radius.
const dialTicks = 0.98

// Composer paints frames. It is not safe for concurrent use.
type Composer struct {
	screen tcell.Screen
	theme  Theme
}

// NewComposer returns a Composer drawing onto s.
func NewComposer(s tcell.Screen, theme Theme) *Composer {
	return &Composer{screen: s, theme: theme}
}

// Begin clears the screen for a new frame.
func (c *Composer) Begin() {
	c.screen.Clear()
}

// Show flushes the frame to the terminal.
func (c *Composer) Show() {
	c.screen.Show()
}

// Digital draws the titled box at rect with the time in tier t's glyphs.
func (c *Composer) Digital(rect geometry.Rect, t mode.Tier, s clock.Sample) {
	if rect.Empty() {
		return
	}
	c.centred(rect, rect.Y, s.Title(), c.theme.Title)

	glyphs := Glyphs(s.Time, t)
	body := geometry.Rect{X: rect.X, Y: rect.Y + 1, Width: rect.Width, Height: rect.Height - 1}
	if body.Height >= len(glyphs)+1 {
		c.centred(rect, rect.Y+rect.Height-1, ExitHint, c.theme.Hint)
	}

	left := body.X + max(body.Width-len(glyphs[0]), 0)/2
	for dy, row := range glyphs {
		y := body.Y + dy
		if y >= body.Y+body.Height {
			break
		}
		for dx, r := range row {
			x := left + dx
			if x >= body.X+body.Width {
				break
			}
			if r != ' ' {
				c.screen.SetContent(x, y, r, nil, c.theme.Glyph)
			}
		}
	}
}

// Analog draws the dial and the three hands, second first so the hour
// hand ends up on top.
func (c *Composer) Analog(g geometry.Geometry, h geometry.Hands, s clock.Sample) {
	if g.Screen.Empty() {
		return
	}
	cv := NewCanvas(g.Screen, g.Right, g.Top)

	radius := g.ShorterAxis / 2 * dialTicks
	for i := 0; i < 12; i++ {
		cv.Point(geometry.Project(float64(i*5), geometry.UnitsPerRevolution, radius, g.Origin), c.theme.Tick)
	}

	cv.Line(g.Origin, h.Second, c.theme.Second)
	cv.Line(g.Origin, h.Minute, c.theme.Minute)
	cv.Line(g.Origin, h.Hour, c.theme.Hour)
	cv.Paint(c.screen)

	c.centred(g.Screen, g.Screen.Y, s.Title(), c.theme.Title)
}

// Overlay shows a one-line notice just above the bottom row.
func (c *Composer) Overlay(screen geometry.Rect, text string) {
	if text == "" || screen.Height == 0 {
		return
	}
	row := screen.Y + max(screen.Height-2, 0)
	c.centred(screen, row, " "+text+" ", c.theme.Notice)
}

// centred writes text on row y, centred in r and clipped to it.
func (c *Composer) centred(r geometry.Rect, y int, text string, style tcell.Style) {
	w := uniseg.StringWidth(text)
	x := r.X + max(r.Width-w, 0)/2
	limit := r.X + r.Width
	state := -1
	for len(text) > 0 {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if x+width > limit {
			return
		}
		runes := []rune(cluster)
		c.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += width
	}
}
