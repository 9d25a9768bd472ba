// Package geometry computes where the clock is drawn: the centred box for
// the digital tiers, the analog canvas and its hand tips, and the regions
// that accept clicks.
//
// Two coordinate spaces are in play. Rect is in terminal cells. Point is
// in canvas space, a float plane whose x runs 0..Right across the screen
// width and whose y runs 0..Top down the screen height, with Top about
// twice the row count so that a circle of canvas radius r looks round on
// cells that are twice as tall as they are wide.
package geometry

// Point is a position in canvas space. Y grows downward.
type Point struct {
	X, Y float64
}

// Rect is a cell rectangle. Width and Height are never negative once
// produced by this package.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Screen returns the rectangle covering a w×h terminal.
func Screen(w, h int) Rect {
	return Rect{Width: max(w, 0), Height: max(h, 0)}
}

// Contains reports whether (col, row) lies strictly inside r. Points on
// the edges do not count.
func (r Rect) Contains(col, row int) bool {
	return col > r.X && col < r.X+r.Width && row > r.Y && row < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks r by one cell on every side.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}.normalized()
}

func (r Rect) normalized() Rect {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
