package input

import (
	"github.com/gdamore/tcell/v2"

	"termclock/internal/geometry"
	"termclock/internal/mode"
)

// Action is what an input event asks the loop to do.
type Action int

const (
	None Action = iota
	Quit
	Advance
	ForceDigital
)

func (a Action) String() string {
	switch a {
	case Quit:
		return "quit"
	case Advance:
		return "advance"
	case ForceDigital:
		return "digital"
	default:
		return "none"
	}
}

// Keymap binds runes to actions. Esc and Ctrl-C always quit and Tab
// always advances.
type Keymap struct {
	Quit    rune
	Cycle   rune
	Digital rune
}

// DefaultKeymap is q to quit, space to cycle and a to return to digital.
var DefaultKeymap = Keymap{Quit: 'q', Cycle: ' ', Digital: 'a'}

// HandleKey maps a key press to an action. Releases and repeats are
// ignored.
func (k Keymap) HandleKey(ev KeyEvent) Action {
	if ev.Kind != KindPress {
		return None
	}
	switch ev.Key {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyTab:
		return Advance
	case tcell.KeyRune:
		switch ev.Rune {
		case 0:
			return None
		case k.Quit:
			return Quit
		case k.Cycle:
			return Advance
		case k.Digital:
			return ForceDigital
		}
	}
	return None
}

// HandleClick hit-tests a primary button press against the geometry of
// the last drawn frame. Digital mode tests the clock box; analog mode
// tests the dial square. Edges are outside.
func HandleClick(ev MouseEvent, g geometry.Geometry, m mode.Mode) Action {
	if ev.Buttons&tcell.Button1 == 0 {
		return None
	}
	if m.Analog {
		if g.DialContains(g.CellToCanvas(ev.Col, ev.Row)) {
			return Advance
		}
		return None
	}
	if g.Content.Contains(ev.Col, ev.Row) {
		return Advance
	}
	return None
}
