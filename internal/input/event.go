package input

import "github.com/gdamore/tcell/v2"

// Kind distinguishes press from release and repeat. tcell reports
// presses only, so FromTcell always yields KindPress.
type Kind int

const (
	KindPress Kind = iota
	KindRepeat
	KindRelease
)

// KeyEvent is one keyboard event.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune // set when Key is tcell.KeyRune
	Mod  tcell.ModMask
	Kind Kind
}

// MouseEvent is one mouse report: the buttons held while the pointer is
// at a cell. A report with no buttons is a release.
type MouseEvent struct {
	Buttons  tcell.ButtonMask
	Col, Row int
}

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// ButtonState turns mouse reports into presses. Terminals repeat the
// held mask on every drag report, so only a button that was up in the
// previous report counts as pressed.
type ButtonState struct {
	held tcell.ButtonMask
}

// Press records ev and returns it with Buttons narrowed to the buttons
// that just went down. ok is false when none did.
func (b *ButtonState) Press(ev MouseEvent) (MouseEvent, bool) {
	buttons := ev.Buttons & clickButtons
	pressed := buttons &^ b.held
	b.held = buttons
	if pressed == 0 {
		return MouseEvent{}, false
	}
	ev.Buttons = pressed
	return ev, true
}

// Event is what the terminal driver hands the loop. Exactly one of Key,
// Mouse or Resize is set.
type Event struct {
	Key    *KeyEvent
	Mouse  *MouseEvent
	Resize bool
}

// FromTcell converts a tcell event. ok is false for events the loop has
// no use for. Mouse reports pass through with or without buttons so a
// ButtonState can see releases.
func FromTcell(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Event{Key: &KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}}, true
	case *tcell.EventMouse:
		col, row := ev.Position()
		return Event{Mouse: &MouseEvent{Buttons: ev.Buttons(), Col: col, Row: row}}, true
	case *tcell.EventResize:
		return Event{Resize: true}, true
	}
	return Event{}, false
}
