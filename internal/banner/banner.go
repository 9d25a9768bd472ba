package banner

import "fmt"

// ---- Duration Presets

// Speed names how long a banner stays up.
type Speed string

const (
	SpeedFast    Speed = "fast"
	SpeedMedium  Speed = "medium"
	SpeedSlow    Speed = "slow"
	SpeedOff     Speed = "off"
	DefaultSpeed Speed = SpeedMedium
)

// Frames per preset. At the default 250ms poll, medium is about two seconds.
var presets = map[Speed]int{
	SpeedFast:   4,
	SpeedMedium: 8,
	SpeedSlow:   16,
	SpeedOff:    0,
}

// ParseSpeed validates a preset name.
func ParseSpeed(s string) (Speed, error) {
	if _, ok := presets[Speed(s)]; !ok {
		return "", fmt.Errorf("unknown banner speed %q", s)
	}
	return Speed(s), nil
}

// State is a frame-counted overlay message.
type State struct {
	text      string // message on screen, "" when hidden
	remaining int    // frames until the banner hides
	lifetime  int    // frames Show arms
}

// New returns a hidden banner using preset s. Unknown presets fall back
// to the default.
func New(s Speed) *State {
	frames, ok := presets[s]
	if !ok {
		frames = presets[DefaultSpeed]
	}
	return &State{lifetime: frames}
}

// Show arms the banner with text, replacing anything on screen.
func (b *State) Show(text string) {
	if b.lifetime == 0 {
		return
	}
	b.text = text
	b.remaining = b.lifetime
}

// OnFrame is called once per drawn frame.
func (b *State) OnFrame() {
	if b.remaining > 0 {
		b.remaining--
	}
	if b.remaining == 0 {
		b.text = ""
	}
}

// Text returns the active message, or "" when hidden.
func (b *State) Text() string {
	return b.text
}

// Visible reports whether a message is up.
func (b *State) Visible() bool {
	return b.text != ""
}
