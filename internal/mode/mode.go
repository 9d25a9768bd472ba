package mode

import (
	"fmt"
	"strings"
)

// Tier is a digital display size preset.
type Tier int

const (
	Full Tier = iota
	Half
	Quadrant
	Sextant
)

// Tiers lists every tier in cycle order.
var Tiers = []Tier{Full, Half, Quadrant, Sextant}

func (t Tier) String() string {
	switch t {
	case Full:
		return "full"
	case Half:
		return "half"
	case Quadrant:
		return "quadrant"
	case Sextant:
		return "sextant"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// AnalogName selects the analog face on the command line.
const AnalogName = "analog"

// Default is the display state used when none is requested.
var Default = Mode{Tier: Quadrant}

// Mode is the display state carried between frames. Tier is kept while
// Analog is set so switching back restores it.
type Mode struct {
	Tier   Tier
	Analog bool
}

// Advance returns the next display state in the cycle
// full → half → quadrant → sextant → analog → full.
func (m Mode) Advance() Mode {
	if m.Analog {
		return Mode{Tier: Full}
	}
	switch m.Tier {
	case Full:
		m.Tier = Half
	case Half:
		m.Tier = Quadrant
	case Quadrant:
		m.Tier = Sextant
	case Sextant:
		m.Analog = true
	default:
		// Out-of-range tiers re-enter the cycle at the top.
		m.Tier = Full
	}
	return m
}

// ForceDigital clears the analog flag and keeps the tier.
func (m Mode) ForceDigital() Mode {
	m.Analog = false
	return m
}

func (m Mode) String() string {
	if m.Analog {
		return AnalogName
	}
	return m.Tier.String()
}

// Parse maps a display name to a Mode. "analog" starts on the analog face
// with the default tier remembered.
func Parse(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == AnalogName {
		return Mode{Tier: Default.Tier, Analog: true}, nil
	}
	for _, t := range Tiers {
		if t.String() == name {
			return Mode{Tier: t}, nil
		}
	}
	return Mode{}, fmt.Errorf("unknown display %q (want one of %s)", name, strings.Join(Names(), ", "))
}

// Names lists every name Parse accepts.
func Names() []string {
	names := make([]string, 0, len(Tiers)+1)
	for _, t := range Tiers {
		names = append(names, t.String())
	}
	return append(names, AnalogName)
}
