package geometry

import (
	"math"

	"termclock/internal/clock"
)

// UnitsPerRevolution is the dial resolution used by all three hands.
const UnitsPerRevolution = 60

// Hands holds the three hand tips for one frame.
type Hands struct {
	Hour, Minute, Second Point
}

// Project places a hand tip. units/perRevolution of a turn is measured
// clockwise from 12 o'clock, which points toward decreasing y.
func Project(units, perRevolution, scale float64, origin Point) Point {
	if perRevolution == 0 {
		return origin
	}
	degrees := units * (360 / perRevolution)
	theta := (90 - degrees) * math.Pi / 180
	return Point{
		X: origin.X + math.Cos(theta)*scale,
		Y: origin.Y - math.Sin(theta)*scale,
	}
}

// HourUnits converts a 12-hour reading into minute-dial units. The minute
// contributes a fraction so the hand creeps between hour marks.
func HourUnits(hour12, minute int) float64 {
	return float64((hour12%12)*5) + float64(minute)/12
}

// ProjectHands computes every hand tip for s on the analog canvas g.
func ProjectHands(s clock.Sample, g Geometry) Hands {
	return Hands{
		Hour:   Project(HourUnits(s.Hour12, s.Minute), UnitsPerRevolution, g.HourScale, g.Origin),
		Minute: Project(float64(s.Minute), UnitsPerRevolution, g.MinuteScale, g.Origin),
		Second: Project(float64(s.Second), UnitsPerRevolution, g.SecondScale, g.Origin),
	}
}
