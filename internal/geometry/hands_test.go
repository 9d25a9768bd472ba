package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"termclock/internal/clock"
)

const tolerance = 1e-9

func TestProjectKeepsHandLength(t *testing.T) {
	origin := Point{X: 40, Y: 22}
	for _, scale := range []float64{0, 1, 13.5, 200} {
		for u := 0; u < 60; u++ {
			p := Project(float64(u), 60, scale, origin)
			d := math.Hypot(p.X-origin.X, p.Y-origin.Y)
			assert.InDelta(t, scale, d, tolerance, "units=%d scale=%v", u, scale)
		}
	}
}

func TestProjectCardinalPoints(t *testing.T) {
	origin := Point{X: 10, Y: 20}
	const scale = 5.0

	tests := []struct {
		name  string
		units float64
		want  Point
	}{
		{name: "twelve points up", units: 0, want: Point{X: 10, Y: 15}},
		{name: "quarter turn points right", units: 15, want: Point{X: 15, Y: 20}},
		{name: "half turn points down", units: 30, want: Point{X: 10, Y: 25}},
		{name: "three quarters points left", units: 45, want: Point{X: 5, Y: 20}},
		{name: "full turn is twelve", units: 60, want: Point{X: 10, Y: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.units, 60, scale, origin)
			assert.InDelta(t, tt.want.X, got.X, tolerance, "x")
			assert.InDelta(t, tt.want.Y, got.Y, tolerance, "y")
		})
	}
}

func TestProjectZeroRevolution(t *testing.T) {
	origin := Point{X: 3, Y: 4}
	assert.Equal(t, origin, Project(7, 0, 10, origin))
}

func TestHourUnitsCreep(t *testing.T) {
	assert.InDelta(t, 10.0, HourUnits(2, 0), tolerance)
	assert.InDelta(t, 12.5, HourUnits(2, 30), tolerance)
	assert.InDelta(t, 15.0, HourUnits(3, 0), tolerance)
	assert.InDelta(t, 0.0, HourUnits(12, 0), tolerance, "twelve is the top of the dial")
	assert.InDelta(t, 59.0+11.0/12, HourUnits(11, 59), tolerance)
}

func TestHourHandHalfway(t *testing.T) {
	origin := Point{X: 0, Y: 0}
	angle := func(hour12, minute int) float64 {
		p := Project(HourUnits(hour12, minute), 60, 1, origin)
		return math.Atan2(-p.Y, p.X)
	}

	at2, at230, at3 := angle(2, 0), angle(2, 30), angle(3, 0)
	assert.InDelta(t, (at2+at3)/2, at230, tolerance)
	assert.NotEqual(t, at2, at230, "hour hand moves within the hour")
}

func TestProjectHands(t *testing.T) {
	g := Analog(Screen(80, 24))
	s := clock.Sample{Hour12: 3, Minute: 0, Second: 30}

	h := ProjectHands(s, g)

	assert.InDelta(t, g.Origin.X+g.HourScale, h.Hour.X, tolerance, "hour at three")
	assert.InDelta(t, g.Origin.Y, h.Hour.Y, tolerance)
	assert.InDelta(t, g.Origin.X, h.Minute.X, tolerance, "minute at twelve")
	assert.InDelta(t, g.Origin.Y-g.MinuteScale, h.Minute.Y, tolerance)
	assert.InDelta(t, g.Origin.X, h.Second.X, tolerance, "second at six")
	assert.InDelta(t, g.Origin.Y+g.SecondScale, h.Second.Y, tolerance)
}
