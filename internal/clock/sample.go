package clock

import "time"

// ---- Label Formats

const (
	TimeFormat = "15:04:05"
	DateFormat = "2006-01-02"
)

// Source returns the current instant. time.Now satisfies it.
type Source func() time.Time

// Sample is the wall-clock reading for one frame.
type Sample struct {
	Hour12 int // 1..12
	Hour24 int // 0..23
	Minute int
	Second int

	Time         string // HH:MM:SS, always 8 characters
	DateLabel    string
	WeekdayLabel string
}

// Take derives a Sample from now in now's own location.
func Take(now time.Time) Sample {
	h, m, s := now.Clock()
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return Sample{
		Hour12:       h12,
		Hour24:       h,
		Minute:       m,
		Second:       s,
		Time:         now.Format(TimeFormat),
		DateLabel:    now.Format(DateFormat),
		WeekdayLabel: now.Weekday().String(),
	}
}

// Title is the box caption shown above the clock.
func (s Sample) Title() string {
	return " " + s.DateLabel + " " + s.WeekdayLabel + " "
}
