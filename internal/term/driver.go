// Package term owns the terminal: screen setup and teardown, a bounded
// event poll, and restoring the terminal on the way out.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"termclock/internal/input"
)

// ErrClosed is returned by Poll once the event source has stopped.
var ErrClosed = errors.New("terminal event source closed")

// Options configures screen setup.
type Options struct {
	Mouse bool
}

// Driver is a tcell screen plus the goroutine that feeds its events.
type Driver struct {
	screen tcell.Screen
	events chan tcell.Event
	closed bool
}

// Open initialises the terminal and starts reading events.
func Open(opts Options) (*Driver, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return Attach(s, opts)
}

// Attach initialises an already created screen. Tests pass a simulation
// screen here.
func Attach(s tcell.Screen, opts Options) (*Driver, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.Clear()
	s.HideCursor()
	if opts.Mouse {
		s.EnableMouse(tcell.MouseButtonEvents)
	}

	d := &Driver{screen: s, events: make(chan tcell.Event, 10)}
	go func() {
		defer close(d.events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			d.events <- ev
		}
	}()
	return d, nil
}

// Screen is the tcell screen frames are painted on.
func (d *Driver) Screen() tcell.Screen { return d.screen }

// Size reports the terminal size in cells.
func (d *Driver) Size() (int, int) { return d.screen.Size() }

// Poll waits up to timeout for the next event the loop cares about.
// ok is false when the wait timed out or ctx was cancelled.
func (d *Driver) Poll(ctx context.Context, timeout time.Duration) (input.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return input.Event{}, false, nil
		case <-timer.C:
			return input.Event{}, false, nil
		case ev, open := <-d.events:
			if !open {
				return input.Event{}, false, ErrClosed
			}
			if e, isErr := ev.(*tcell.EventError); isErr {
				return input.Event{}, false, fmt.Errorf("reading terminal events: %w", e)
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				d.screen.Sync()
			}
			if out, ok := input.FromTcell(ev); ok {
				return out, true, nil
			}
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.screen.DisableMouse()
	d.screen.Fini()
}

// Recover restores the terminal before a panic continues. Use it as
// `defer d.Recover()` so recover runs in the deferred call itself.
func (d *Driver) Recover() {
	if r := recover(); r != nil {
		d.Close()
		panic(r)
	}
}
