// Package app runs the clock: one input poll, one state transition and
// one frame per iteration.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"termclock/internal/banner"
	"termclock/internal/clock"
	"termclock/internal/geometry"
	"termclock/internal/input"
	"termclock/internal/lock"
	"termclock/internal/logging"
	"termclock/internal/mode"
)

// Driver is the terminal as the loop sees it.
type Driver interface {
	Size() (int, int)
	Poll(ctx context.Context, timeout time.Duration) (input.Event, bool, error)
}

// Composer paints frames.
type Composer interface {
	Begin()
	Digital(rect geometry.Rect, t mode.Tier, s clock.Sample)
	Analog(g geometry.Geometry, h geometry.Hands, s clock.Sample)
	Overlay(screen geometry.Rect, text string)
	Show()
}

// Options configures a run.
type Options struct {
	Initial mode.Mode
	Keymap  input.Keymap
	Poll    time.Duration
	Mouse   bool
	Banner  banner.Speed

	// Lock, when set, makes Quit ask for a passphrase.
	Lock *lock.Prompt

	Now    clock.Source
	Logger *log.Logger
}

// App is the running clock. Its display mode is the only state kept
// between frames; geometry is recomputed every frame and the previous
// frame's copy is held only for hit-testing clicks, as is the mouse
// button mask for telling presses from drags.
type App struct {
	driver   Driver
	composer Composer
	opts     Options
	log      *log.Logger
	banner   *banner.State

	mode    mode.Mode
	last    geometry.Geometry
	buttons input.ButtonState
	done    bool
}

// New returns an App that has not drawn anything yet.
func New(d Driver, c Composer, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Poll <= 0 {
		opts.Poll = 250 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &App{
		driver:   d,
		composer: c,
		opts:     opts,
		log:      opts.Logger,
		banner:   banner.New(opts.Banner),
		mode:     opts.Initial,
	}
}

// Mode is the current display state.
func (a *App) Mode() mode.Mode { return a.mode }

// Run loops until Quit is accepted, ctx is cancelled or the terminal
// fails.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("clock started", "mode", a.mode)
	for !a.done {
		if ctx.Err() != nil {
			a.log.Info("clock stopped", "reason", ctx.Err())
			return nil
		}

		ev, ok, err := a.driver.Poll(ctx, a.opts.Poll)
		if err != nil {
			return fmt.Errorf("polling input: %w", err)
		}
		if ok {
			a.handle(ev)
		}
		if a.done {
			break
		}

		a.frame()
	}
	a.log.Info("clock quit", "mode", a.mode)
	return nil
}

func (a *App) handle(ev input.Event) {
	switch {
	case ev.Key != nil:
		if a.opts.Lock != nil && a.opts.Lock.IsOpen() {
			a.unlockKey(*ev.Key)
			return
		}
		a.apply(a.opts.Keymap.HandleKey(*ev.Key))
	case ev.Mouse != nil:
		press, ok := a.buttons.Press(*ev.Mouse)
		if !ok || !a.opts.Mouse || (a.opts.Lock != nil && a.opts.Lock.IsOpen()) {
			return
		}
		act := input.HandleClick(press, a.last, a.mode)
		a.log.Debug("click", "col", press.Col, "row", press.Row, "action", act)
		a.apply(act)
	case ev.Resize:
		w, h := a.driver.Size()
		a.log.Debug("resize", "width", w, "height", h)
	}
}

func (a *App) apply(act input.Action) {
	switch act {
	case input.Quit:
		if a.opts.Lock != nil {
			a.opts.Lock.Open()
			return
		}
		a.done = true
	case input.Advance:
		a.setMode(a.mode.Advance())
	case input.ForceDigital:
		if a.mode.Analog {
			a.setMode(a.mode.ForceDigital())
		}
	}
}

func (a *App) setMode(m mode.Mode) {
	a.log.Info("mode changed", "from", a.mode, "to", m)
	a.mode = m
	a.banner.Show(m.String())
}

func (a *App) unlockKey(k input.KeyEvent) {
	if k.Kind != input.KindPress {
		return
	}
	switch a.opts.Lock.Key(k.Key, k.Rune) {
	case lock.Unlocked:
		a.log.Info("unlocked")
		a.done = true
	case lock.Rejected:
		a.log.Warn("unlock rejected")
		a.banner.Show("wrong passphrase")
	}
}

// frame samples the clock, lays out and paints one frame, and keeps its
// geometry for the next click.
func (a *App) frame() {
	s := clock.Take(a.opts.Now())
	w, h := a.driver.Size()
	screen := geometry.Screen(w, h)

	a.composer.Begin()
	var g geometry.Geometry
	if a.mode.Analog {
		g = geometry.Analog(screen)
		a.composer.Analog(g, geometry.ProjectHands(s, g), s)
	} else {
		g = geometry.Digital(screen, a.mode.Tier)
		a.composer.Digital(g.Content, a.mode.Tier, s)
	}

	if a.opts.Lock != nil && a.opts.Lock.IsOpen() {
		a.composer.Overlay(screen, "unlock: "+strings.Repeat("*", a.opts.Lock.Typed()))
	} else if a.banner.Visible() {
		a.composer.Overlay(screen, a.banner.Text())
	}
	a.banner.OnFrame()
	a.composer.Show()
	a.last = g
}
