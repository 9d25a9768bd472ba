package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedScreen serves PollEvent from a channel. Other Screen methods
// panic through the nil embedded interface.
type feedScreen struct {
	tcell.Screen
	feed    chan tcell.Event
	initErr error
	mouse   bool
	flags   []tcell.MouseFlags
	synced  int
	finied  int
}

func newFeedScreen() *feedScreen {
	return &feedScreen{feed: make(chan tcell.Event, 4)}
}

func (s *feedScreen) Init() error                       { return s.initErr }
func (s *feedScreen) Clear()                            {}
func (s *feedScreen) HideCursor()                       {}
func (s *feedScreen) EnableMouse(f ...tcell.MouseFlags) { s.mouse, s.flags = true, f }
func (s *feedScreen) DisableMouse()                     { s.mouse = false }
func (s *feedScreen) Size() (int, int)                  { return 80, 24 }
func (s *feedScreen) Sync()                             { s.synced++ }
func (s *feedScreen) Fini()                             { s.finied++ }

func (s *feedScreen) PollEvent() tcell.Event {
	ev, ok := <-s.feed
	if !ok {
		return nil
	}
	return ev
}

func TestAttachInitFailure(t *testing.T) {
	s := newFeedScreen()
	s.initErr = errors.New("no tty")

	_, err := Attach(s, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initializing screen")
}

func TestPoll(t *testing.T) {
	s := newFeedScreen()
	d, err := Attach(s, Options{Mouse: true})
	require.NoError(t, err)
	assert.True(t, s.mouse)
	assert.Equal(t, []tcell.MouseFlags{tcell.MouseButtonEvents}, s.flags, "no drag or motion reports")

	s.feed <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	ev, ok, err := d.Poll(context.Background(), time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, ev.Key)
	assert.Equal(t, 'x', ev.Key.Rune)

	s.feed <- tcell.NewEventResize(100, 40)
	ev, ok, err = d.Poll(context.Background(), time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, ev.Resize)
	assert.Equal(t, 1, s.synced)

	w, h := d.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	d.Close()
	d.Close()
	assert.Equal(t, 1, s.finied, "close is idempotent")
	assert.False(t, s.mouse)
}

func TestPollSkipsUnusedEvents(t *testing.T) {
	s := newFeedScreen()
	d, err := Attach(s, Options{})
	require.NoError(t, err)

	// Events the loop has no use for are dropped and the wait continues.
	s.feed <- tcell.NewEventInterrupt(nil)
	s.feed <- tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	ev, ok, err := d.Poll(context.Background(), time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tcell.KeyTab, ev.Key.Key)
}

func TestPollTimeout(t *testing.T) {
	d, err := Attach(newFeedScreen(), Options{})
	require.NoError(t, err)

	start := time.Now()
	_, ok, err := d.Poll(context.Background(), 20*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestPollCancelled(t *testing.T) {
	d, err := Attach(newFeedScreen(), Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := d.Poll(ctx, time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPollClosedSource(t *testing.T) {
	s := newFeedScreen()
	d, err := Attach(s, Options{})
	require.NoError(t, err)

	close(s.feed)
	_, _, err = d.Poll(context.Background(), time.Second)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRecoverRestoresTerminal(t *testing.T) {
	s := newFeedScreen()
	d, err := Attach(s, Options{})
	require.NoError(t, err)

	assert.PanicsWithValue(t, "boom", func() {
		defer d.Recover()
		panic("boom")
	})
	assert.Equal(t, 1, s.finied)
}
