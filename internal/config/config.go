package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
	"unicode/utf8"

	"termclock/internal/banner"
	"termclock/internal/input"
	"termclock/internal/lock"
	"termclock/internal/mode"
)

// EnvPrefix is prepended to upper-cased flag names for environment lookup.
const EnvPrefix = "TERMCLOCK"

// Poll bounds. The wait is both the input latency and the redraw period.
const (
	DefaultPoll = 250 * time.Millisecond
	MinPoll     = 50 * time.Millisecond
	MaxPoll     = time.Second
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config controls one clock run.
type Config struct {
	Size     string
	Poll     time.Duration
	Mouse    bool
	LockHash string
	Banner   string
	LogFile  string
	LogLevel string
	Keys     KeyConfig

	// Filled by Validate.
	Initial mode.Mode
	Keymap  input.Keymap
	Speed   banner.Speed
}

// KeyConfig holds the rebindable keys as one-character strings.
type KeyConfig struct {
	Quit    string
	Cycle   string
	Digital string
}

func Default() Config {
	return Config{
		Size:     mode.Default.String(),
		Poll:     DefaultPoll,
		Mouse:    true,
		Banner:   string(banner.DefaultSpeed),
		LogLevel: "info",
		Keys: KeyConfig{
			Quit:    string(input.DefaultKeymap.Quit),
			Cycle:   string(input.DefaultKeymap.Cycle),
			Digital: string(input.DefaultKeymap.Digital),
		},
	}
}

// Register binds every field to a flag on fs, using c's current values
// as defaults.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.Size, "size", c.Size, "Initial display: full, half, quadrant, sextant or analog")
	fs.DurationVar(&c.Poll, "poll", c.Poll, "Input wait per frame (50ms to 1s)")
	fs.BoolVar(&c.Mouse, "mouse", c.Mouse, "Click the clock to cycle displays")
	fs.StringVar(&c.LockHash, "lock-hash", c.LockHash, "bcrypt hash of a passphrase required to quit (see 'termclock hash')")
	fs.StringVar(&c.Banner, "banner", c.Banner, "How long the display name shows after a change: fast, medium, slow or off")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&c.Keys.Quit, "key-quit", c.Keys.Quit, "Key that quits (Esc and Ctrl-C always do)")
	fs.StringVar(&c.Keys.Cycle, "key-cycle", c.Keys.Cycle, "Key that cycles displays (Tab always does)")
	fs.StringVar(&c.Keys.Digital, "key-digital", c.Keys.Digital, "Key that leaves the analog face")
}

// Validate checks every field and resolves Initial, Keymap and Speed.
func (c *Config) Validate() error {
	m, err := mode.Parse(c.Size)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	c.Initial = m

	if c.Poll < MinPoll || c.Poll > MaxPoll {
		return fmt.Errorf("%w: poll %s outside %s..%s", ErrInvalid, c.Poll, MinPoll, MaxPoll)
	}
	speed, err := banner.ParseSpeed(c.Banner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	c.Speed = speed
	if c.LockHash != "" {
		if err := lock.CheckHash(c.LockHash); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	quit, err := keyRune("key-quit", c.Keys.Quit)
	if err != nil {
		return err
	}
	cycle, err := keyRune("key-cycle", c.Keys.Cycle)
	if err != nil {
		return err
	}
	digital, err := keyRune("key-digital", c.Keys.Digital)
	if err != nil {
		return err
	}
	seen := map[rune]bool{}
	for _, r := range []rune{quit, cycle, digital} {
		if r == 0 {
			continue
		}
		if seen[r] {
			return fmt.Errorf("%w: key %q is bound twice", ErrInvalid, r)
		}
		seen[r] = true
	}
	c.Keymap = input.Keymap{Quit: quit, Cycle: cycle, Digital: digital}
	return nil
}

// keyRune accepts a single character, or "" to leave the action unbound.
func keyRune(name, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be one character, got %q", ErrInvalid, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
