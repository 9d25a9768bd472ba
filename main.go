package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awnumar/memguard"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/term"

	"termclock/internal/app"
	"termclock/internal/config"
	"termclock/internal/idle"
	"termclock/internal/lock"
	"termclock/internal/logging"
	"termclock/internal/render"
	sterm "termclock/internal/term"
)

const controls = `Controls:
  q, Esc, Ctrl-C    Quit (asks for the passphrase when -lock-hash is set)
  Space, Tab        Next display: full, half, quadrant, sextant, analog
  a                 Back to the digital display from analog
  Click             Next display, when the click lands on the clock`

func main() {
	os.Exit(run())
}

func run() int {
	defer memguard.Purge()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootFlagSet, rootConfig := clockFlags("termclock")
	runFlagSet, runConfig := clockFlags("termclock run")

	// Idle command flags
	idleFlagSet := flag.NewFlagSet("termclock idle", flag.ContinueOnError)
	idleTimeout := idleFlagSet.Int("timeout", int(idle.DefaultTimeout/time.Second), "Idle timeout in seconds before the clock pops up")
	idleOnce := idleFlagSet.Bool("once", false, "Pop the clock up now and exit")
	idleSize := idleFlagSet.String("size", "", "Initial display passed to 'termclock run'")
	idleLogFile := idleFlagSet.String("log-file", "", "Write watcher logs to this file")
	idleLogLevel := idleFlagSet.String("log-level", "info", "Log level: debug, info, warn or error")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "termclock run [flags]",
		ShortHelp:  "Run the clock",
		LongHelp:   controls,
		FlagSet:    runFlagSet,
		Options:    ffOptions(),
		Exec: func(ctx context.Context, args []string) error {
			return execClock(ctx, runConfig)
		},
	}

	hashCmd := &ffcli.Command{
		Name:       "hash",
		ShortUsage: "termclock hash",
		ShortHelp:  "Print the bcrypt hash of a passphrase for -lock-hash",
		FlagSet:    flag.NewFlagSet("termclock hash", flag.ContinueOnError),
		Exec: func(ctx context.Context, args []string) error {
			return execHash()
		},
	}

	idleCmd := &ffcli.Command{
		Name:       "idle",
		ShortUsage: "termclock idle [flags]",
		ShortHelp:  "Pop the clock up in tmux after the client goes idle",
		FlagSet:    idleFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix(config.EnvPrefix)},
		Exec: func(ctx context.Context, args []string) error {
			var runArgs []string
			if *idleSize != "" {
				runArgs = append(runArgs, "-size", *idleSize)
			}
			return execIdle(ctx, time.Duration(*idleTimeout)*time.Second, *idleOnce, *idleLogFile, *idleLogLevel, runArgs)
		},
	}

	// Root command runs the clock, same as run.
	rootCmd := &ffcli.Command{
		ShortUsage:  "termclock [flags] <subcommand>",
		ShortHelp:   "A terminal clock with block digits and an analog face",
		LongHelp:    controls,
		FlagSet:     rootFlagSet,
		Options:     ffOptions(),
		Subcommands: []*ffcli.Command{runCmd, hashCmd, idleCmd},
		Exec: func(ctx context.Context, args []string) error {
			return execClock(ctx, rootConfig)
		},
	}

	if err := rootCmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func clockFlags(name string) (*flag.FlagSet, *config.Config) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c := config.Default()
	c.Register(fs)
	fs.String("config", "", "Read flags from this file, one 'name value' per line")
	return fs, &c
}

func ffOptions() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix(config.EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	}
}

// ============================================================================
// Clock (run) command
// ============================================================================

func execClock(ctx context.Context, c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(c.LogFile, c.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	var prompt *lock.Prompt
	if c.LockHash != "" {
		prompt = lock.NewPrompt(c.LockHash)
		defer prompt.Close()
	}

	d, err := sterm.Open(sterm.Options{Mouse: c.Mouse})
	if err != nil {
		return err
	}
	defer d.Close()
	defer d.Recover()

	a := app.New(d, render.NewComposer(d.Screen(), render.DefaultTheme), app.Options{
		Initial: c.Initial,
		Keymap:  c.Keymap,
		Poll:    c.Poll,
		Mouse:   c.Mouse,
		Banner:  c.Speed,
		Lock:    prompt,
		Logger:  logger,
	})
	return a.Run(ctx)
}

// ============================================================================
// Hash command
// ============================================================================

func execHash() error {
	first, err := readPassphrase("Passphrase: ")
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(first)
	if len(first) == 0 {
		return errors.New("empty passphrase")
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		second, err := readPassphrase("Again: ")
		if err != nil {
			return err
		}
		defer memguard.WipeBytes(second)
		if !bytes.Equal(first, second) {
			return errors.New("passphrases do not match")
		}
	}

	h, err := lock.Hash(first)
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

// readPassphrase reads without echo from a terminal, or one line from a
// pipe.
func readPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadBytes('\n')
		if err != nil && len(line) == 0 {
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		return bytes.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, prompt)
	p, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return p, nil
}

// ============================================================================
// Idle command
// ============================================================================

func execIdle(ctx context.Context, timeout time.Duration, once bool, logFile, logLevel string, runArgs []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding executable path: %w", err)
	}

	logger, closeLog, err := logging.Open(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	w := &idle.Watcher{
		Tmux:     idle.Exec{},
		Timeout:  timeout,
		Interval: idle.PollInterval,
		Command:  idle.ClockCommand(exe, runArgs...),
		Now:      time.Now,
		Logger:   logger,
	}

	if once {
		w.Trigger()
		return nil
	}
	if !idle.InTmux() {
		return errors.New("not running inside tmux")
	}

	fmt.Printf("termclock idle watcher started (timeout: %s)\n", timeout)
	return w.Run(ctx)
}
