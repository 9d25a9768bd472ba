// Package idle watches tmux client activity and pops the clock up in a
// full-screen popup once the client has been idle long enough.
package idle

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultTimeout = 300 * time.Second
	PollInterval   = 5 * time.Second
)

// Tmux is the slice of tmux the watcher needs.
type Tmux interface {
	// ClientActivity returns the last client activity time.
	ClientActivity(ctx context.Context) (time.Time, error)
	// Popup runs command in a full-screen popup and waits for it to exit.
	Popup(command []string) error
}

// Watcher launches the clock after Timeout of inactivity.
type Watcher struct {
	Tmux     Tmux
	Timeout  time.Duration
	Interval time.Duration
	Command  []string
	Now      func() time.Time
	Logger   *log.Logger
}

// Run polls until ctx is done. After launching the popup it waits for
// the client to become active again before re-arming, since closing a
// popup does not count as activity.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	waitingForActivity := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if w.Check(ctx, &waitingForActivity) {
				w.Trigger()
			}
		}
	}
}

// Check reports whether the popup should launch now and updates the
// re-arm flag.
func (w *Watcher) Check(ctx context.Context, waiting *bool) bool {
	last, err := w.Tmux.ClientActivity(ctx)
	if err != nil {
		w.Logger.Debug("client activity unavailable", "err", err)
		return false
	}
	idle := max(w.Now().Sub(last), 0)

	if *waiting {
		if idle < w.Timeout {
			*waiting = false
		}
		return false
	}
	if idle >= w.Timeout {
		*waiting = true
		return true
	}
	return false
}

// Trigger launches the clock popup and waits for it.
func (w *Watcher) Trigger() {
	w.Logger.Info("launching clock popup", "command", strings.Join(w.Command, " "))
	if err := w.Tmux.Popup(w.Command); err != nil {
		w.Logger.Warn("clock popup exited", "err", err)
	}
}

// ---- tmux

// Exec drives the real tmux binary.
type Exec struct{}

func (Exec) ClientActivity(ctx context.Context) (time.Time, error) {
	out, err := exec.CommandContext(ctx, "tmux", "display-message", "-p", "#{client_activity}").Output()
	if err != nil {
		return time.Time{}, fmt.Errorf("get client activity: %w", err)
	}
	return ParseActivity(string(out))
}

// Popup is not bound to the watcher's context: the popup is interactive
// and the user closes it.
func (Exec) Popup(command []string) error {
	cmd := exec.Command("tmux", PopupArgs(command)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// PopupArgs builds the tmux arguments for a full-screen popup that exits
// with command. tmux runs the command through a shell, so each word is
// quoted.
func PopupArgs(command []string) []string {
	quoted := make([]string, len(command))
	for i, arg := range command {
		quoted[i] = shellQuote(arg)
	}
	return []string{
		"display-popup",
		"-E",         // Exit when command exits
		"-w", "100%", // Full width
		"-h", "100%", // Full height
		strings.Join(quoted, " "),
	}
}

// shellQuote wraps s in single quotes unless it is made only of
// characters the shell leaves alone.
func shellQuote(s string) string {
	if s != "" && strings.Trim(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_./=:,+@%") == "" {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ParseActivity parses tmux's #{client_activity}, unix seconds.
func ParseActivity(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty activity timestamp")
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse activity timestamp: %w", err)
	}
	return time.Unix(secs, 0), nil
}

// InTmux reports whether the process runs inside a tmux session.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// ClockCommand builds the popup command line for exe with extra run flags.
func ClockCommand(exe string, runArgs ...string) []string {
	return append([]string{exe, "run"}, runArgs...)
}
