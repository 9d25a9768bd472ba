package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"termclock/internal/idle"
	"termclock/internal/logging"
)

func main() {
	timeout := flag.Int("timeout", int(idle.DefaultTimeout/time.Second), "Idle timeout in seconds before the clock pops up")
	once := flag.Bool("once", false, "Pop the clock up now and exit (for manual trigger)")
	size := flag.String("size", "", "Initial display passed to 'termclock run'")
	logFile := flag.String("log-file", "", "Write watcher logs to this file")
	flag.Parse()

	bin, err := findClock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "finding executable path: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(*logFile, "info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var runArgs []string
	if *size != "" {
		runArgs = append(runArgs, "-size", *size)
	}
	w := &idle.Watcher{
		Tmux:     idle.Exec{},
		Timeout:  time.Duration(*timeout) * time.Second,
		Interval: idle.PollInterval,
		Command:  idle.ClockCommand(bin, runArgs...),
		Now:      time.Now,
		Logger:   logger,
	}

	if *once {
		w.Trigger()
		return
	}

	if !idle.InTmux() {
		fmt.Fprintf(os.Stderr, "not running inside tmux\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("termclock idle watcher started (timeout: %ds)\n", *timeout)
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// findClock looks for the termclock binary next to this executable, then
// under ./bin.
func findClock() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	bin := filepath.Join(filepath.Dir(exePath), "termclock")
	if _, err := os.Stat(bin); os.IsNotExist(err) {
		if wd, err := os.Getwd(); err == nil {
			candidate := filepath.Join(wd, "bin", "termclock")
			if _, err := os.Stat(candidate); err == nil {
				bin = candidate
			}
		}
	}
	return bin, nil
}
