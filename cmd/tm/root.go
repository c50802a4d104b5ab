package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tm/internal/config"
	"tm/internal/timespec"
	"tm/internal/timer"
	"tm/internal/tui"
)

const usageLine = "usage: tm <time> <message...>   (time: HH:MM[:SS] or [Nh][Nm][Ns])"

// errUsage is the too-few-arguments failure. It is terminal, like an
// unparseable time string: both show an error window and exit.
var errUsage = errors.New("a time and a message are required")

var rootCmd = &cobra.Command{
	Use:   "tm <time> <message...>",
	Short: "Countdown timer that beeps until dismissed",
	Long: `tm counts down to a target time, then shows a message and beeps until
you dismiss it: click the message, press enter, escape or space, or
close the window.

The time argument is either a wall-clock time ("14:30", "09:15:30") or
a duration ("1h30m", "45s"). A clock time that has already passed today
rolls over to the same time tomorrow. The message is all remaining
arguments joined with spaces.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

// reportedError marks an error fail already put on stderr and in the
// error window, so Execute doesn't repeat it.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reportError prints err to w unless fail already reported it. Fatal
// startup failures (config, audio, terminal) come through here; they
// must reach the shell even though cobra's own reporting is silenced.
func reportError(w io.Writer, err error) {
	var rep reportedError
	if errors.As(err, &rep) {
		return
	}
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(args) < 2 {
		return fail(cfg, errUsage)
	}

	target, err := timespec.Parse(args[0], time.Now())
	if err != nil {
		return fail(cfg, err)
	}

	spec := timer.Spec{
		Target:  target,
		Message: strings.Join(args[1:], " "),
	}
	return runCountdown(cfg, spec)
}

// fail reports a terminal argument error on both surfaces: a console
// line for the invoking shell and an error window that waits for the
// usual acknowledgement gestures. The returned error is marked as
// reported so Execute exits non-zero without printing it again.
func fail(cfg *config.Config, err error) error {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr, usageLine)

	app := tui.NewErrorApp(err.Error(), newPlacer(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, perr := p.Run(); perr != nil {
		return fmt.Errorf("showing error window: %w (after: %v)", perr, err)
	}
	return reportedError{err: err}
}

func newPlacer(cfg *config.Config) tui.Placer {
	return tui.NewPlacer(cfg.Window.Position, cfg.Window.Margin)
}
