package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"tm/internal/beeper"
	"tm/internal/config"
	"tm/internal/timer"
	"tm/internal/tone"
	"tm/internal/tui"
)

// runCountdown drives the timer to completion: countdown, alert with
// repeating beep, acknowledgement. Audio init failure is fatal; there
// is no silent fallback mode.
func runCountdown(cfg *config.Config, spec timer.Spec) error {
	params := tone.Params{
		Frequency:  cfg.Tone.Frequency,
		SampleRate: cfg.Tone.SampleRate,
		Volume:     cfg.Tone.Volume,
		Duration:   cfg.Tone.Duration,
	}
	if err := beeper.InitSpeaker(params.Format()); err != nil {
		return fmt.Errorf("initializing audio: %w", err)
	}

	bp := beeper.New(
		tone.Generate(params),
		beeper.SpeakerPlayer(),
		cfg.Beep.Interval,
		cfg.Beep.StopTimeout,
	)

	machine := timer.NewMachine(spec, cfg.UI.AckDelay)
	app := tui.NewApp(machine, bp, newPlacer(cfg), cfg.UI.Tick)

	// Suppress log output while the TUI is active (it corrupts the display)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running timer: %w", err)
	}
	return nil
}
