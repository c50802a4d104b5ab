// Package tui renders the countdown and the alert in the terminal,
// full screen, and turns user input into state-machine gestures.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tm/internal/timer"
)

// Alerter is the beep loop as the UI sees it: start on expiry, stop on
// acknowledgement, or just signal and walk away on a close request.
type Alerter interface {
	Start()
	Signal()
	Stop() bool
}

// tickMsg drives the update loop at the configured period.
type tickMsg time.Time

// App is the bubbletea model for a running timer. It wraps the state
// machine and owns nothing else mutable; the beep worker is reached
// only through the Alerter.
type App struct {
	machine *timer.Machine
	alerter Alerter
	placer  Placer
	keys    keyMap
	tick    time.Duration
	// clock is time.Now outside of tests.
	clock func() time.Time

	width  int
	height int
	// content is the currently rendered block (countdown or message).
	content string
	// box is content's position on screen, kept for mouse hit tests.
	box Box
	// lastContentWidth detects rendered-width changes so placement is
	// recomputed only when the digit count shifts.
	lastContentWidth int
}

// NewApp returns an App counting down toward the machine's target.
func NewApp(machine *timer.Machine, alerter Alerter, placer Placer, tick time.Duration) App {
	a := App{
		machine: machine,
		alerter: alerter,
		placer:  placer,
		keys:    defaultKeyMap(),
		tick:    tick,
		clock:   time.Now,
	}
	remaining := machine.Spec().Target.Sub(a.clock())
	a.content = countdownStyle.Render(timer.FormatRemaining(remaining))
	a.lastContentWidth = lipgloss.Width(a.content)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.tickCmd()
}

func (a App) tickCmd() tea.Cmd {
	return tea.Tick(a.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.box = a.measure()
		return a, nil

	case tickMsg:
		return a.handleTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			// Close request: signal the beep worker but don't wait for
			// it; process exit reclaims everything.
			a.alerter.Signal()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Acknowledge):
			return a.acknowledge()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft &&
			a.box.Contains(msg.X, msg.Y) {
			return a.acknowledge()
		}
	}
	return a, nil
}

func (a App) handleTick() (tea.Model, tea.Cmd) {
	remaining, fired := a.machine.Tick(a.clock())
	switch {
	case fired:
		a.alerter.Start()
		a.content = messageStyle.Render(a.machine.Spec().Message)
		a.box = a.measure()
	case a.machine.State() == timer.StateCountingDown:
		a.content = countdownStyle.Render(timer.FormatRemaining(remaining))
		// Re-measure only when the rendered width changes (crossing an
		// hour boundary drops digits) so the placement doesn't drift.
		if w := lipgloss.Width(a.content); w != a.lastContentWidth {
			a.lastContentWidth = w
			a.box = a.measure()
		}
	}
	return a, a.tickCmd()
}

func (a App) acknowledge() (tea.Model, tea.Cmd) {
	if a.machine.Acknowledge(a.clock()) {
		a.alerter.Stop()
		return a, tea.Quit
	}
	return a, nil
}

func (a App) measure() Box {
	_, box := a.placer.Place(a.content, a.width, a.height)
	return box
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	frame, _ := a.placer.Place(a.content, a.width, a.height)
	return frame
}
