package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrorApp shows an error message and waits for the same gesture set
// that dismisses an alert. No countdown, no beep, no delay guard.
type ErrorApp struct {
	placer  Placer
	keys    keyMap
	content string

	width  int
	height int
	box    Box
}

// NewErrorApp returns an ErrorApp rendering message.
func NewErrorApp(message string, placer Placer) ErrorApp {
	return ErrorApp{
		placer:  placer,
		keys:    defaultKeyMap(),
		content: errorStyle.Render(message),
	}
}

// Init implements tea.Model.
func (e ErrorApp) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (e ErrorApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		_, e.box = e.placer.Place(e.content, e.width, e.height)
		return e, nil

	case tea.KeyMsg:
		if key.Matches(msg, e.keys.Acknowledge) || key.Matches(msg, e.keys.Quit) {
			return e, tea.Quit
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft &&
			e.box.Contains(msg.X, msg.Y) {
			return e, tea.Quit
		}
	}
	return e, nil
}

// View implements tea.Model.
func (e ErrorApp) View() string {
	if e.width == 0 || e.height == 0 {
		return ""
	}
	frame, _ := e.placer.Place(e.content, e.width, e.height)
	return frame
}
