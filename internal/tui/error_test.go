package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateErr(t *testing.T, app ErrorApp, msg tea.Msg) (ErrorApp, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	next, ok := model.(ErrorApp)
	if !ok {
		t.Fatalf("Update returned %T, want ErrorApp", model)
	}
	return next, cmd
}

func TestErrorAppShowsMessage(t *testing.T) {
	app := NewErrorApp("invalid time format: \"abc\"", CenterPlacer{})
	app, _ = updateErr(t, app, tea.WindowSizeMsg{Width: 60, Height: 12})

	if !strings.Contains(app.View(), "invalid time format") {
		t.Errorf("view does not show the error:\n%s", app.View())
	}
}

func TestErrorAppDismissKeys(t *testing.T) {
	for _, tt := range []struct {
		name string
		key  tea.KeyMsg
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			app := NewErrorApp("boom", CenterPlacer{})
			app, _ = updateErr(t, app, tea.WindowSizeMsg{Width: 60, Height: 12})

			_, cmd := updateErr(t, app, tt.key)
			if cmd == nil {
				t.Fatalf("%s did not dismiss the error window", tt.name)
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatalf("%s produced %T, want QuitMsg", tt.name, cmd())
			}
		})
	}
}

func TestErrorAppMouseDismiss(t *testing.T) {
	app := NewErrorApp("boom", CenterPlacer{})
	app, _ = updateErr(t, app, tea.WindowSizeMsg{Width: 60, Height: 12})

	app, cmd := updateErr(t, app, tea.MouseMsg{
		X: 0, Y: 0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if cmd != nil {
		t.Fatal("click outside the error box dismissed the window")
	}

	box := app.box
	_, cmd = updateErr(t, app, tea.MouseMsg{
		X: box.X + box.Width/2, Y: box.Y + box.Height/2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if cmd == nil {
		t.Fatal("click inside the error box did not dismiss the window")
	}
}
