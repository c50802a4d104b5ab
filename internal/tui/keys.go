package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the two gesture sets: acknowledging the alert and
// closing the window outright.
type keyMap struct {
	Acknowledge key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Acknowledge: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter/esc/space", "dismiss"),
		),
		// Quit is the terminal analog of an OS window-close request.
		// Only ctrl+c: a printable key here would let a stray
		// keystroke kill the alert inside the guard window.
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
