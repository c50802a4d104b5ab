package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Box is a rectangle in screen cells, used for mouse hit testing
// against the rendered content.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) falls inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Placer positions rendered content on the screen. It returns the full
// frame to draw and the content's bounding box within it, so hit
// testing and placement share one geometry. Implementations here are
// plain coordinate geometry; a compositor-specific integration would
// satisfy the same interface.
type Placer interface {
	Place(content string, width, height int) (string, Box)
}

// NewPlacer returns the placer for a config position name. Unknown
// names fall back to centering.
func NewPlacer(position string, margin int) Placer {
	switch position {
	case "top-left":
		return CornerPlacer{H: lipgloss.Left, V: lipgloss.Top, Margin: margin}
	case "top-right":
		return CornerPlacer{H: lipgloss.Right, V: lipgloss.Top, Margin: margin}
	case "bottom-left":
		return CornerPlacer{H: lipgloss.Left, V: lipgloss.Bottom, Margin: margin}
	case "bottom-right":
		return CornerPlacer{H: lipgloss.Right, V: lipgloss.Bottom, Margin: margin}
	default:
		return CenterPlacer{}
	}
}

// CenterPlacer centers content on the screen.
type CenterPlacer struct{}

// Place implements Placer.
func (CenterPlacer) Place(content string, width, height int) (string, Box) {
	return place(content, width, height, lipgloss.Center, lipgloss.Center)
}

// CornerPlacer pins content to a screen corner, keeping Margin cells
// from the edges.
type CornerPlacer struct {
	H      lipgloss.Position
	V      lipgloss.Position
	Margin int
}

// Place implements Placer.
func (p CornerPlacer) Place(content string, width, height int) (string, Box) {
	wrapped := lipgloss.NewStyle().Margin(p.Margin).Render(content)
	frame, box := place(wrapped, width, height, p.H, p.V)
	// The box should cover the content itself, not its margin.
	box.X += p.Margin
	box.Y += p.Margin
	box.Width = lipgloss.Width(content)
	box.Height = lipgloss.Height(content)
	return frame, box
}

// place pads content to width×height and computes where it landed. The
// offset arithmetic mirrors lipgloss.Place so the box matches the
// rendered frame cell for cell.
func place(content string, width, height int, hp, vp lipgloss.Position) (string, Box) {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)

	x := int(math.Round(float64(width-w) * float64(hp)))
	if x < 0 {
		x = 0
	}
	y := int(math.Round(float64(height-h) * float64(vp)))
	if y < 0 {
		y = 0
	}

	return lipgloss.Place(width, height, hp, vp, content), Box{X: x, Y: y, Width: w, Height: h}
}
