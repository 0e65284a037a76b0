package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-hub/internal/input"
)

// mouseClick translates a button press or release. ok is false for motion
// and wheel events.
func mouseClick(msg tea.MouseMsg) (b input.Button, pressed bool, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		pressed = true
	case tea.MouseActionRelease:
		pressed = false
	default:
		return input.ButtonOther, false, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		b = input.ButtonLeft
	case tea.MouseButtonRight:
		b = input.ButtonRight
	case tea.MouseButtonNone:
		// Some terminals report releases without a button; treat as left.
		b = input.ButtonLeft
	default:
		return input.ButtonOther, false, false
	}
	return b, pressed, true
}
