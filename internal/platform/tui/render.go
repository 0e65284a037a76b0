package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok || !startColor.Valid() {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawSessionOverlay writes the session layer's messages over a rendered game:
// the trophy notice on the top row, and the pause or results panel.
func drawSessionOverlay(dst *core.Screen, v session.View) {
	if v.Notice != "" {
		dst.Pen(core.ColorNotice)
		dst.DrawTextCentered(0, " "+v.Notice+" ")
		dst.Pen(core.ColorDefault)
	}

	switch {
	case v.Status == session.StatusRunning && v.Paused:
		dst.Pen(core.ColorBrightWhite)
		dst.DrawMessage("PAUSED", "", "p: resume   esc: menu")
		dst.Pen(core.ColorDefault)

	case v.Status == session.StatusOver:
		dst.Pen(resultColor(v.Result))
		dst.DrawMessage(
			resultTitle(v.Result),
			"",
			fmt.Sprintf("Score  %d", v.Score),
			fmt.Sprintf("Time   %s", clock(v.Elapsed)),
			"",
			"r: play again (1 credit)   esc: menu",
		)
		dst.Pen(core.ColorDefault)
	}
}

func resultTitle(r ledger.Result) string {
	switch r {
	case ledger.ResultWin:
		return "YOU WIN"
	case ledger.ResultTimeout:
		return "TIME UP"
	case ledger.ResultFault:
		return "GAME HALTED"
	}
	return "GAME OVER"
}

func resultColor(r ledger.Result) core.Color {
	switch r {
	case ledger.ResultWin:
		return core.ColorWin
	case ledger.ResultTimeout:
		return core.ColorTimeout
	}
	return core.ColorLose
}

// clock formats elapsed play time as m:ss.
func clock(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
