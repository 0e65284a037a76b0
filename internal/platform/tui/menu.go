package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuCardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	menuPlayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	menuDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)
	menuFlashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// MenuModel is the game picker. It owns only the cursor and what it
// displays; starting a game is the session's job.
type MenuModel struct {
	catalog *catalog.Catalog
	cursor  int
	credits int
	flash   string
	width   int
	height  int
}

// NewMenuModel creates a menu positioned on the first game.
func NewMenuModel(cat *catalog.Catalog, width, height int) MenuModel {
	return MenuModel{catalog: cat, width: width, height: height}
}

// Move shifts the cursor, wrapping around the catalog.
func (m *MenuModel) Move(delta int) {
	m.flash = ""
	for ; delta > 0; delta-- {
		m.cursor = m.catalog.Next(m.cursor)
	}
	for ; delta < 0; delta++ {
		m.cursor = m.catalog.Prev(m.cursor)
	}
}

// Focus moves the cursor to a game id.
func (m *MenuModel) Focus(id string) {
	if i := m.catalog.IndexOf(id); i >= 0 {
		m.cursor = i
	}
}

// Selected returns the definition under the cursor.
func (m MenuModel) Selected() catalog.Definition {
	return m.catalog.At(m.cursor)
}

// SetCredits updates the displayed balance.
func (m *MenuModel) SetCredits(n int) { m.credits = n }

// CanPlay reports whether the play affordance is enabled.
func (m MenuModel) CanPlay() bool { return m.credits > 0 }

// Flash shows a one-line message until the cursor moves.
func (m *MenuModel) Flash(msg string) { m.flash = msg }

// Resize updates the layout size.
func (m *MenuModel) Resize(w, h int) {
	m.width, m.height = w, h
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("A R C A D E"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("credits: %d", m.credits)), m.width))
	b.WriteString("\n\n")

	list := make([]string, 0, m.catalog.Len())
	for i, d := range m.catalog.All() {
		if i == m.cursor {
			list = append(list, menuCursor.Render("> "+d.Name))
			continue
		}
		list = append(list, "  "+d.Name)
	}

	d := m.Selected()
	play := menuPlayStyle.Render("PLAY  1 credit")
	if !m.CanPlay() {
		play = menuDisabledStyle.Render("NO CREDITS")
	}
	card := menuCardStyle.Render(strings.Join([]string{
		menuTitleStyle.Render(d.Name),
		"",
		fmt.Sprintf("Difficulty  %s", d.Difficulty),
		fmt.Sprintf("Duration    %s", d.Duration),
		fmt.Sprintf("Reward      %d", d.Reward),
		fmt.Sprintf("Controls    %s", d.Controls),
		"",
		play,
	}, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(list, "\n"), "    ", card)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuFlashStyle.Render(m.flash), m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
