package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the tab sidebar
	sidebarWidth       = 20  // Width of the tab sidebar
	maxRows            = 100 // Max rows to load per tab
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardTab is one page of the scoreboard. An empty gameID is the
// trophy leaderboard.
type boardTab struct {
	gameID string
	title  string
}

// scoreboardAction is what the scoreboard asks of its parent after a key.
type scoreboardAction int

const (
	scoreboardStay scoreboardAction = iota
	scoreboardBack
	scoreboardQuit
)

// ScoreboardModel shows the trophy leaderboard and per-game top scores.
type ScoreboardModel struct {
	ctx         context.Context
	store       ledger.Store
	logger      *log.Logger
	tabs        []boardTab
	cursor      int
	rows        []table.Row
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard over store, opened on the trophy tab.
func NewScoreboardModel(ctx context.Context, store ledger.Store, cat *catalog.Catalog, logger *log.Logger, width, height int) ScoreboardModel {
	tabs := make([]boardTab, 0, cat.Len()+1)
	tabs = append(tabs, boardTab{title: "Trophies"})
	for _, d := range cat.All() {
		tabs = append(tabs, boardTab{gameID: d.ID, title: d.Name})
	}

	m := ScoreboardModel{
		ctx:    ctx,
		store:  store,
		logger: logger,
		tabs:   tabs,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
	}
	m.Resize(width, height)
	m.Reload()
	return m
}

// createTable creates a table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	wide := tableWidth - 20
	if wide > 24 {
		wide = 24
	}
	if wide < 10 {
		wide = 10
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: wide},
		{Title: "Trophies", Width: 10},
	}
	if m.tabs[m.cursor].gameID != "" {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: wide},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Reload queries the store for the current tab.
func (m *ScoreboardModel) Reload() {
	m.rows, m.err = nil, nil
	if m.store != nil {
		m.rows, m.err = m.load(m.tabs[m.cursor])
	}
	if m.err != nil {
		m.logger.Warn("scoreboard load failed", "tab", m.tabs[m.cursor].title, "error", m.err)
	}
	m.table = m.createTable()
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) load(tab boardTab) ([]table.Row, error) {
	if tab.gameID == "" {
		entries, err := m.store.Leaderboard(m.ctx, maxRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(entries))
		for i, e := range entries {
			rows[i] = table.Row{fmt.Sprintf("#%d", e.Rank), e.UserID, fmt.Sprintf("%d", e.Trophies)}
		}
		return rows, nil
	}

	scores, err := m.store.TopScores(m.ctx, tab.gameID, maxRows)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.UserID,
			fmt.Sprintf("%d", s.Score),
			s.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

// Resize updates the layout size.
func (m *ScoreboardModel) Resize(w, h int) {
	m.width, m.height = w, h
	m.showSidebar = w >= minWidthForSidebar
	m.help.Width = w
	m.table = m.createTable()
	m.table.SetRows(m.rows)
}

// Update handles a key press and tells the parent what to do next.
func (m ScoreboardModel) Update(msg tea.KeyMsg) (ScoreboardModel, scoreboardAction, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, scoreboardQuit, nil
	case key.Matches(msg, m.keys.Back):
		return m, scoreboardBack, nil
	case key.Matches(msg, m.keys.NextTab):
		m.cursor = (m.cursor + 1) % len(m.tabs)
		m.Reload()
		return m, scoreboardStay, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
		m.Reload()
		return m, scoreboardStay, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, scoreboardStay, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LEADERBOARD"
	if tab := m.tabs[m.cursor]; tab.gameID != "" {
		title = fmt.Sprintf("HIGH SCORES - %s", tab.title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderWideLayout renders the board with a sidebar of tabs.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, tab := range m.tabs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := tab.title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout shows only the current tab name between arrows.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	b.WriteString(centerText("< "+activeTabStyle.Render(m.tabs[m.cursor].title)+" >", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Scores are unavailable right now.")
	case len(m.rows) == 0 && m.tabs[m.cursor].gameID == "":
		return emptyStyle.Render("No trophies awarded yet.\nPlay for a while to earn some!")
	case len(m.rows) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// Tab returns the title of the visible board.
func (m ScoreboardModel) Tab() string {
	return m.tabs[m.cursor].title
}

// Rows returns the loaded rows of the visible board.
func (m ScoreboardModel) Rows() []table.Row {
	return m.rows
}
