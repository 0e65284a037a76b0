package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/input"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/logging"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// chromeRows is the number of rows below the game: a status line and help.
const chromeRows = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Deps is everything an App needs from its host process.
type Deps struct {
	Context  context.Context
	UserID   string
	Catalog  *catalog.Catalog
	Store    ledger.Store
	Settings config.SessionConfig
	Logger   *log.Logger

	Width, Height int
	Seed          int64

	// StartGame skips the menu and starts this game at launch. Backing
	// out of it quits instead of returning to the menu.
	StartGame string
}

// App is the top-level Bubble Tea model: menu, scoreboard and the running
// session. All session calls happen on the Update goroutine.
type App struct {
	ctx    context.Context
	deps   Deps
	logger *log.Logger

	ctrl   *session.Controller
	router *input.Router
	sim    *tickClock
	secs   *tickClock
	screen *core.Screen

	menu      MenuModel
	board     ScoreboardModel
	boardOpen bool
	help      help.Model

	width, height int
	direct        bool
	quitting      bool
}

// NewApp wires a session controller to the terminal.
func NewApp(deps Deps) *App {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Store == nil {
		deps.Store = ledger.NewMemory(ledger.DefaultStartingCredits)
	}
	if deps.Settings.TrophyAfter <= 0 {
		deps.Settings = config.DefaultArcadeConfig().Session
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.UserID == "" {
		deps.UserID = "player"
	}
	if deps.Width <= 0 || deps.Height <= 0 {
		d := core.DefaultConfig()
		deps.Width, deps.Height = d.ScreenW, d.ScreenH+chromeRows
	}

	a := &App{
		ctx:    deps.Context,
		deps:   deps,
		logger: deps.Logger.WithPrefix("tui"),
		router: input.NewRouter(),
		sim:    newTickClock(clockSim),
		secs:   newTickClock(clockSeconds),
		help:   help.New(),
		direct: deps.StartGame != "",
	}
	a.ctrl = session.New(session.Options{
		UserID:   deps.UserID,
		Catalog:  deps.Catalog,
		Settings: deps.Settings,
		Ledger:   deps.Store,
		Reporter: deps.Store,
		Clock:    a.sim,
		Seconds:  a.secs,
		Seed:     deps.Seed,
		Logger:   deps.Logger,
	})
	a.menu = NewMenuModel(deps.Catalog, deps.Width, deps.Height)
	a.screen = core.NewScreen(deps.Width, max(deps.Height-chromeRows, 1))
	a.resize(deps.Width, deps.Height)
	return a
}

// Init starts the requested game, if any.
func (a *App) Init() tea.Cmd {
	a.refreshCredits()
	if a.direct {
		a.menu.Focus(a.deps.StartGame)
		a.start(a.deps.StartGame)
	}
	return a.clockCmds()
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case TickMsg:
		cmd = a.handleTick(msg)
	}
	return a, tea.Batch(cmd, a.clockCmds())
}

// clockCmds collects first ticks of any timer the session armed.
func (a *App) clockCmds() tea.Cmd {
	return tea.Batch(a.sim.Cmd(), a.secs.Cmd())
}

func (a *App) handleTick(msg TickMsg) tea.Cmd {
	switch {
	case a.sim.Accept(msg):
		a.ctrl.Advance(a.ctx)
		return a.sim.Next()
	case a.secs.Accept(msg):
		a.ctrl.Tick(a.ctx)
		return a.secs.Next()
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.boardOpen {
		var (
			act scoreboardAction
			cmd tea.Cmd
		)
		a.board, act, cmd = a.board.Update(msg)
		switch act {
		case scoreboardBack:
			a.boardOpen = false
		case scoreboardQuit:
			return a.quit()
		}
		return cmd
	}

	mode := input.ModeFor(a.ctrl.Status(), a.ctrl.Paused())
	if msg.String() == "ctrl+s" && mode != input.ModeMenu {
		a.saveScreenshot()
		return nil
	}

	r := a.router.Route(msg.String(), mode)
	switch r.Action {
	case input.ActionCommand:
		a.ctrl.Command(a.ctx, r.Command)
	case input.ActionPrevGame:
		a.menu.Move(-1)
	case input.ActionNextGame:
		a.menu.Move(1)
	case input.ActionSelect:
		a.start(a.menu.Selected().ID)
	case input.ActionLeaderboard:
		a.board = NewScoreboardModel(a.ctx, a.deps.Store, a.deps.Catalog, a.logger, a.width, a.height)
		a.boardOpen = true
	case input.ActionPause:
		a.ctrl.TogglePause()
	case input.ActionBack:
		if a.direct {
			return a.quit()
		}
		a.toMenu()
	case input.ActionRestart:
		a.restart()
	case input.ActionQuit:
		return a.quit()
	case input.ActionHelp:
		a.help.ShowAll = !a.help.ShowAll
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	mode := input.ModeFor(a.ctrl.Status(), a.ctrl.Paused())
	if r := a.router.Pointer(msg.X, msg.Y, mode); r.Action == input.ActionPointer {
		a.ctrl.Pointer(r.X, r.Y)
	}
	b, pressed, ok := mouseClick(msg)
	if !ok {
		return
	}
	if r := a.router.Click(b, pressed, mode); r.Action == input.ActionCommand {
		a.ctrl.Command(a.ctx, r.Command)
	}
}

func (a *App) start(id string) {
	err := a.ctrl.Start(a.ctx, id)
	a.refreshCredits()
	switch {
	case errors.Is(err, ledger.ErrInsufficientCredits):
		a.direct = false
		a.menu.Flash("Out of credits.")
	case err != nil:
		a.direct = false
		a.menu.Flash(fmt.Sprintf("Could not start %s.", id))
		a.logger.Error("start failed", "game", id, "error", err)
	default:
		a.router.SetScheme(a.ctrl.Game().Controls)
	}
}

func (a *App) restart() {
	id := a.ctrl.Game().ID
	if err := a.ctrl.Restart(a.ctx); err != nil {
		a.refreshCredits()
		a.ctrl.ExitToMenu()
		a.direct = false
		a.menu.Focus(id)
		if errors.Is(err, ledger.ErrInsufficientCredits) {
			a.menu.Flash("Out of credits.")
			return
		}
		a.menu.Flash(fmt.Sprintf("Could not restart %s.", id))
		a.logger.Error("restart failed", "game", id, "error", err)
		return
	}
	a.refreshCredits()
}

func (a *App) toMenu() {
	if id := a.ctrl.Game().ID; id != "" {
		a.menu.Focus(id)
	}
	a.ctrl.ExitToMenu()
	a.refreshCredits()
}

func (a *App) quit() tea.Cmd {
	a.ctrl.ExitToMenu()
	a.quitting = true
	return tea.Quit
}

func (a *App) refreshCredits() {
	n, err := a.ctrl.Credits(a.ctx)
	if err != nil {
		a.logger.Warn("credits unavailable", "error", err)
		return
	}
	a.menu.SetCredits(n)
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	gameH := max(h-chromeRows, 1)
	a.ctrl.Resize(w, gameH)
	a.screen.Resize(w, gameH)
	a.menu.Resize(w, h)
	a.help.Width = w
	if a.boardOpen {
		a.board.Resize(w, h)
	}
}

// saveScreenshot writes the current frame under ~/.arcade/screenshots.
func (a *App) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.logger.Warn("screenshot failed", "error", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", a.ctrl.Game().ID, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(a.frame().String()), 0o600); err != nil {
		a.logger.Warn("screenshot failed", "error", err)
	}
}

// frame renders the game and the session overlay into the screen buffer.
func (a *App) frame() *core.Screen {
	a.screen.Clear()
	a.ctrl.Render(a.screen)
	drawSessionOverlay(a.screen, a.ctrl.View())
	return a.screen
}

// View renders the current view.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.boardOpen {
		return a.board.View()
	}

	mode := input.ModeFor(a.ctrl.Status(), a.ctrl.Paused())
	helpBar := helpStyle.Render(a.help.View(a.router.Help(mode)))
	if mode == input.ModeMenu {
		return a.menu.View() + "\n" + helpBar
	}
	return RenderScreen(a.frame()) + "\n" + statusStyle.Render(a.statusLine()) + "\n" + helpBar
}

func (a *App) statusLine() string {
	v := a.ctrl.View()
	line := fmt.Sprintf(" %s   score %d   %s   credits %d", v.Game.Name, v.Score, clock(v.Elapsed), v.Credits)
	if v.Trophies {
		line += "   trophies earned"
	}
	return line
}

// Run starts the arcade in the local terminal.
func Run(deps Deps) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
	if deps.Context != nil {
		opts = append(opts, tea.WithContext(deps.Context))
	}
	_, err := tea.NewProgram(NewApp(deps), opts...).Run()
	return err
}
