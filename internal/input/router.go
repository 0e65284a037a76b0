// Package input decodes raw key and pointer events into abstract game
// commands or menu actions. Which of the two a key becomes depends only on
// the session mode, a pure function of session status.
package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// Mode selects how keys are routed.
type Mode int

const (
	ModeMenu    Mode = iota // No session: game selection
	ModePlaying             // Running, unpaused: game commands
	ModePaused              // Running, paused: only resume/back/quit
	ModeResults             // Over: restart or back
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeResults:
		return "results"
	}
	return "unknown"
}

// ModeFor derives the routing mode from session status.
func ModeFor(status session.Status, paused bool) Mode {
	switch status {
	case session.StatusRunning:
		if paused {
			return ModePaused
		}
		return ModePlaying
	case session.StatusOver:
		return ModeResults
	default:
		return ModeMenu
	}
}

// Action is what a routed event asks the platform to do.
type Action int

const (
	ActionNone Action = iota
	ActionCommand
	ActionPointer
	ActionPrevGame
	ActionNextGame
	ActionSelect
	ActionLeaderboard
	ActionPause
	ActionBack
	ActionRestart
	ActionQuit
	ActionHelp
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionCommand:     "Command",
	ActionPointer:     "Pointer",
	ActionPrevGame:    "PrevGame",
	ActionNextGame:    "NextGame",
	ActionSelect:      "Select",
	ActionLeaderboard: "Leaderboard",
	ActionPause:       "Pause",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionHelp:        "Help",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "Unknown"
}

// Routed is a decoded event. Command is set for ActionCommand, X and Y
// (screen cells) for ActionPointer.
type Routed struct {
	Action  Action
	Command core.Command
	X, Y    int
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonOther
)

// Router holds the bindings for the active controls scheme.
type Router struct {
	game   GameKeyMap
	global GlobalKeyMap
	menu   MenuKeyMap
}

// NewRouter creates a router with directional controls selected.
func NewRouter() *Router {
	return &Router{
		game:   GameKeys(catalog.ControlsDirectional),
		global: DefaultGlobalKeyMap(),
		menu:   DefaultMenuKeyMap(),
	}
}

// SetScheme switches the game bindings, normally at session start.
func (r *Router) SetScheme(scheme catalog.Controls) {
	r.game = GameKeys(scheme)
}

// Scheme returns the active controls scheme.
func (r *Router) Scheme() catalog.Controls {
	return r.game.Scheme
}

// Route decodes one key (Bubble Tea key string) in the given mode.
func (r *Router) Route(k string, mode Mode) Routed {
	kn := keyName(k)
	switch mode {
	case ModeMenu:
		switch {
		case key.Matches(kn, r.menu.Quit):
			return Routed{Action: ActionQuit}
		case key.Matches(kn, r.menu.Prev):
			return Routed{Action: ActionPrevGame}
		case key.Matches(kn, r.menu.Next):
			return Routed{Action: ActionNextGame}
		case key.Matches(kn, r.menu.Select):
			return Routed{Action: ActionSelect}
		case key.Matches(kn, r.menu.Leaderboard):
			return Routed{Action: ActionLeaderboard}
		case key.Matches(kn, r.menu.Help):
			return Routed{Action: ActionHelp}
		}

	case ModePlaying:
		if a := r.common(kn); a != ActionNone {
			return Routed{Action: a}
		}
		if cmd := r.game.Command(k); cmd != core.CmdNone {
			return Routed{Action: ActionCommand, Command: cmd}
		}

	case ModePaused:
		return Routed{Action: r.common(kn)}

	case ModeResults:
		switch {
		case key.Matches(kn, r.global.Quit):
			return Routed{Action: ActionQuit}
		case key.Matches(kn, r.global.Back):
			return Routed{Action: ActionBack}
		case key.Matches(kn, r.global.Restart):
			return Routed{Action: ActionRestart}
		case key.Matches(kn, r.global.Help):
			return Routed{Action: ActionHelp}
		}
	}
	return Routed{}
}

func (r *Router) common(kn keyName) Action {
	switch {
	case key.Matches(kn, r.global.Quit):
		return ActionQuit
	case key.Matches(kn, r.global.Pause):
		return ActionPause
	case key.Matches(kn, r.global.Back):
		return ActionBack
	case key.Matches(kn, r.global.Help):
		return ActionHelp
	}
	return ActionNone
}

// Pointer routes a pointer move. Only pointer-driven schemes follow it,
// and only while playing.
func (r *Router) Pointer(x, y int, mode Mode) Routed {
	if mode != ModePlaying || !r.game.Scheme.UsesPointer() {
		return Routed{}
	}
	return Routed{Action: ActionPointer, X: x, Y: y}
}

// Click routes a pointer button press or release while playing. Flipper
// tables map the buttons to the flippers, the only place a release is
// reported by the terminal.
func (r *Router) Click(b Button, pressed bool, mode Mode) Routed {
	if mode != ModePlaying {
		return Routed{}
	}
	var cmd core.Command
	switch r.game.Scheme {
	case catalog.ControlsFlippers:
		switch {
		case b == ButtonLeft && pressed:
			cmd = core.CmdFlipperLeftDown
		case b == ButtonLeft:
			cmd = core.CmdFlipperLeftUp
		case b == ButtonRight && pressed:
			cmd = core.CmdFlipperRightDown
		case b == ButtonRight:
			cmd = core.CmdFlipperRightUp
		}
	case catalog.ControlsPaddleX:
		if pressed {
			cmd = core.CmdLaunch
		}
	case catalog.ControlsShooter:
		if pressed {
			cmd = core.CmdFire
		}
	case catalog.ControlsJump:
		if pressed {
			cmd = core.CmdJump
		}
	}
	if cmd == core.CmdNone {
		return Routed{}
	}
	return Routed{Action: ActionCommand, Command: cmd}
}

// Help returns the bindings to show in the given mode.
func (r *Router) Help(mode Mode) help.KeyMap {
	g := r.global
	switch mode {
	case ModeMenu:
		m := r.menu
		return keyMap{
			short: []key.Binding{m.Prev, m.Next, m.Select, m.Leaderboard, m.Quit},
			full:  [][]key.Binding{{m.Prev, m.Next, m.Select}, {m.Leaderboard, m.Help, m.Quit}},
		}
	case ModePlaying:
		game := r.game.Bindings()
		return keyMap{
			short: append(append([]key.Binding{}, game...), g.Pause, g.Back),
			full:  [][]key.Binding{game, {g.Pause, g.Back, g.Help, g.Quit}},
		}
	case ModePaused:
		return keyMap{
			short: []key.Binding{g.Pause, g.Back, g.Quit},
			full:  [][]key.Binding{{g.Pause, g.Back, g.Help, g.Quit}},
		}
	default:
		return keyMap{
			short: []key.Binding{g.Restart, g.Back, g.Quit},
			full:  [][]key.Binding{{g.Restart, g.Back, g.Help, g.Quit}},
		}
	}
}
