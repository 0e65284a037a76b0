package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

// commandBinding decodes keys into one game command.
type commandBinding struct {
	key.Binding
	cmd core.Command
}

func bind(cmd core.Command, help string, keys ...string) commandBinding {
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return commandBinding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help)),
		cmd:     cmd,
	}
}

// GameKeyMap holds the bindings of one controls scheme.
type GameKeyMap struct {
	Scheme   catalog.Controls
	bindings []commandBinding
}

// GameKeys returns the bindings for a scheme. Unknown schemes get the
// directional bindings.
func GameKeys(scheme catalog.Controls) GameKeyMap {
	var b []commandBinding
	switch scheme {
	case catalog.ControlsFalling:
		b = []commandBinding{
			bind(core.CmdShiftLeft, "left", "left", "a"),
			bind(core.CmdShiftRight, "right", "right", "d"),
			bind(core.CmdSoftDrop, "soft drop", "down", "s"),
			bind(core.CmdHardDrop, "hard drop", " "),
			bind(core.CmdRotate, "rotate", "up", "w", "x"),
		}
	case catalog.ControlsBoard:
		b = append(directional(),
			bind(core.CmdReveal, "reveal", " ", "enter"),
			bind(core.CmdFlag, "flag", "f"),
		)
	case catalog.ControlsFlippers:
		b = []commandBinding{
			bind(core.CmdFlipperLeftDown, "left flipper", "z", "left", "a"),
			bind(core.CmdFlipperRightDown, "right flipper", "m", "/", "right", "d"),
			bind(core.CmdLaunch, "launch", " ", "down", "s"),
		}
	case catalog.ControlsJump:
		b = []commandBinding{
			bind(core.CmdJump, "flap", " ", "up", "w", "k"),
		}
	case catalog.ControlsLanes:
		b = []commandBinding{
			bind(core.CmdLaneLeft, "lane left", "left", "a", "h"),
			bind(core.CmdLaneRight, "lane right", "right", "d", "l"),
		}
	case catalog.ControlsPaddleX:
		b = []commandBinding{
			bind(core.CmdLeft, "left", "left", "a"),
			bind(core.CmdRight, "right", "right", "d"),
			bind(core.CmdLaunch, "launch", " ", "up", "w"),
		}
	case catalog.ControlsPaddleY:
		b = []commandBinding{
			bind(core.CmdUp, "up", "up", "w", "k"),
			bind(core.CmdDown, "down", "down", "s", "j"),
		}
	case catalog.ControlsShooter:
		b = []commandBinding{
			bind(core.CmdLeft, "left", "left", "a"),
			bind(core.CmdRight, "right", "right", "d"),
			bind(core.CmdFire, "fire", " ", "up", "w"),
		}
	default:
		scheme = catalog.ControlsDirectional
		b = directional()
	}
	return GameKeyMap{Scheme: scheme, bindings: b}
}

func directional() []commandBinding {
	return []commandBinding{
		bind(core.CmdUp, "up", "up", "w", "k"),
		bind(core.CmdDown, "down", "down", "s", "j"),
		bind(core.CmdLeft, "left", "left", "a", "h"),
		bind(core.CmdRight, "right", "right", "d", "l"),
	}
}

// Command returns the command bound to k, or CmdNone.
func (m GameKeyMap) Command(k string) core.Command {
	for _, b := range m.bindings {
		if key.Matches(keyName(k), b.Binding) {
			return b.cmd
		}
	}
	return core.CmdNone
}

// Bindings lists the scheme's bindings for help views.
func (m GameKeyMap) Bindings() []key.Binding {
	out := make([]key.Binding, len(m.bindings))
	for i, b := range m.bindings {
		out[i] = b.Binding
	}
	return out
}

// GlobalKeyMap holds keys that work in every in-game mode.
type GlobalKeyMap struct {
	Pause   key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultGlobalKeyMap returns the in-game control keys.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// MenuKeyMap holds game-selection keys.
type MenuKeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Select      key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
	Help        key.Binding
}

// DefaultMenuKeyMap returns the menu keys.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "left", "k", "h"),
			key.WithHelp("↑/←", "prev game"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right", "j", "l"),
			key.WithHelp("↓/→", "next game"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play (1 credit)"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// keyMap adapts a binding list to help.KeyMap.
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

// keyName lets plain key strings go through key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }
