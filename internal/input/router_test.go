package input

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		status session.Status
		paused bool
		want   Mode
	}{
		{session.StatusIdle, false, ModeMenu},
		{session.StatusRunning, false, ModePlaying},
		{session.StatusRunning, true, ModePaused},
		{session.StatusOver, false, ModeResults},
	}
	for _, tt := range tests {
		if got := ModeFor(tt.status, tt.paused); got != tt.want {
			t.Errorf("ModeFor(%v, %v) = %v, want %v", tt.status, tt.paused, got, tt.want)
		}
	}
}

func TestRouteGameCommands(t *testing.T) {
	tests := []struct {
		scheme catalog.Controls
		key    string
		want   core.Command
	}{
		{catalog.ControlsDirectional, "up", core.CmdUp},
		{catalog.ControlsDirectional, "a", core.CmdLeft},
		{catalog.ControlsDirectional, "l", core.CmdRight},
		{catalog.ControlsFalling, "left", core.CmdShiftLeft},
		{catalog.ControlsFalling, "down", core.CmdSoftDrop},
		{catalog.ControlsFalling, " ", core.CmdHardDrop},
		{catalog.ControlsFalling, "up", core.CmdRotate},
		{catalog.ControlsBoard, "right", core.CmdRight},
		{catalog.ControlsBoard, "enter", core.CmdReveal},
		{catalog.ControlsBoard, "f", core.CmdFlag},
		{catalog.ControlsFlippers, "z", core.CmdFlipperLeftDown},
		{catalog.ControlsFlippers, "m", core.CmdFlipperRightDown},
		{catalog.ControlsFlippers, " ", core.CmdLaunch},
		{catalog.ControlsJump, " ", core.CmdJump},
		{catalog.ControlsJump, "up", core.CmdJump},
		{catalog.ControlsLanes, "left", core.CmdLaneLeft},
		{catalog.ControlsLanes, "d", core.CmdLaneRight},
		{catalog.ControlsPaddleX, "left", core.CmdLeft},
		{catalog.ControlsPaddleX, " ", core.CmdLaunch},
		{catalog.ControlsPaddleY, "down", core.CmdDown},
		{catalog.ControlsShooter, " ", core.CmdFire},
		{catalog.ControlsShooter, "right", core.CmdRight},
		{catalog.ControlsJump, "left", core.CmdNone},
		{catalog.ControlsLanes, "up", core.CmdNone},
	}
	r := NewRouter()
	for _, tt := range tests {
		t.Run(string(tt.scheme)+"/"+tt.key, func(t *testing.T) {
			r.SetScheme(tt.scheme)
			got := r.Route(tt.key, ModePlaying)
			if tt.want == core.CmdNone {
				if got.Action != ActionNone {
					t.Errorf("Route = %+v, want nothing", got)
				}
				return
			}
			if got.Action != ActionCommand || got.Command != tt.want {
				t.Errorf("Route = %v/%v, want Command/%v", got.Action, got.Command, tt.want)
			}
		})
	}
}

func TestSameKeyDependsOnMode(t *testing.T) {
	r := NewRouter()
	r.SetScheme(catalog.ControlsDirectional)

	tests := []struct {
		key  string
		mode Mode
		want Action
	}{
		{"up", ModeMenu, ActionPrevGame},
		{"down", ModeMenu, ActionNextGame},
		{"enter", ModeMenu, ActionSelect},
		{" ", ModeMenu, ActionSelect},
		{"tab", ModeMenu, ActionLeaderboard},
		{"q", ModeMenu, ActionQuit},
		{"up", ModePlaying, ActionCommand},
		{"p", ModePlaying, ActionPause},
		{"esc", ModePlaying, ActionBack},
		{"q", ModePlaying, ActionQuit},
		{"r", ModePlaying, ActionNone},
		{"up", ModePaused, ActionNone},
		{"p", ModePaused, ActionPause},
		{"esc", ModePaused, ActionBack},
		{"r", ModeResults, ActionRestart},
		{"enter", ModeResults, ActionRestart},
		{"esc", ModeResults, ActionBack},
		{"up", ModeResults, ActionNone},
		{"ctrl+c", ModeResults, ActionQuit},
		{"?", ModePlaying, ActionHelp},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.key, func(t *testing.T) {
			if got := r.Route(tt.key, tt.mode); got.Action != tt.want {
				t.Errorf("Route(%q, %v) = %v, want %v", tt.key, tt.mode, got.Action, tt.want)
			}
		})
	}
}

func TestPointerOnlyForPaddles(t *testing.T) {
	r := NewRouter()

	r.SetScheme(catalog.ControlsPaddleY)
	got := r.Pointer(3, 9, ModePlaying)
	if got.Action != ActionPointer || got.X != 3 || got.Y != 9 {
		t.Errorf("paddle pointer = %+v", got)
	}
	if got := r.Pointer(3, 9, ModePaused); got.Action != ActionNone {
		t.Errorf("paused pointer = %+v, want none", got)
	}

	r.SetScheme(catalog.ControlsDirectional)
	if got := r.Pointer(3, 9, ModePlaying); got.Action != ActionNone {
		t.Errorf("snake pointer = %+v, want none", got)
	}
}

func TestClick(t *testing.T) {
	tests := []struct {
		scheme  catalog.Controls
		button  Button
		pressed bool
		want    core.Command
	}{
		{catalog.ControlsFlippers, ButtonLeft, true, core.CmdFlipperLeftDown},
		{catalog.ControlsFlippers, ButtonLeft, false, core.CmdFlipperLeftUp},
		{catalog.ControlsFlippers, ButtonRight, true, core.CmdFlipperRightDown},
		{catalog.ControlsFlippers, ButtonRight, false, core.CmdFlipperRightUp},
		{catalog.ControlsPaddleX, ButtonLeft, true, core.CmdLaunch},
		{catalog.ControlsPaddleX, ButtonLeft, false, core.CmdNone},
		{catalog.ControlsShooter, ButtonLeft, true, core.CmdFire},
		{catalog.ControlsJump, ButtonRight, true, core.CmdJump},
		{catalog.ControlsDirectional, ButtonLeft, true, core.CmdNone},
	}
	r := NewRouter()
	for _, tt := range tests {
		r.SetScheme(tt.scheme)
		got := r.Click(tt.button, tt.pressed, ModePlaying)
		if got.Command != tt.want {
			t.Errorf("%s click(%d, %v) = %v, want %v", tt.scheme, tt.button, tt.pressed, got.Command, tt.want)
		}
	}

	r.SetScheme(catalog.ControlsFlippers)
	if got := r.Click(ButtonLeft, true, ModeMenu); got.Action != ActionNone {
		t.Errorf("menu click = %+v, want none", got)
	}
}

func TestUnknownSchemeFallsBack(t *testing.T) {
	r := NewRouter()
	r.SetScheme("joystick")
	if r.Scheme() != catalog.ControlsDirectional {
		t.Errorf("Scheme = %q, want directional", r.Scheme())
	}
}

func TestHelpPerMode(t *testing.T) {
	r := NewRouter()
	r.SetScheme(catalog.ControlsFalling)
	for _, m := range []Mode{ModeMenu, ModePlaying, ModePaused, ModeResults} {
		km := r.Help(m)
		if len(km.ShortHelp()) == 0 || len(km.FullHelp()) == 0 {
			t.Errorf("%v: empty help", m)
		}
	}
	// Playing help lists the scheme's five bindings plus pause and back.
	if n := len(r.Help(ModePlaying).ShortHelp()); n != 7 {
		t.Errorf("playing short help = %d bindings, want 7", n)
	}
}

func TestEverySchemeHasBindings(t *testing.T) {
	schemes := []catalog.Controls{
		catalog.ControlsDirectional, catalog.ControlsFalling, catalog.ControlsBoard,
		catalog.ControlsFlippers, catalog.ControlsJump, catalog.ControlsLanes,
		catalog.ControlsPaddleX, catalog.ControlsPaddleY, catalog.ControlsShooter,
	}
	global := DefaultGlobalKeyMap()
	for _, s := range schemes {
		km := GameKeys(s)
		if len(km.Bindings()) == 0 {
			t.Errorf("%s: no bindings", s)
		}
		// Game keys must not shadow pause/back/quit.
		for _, k := range append(append(global.Pause.Keys(), global.Back.Keys()...), global.Quit.Keys()...) {
			if cmd := km.Command(k); cmd != core.CmdNone {
				t.Errorf("%s: %q bound to %v and to a global action", s, k, cmd)
			}
		}
	}
}
