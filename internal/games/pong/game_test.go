package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/physics"
)

func newGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: seed})
	return g
}

func inPlay(g *Game, pos, vel physics.Vec) {
	g.serving = false
	g.serveDelay = 0
	g.ball = physics.Body{Pos: pos, Vel: vel, Radius: ballRadius}
}

func TestServeWaitsForDelay(t *testing.T) {
	g := newGame(1)
	start := g.ball.Pos
	for i := 0; i < g.cfg.Gameplay.ServeDelay-1; i++ {
		g.Advance()
	}
	if !g.serving || g.ball.Pos != start {
		t.Fatal("ball should hold still during the serve delay")
	}
	g.Advance()
	g.Advance()
	if g.serving || g.ball.Pos == start {
		t.Error("ball should move after the serve delay")
	}
}

func TestFirstServeGoesToPlayer(t *testing.T) {
	g := newGame(1)
	if g.ball.Vel.X >= 0 {
		t.Errorf("first serve vx = %f, expected toward the player", g.ball.Vel.X)
	}
}

func TestScoringServesTowardScorer(t *testing.T) {
	tests := []struct {
		name   string
		pos    physics.Vec
		vel    physics.Vec
		score1 int
		score2 int
		wantVX float64 // sign of the next serve
	}{
		{"player scores", physics.V(59.8, 2), physics.V(0.5, 0), 1, 0, -1},
		{"cpu scores", physics.V(0.2, 2), physics.V(-0.5, 0), 0, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			// Park both paddles away from the ball's row.
			g.paddle1Y = g.height - float64(g.cfg.Paddles.Height)
			g.paddle2Y = g.height - float64(g.cfg.Paddles.Height)
			inPlay(g, tc.pos, tc.vel)

			g.Advance()

			if g.score1 != tc.score1 || g.score2 != tc.score2 {
				t.Fatalf("score %d-%d, expected %d-%d", g.score1, g.score2, tc.score1, tc.score2)
			}
			if !g.serving {
				t.Error("a point should start a serve")
			}
			if math.Copysign(1, g.ball.Vel.X) != tc.wantVX {
				t.Errorf("serve vx = %f, expected sign %v", g.ball.Vel.X, tc.wantVX)
			}
			if g.State().Score != tc.score1 {
				t.Errorf("session score = %d, expected the player's %d", g.State().Score, tc.score1)
			}
		})
	}
}

func TestMatchPoint(t *testing.T) {
	tests := []struct {
		name string
		pos  physics.Vec
		vel  physics.Vec
		won  bool
	}{
		{"player wins", physics.V(59.8, 2), physics.V(0.5, 0), true},
		{"cpu wins", physics.V(0.2, 2), physics.V(-0.5, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			g.score1 = g.cfg.Gameplay.WinScore - 1
			g.score2 = g.cfg.Gameplay.WinScore - 1
			g.paddle1Y = g.height - float64(g.cfg.Paddles.Height)
			g.paddle2Y = g.height - float64(g.cfg.Paddles.Height)
			inPlay(g, tc.pos, tc.vel)

			res := g.Advance()

			if !res.Terminal {
				t.Fatal("reaching the win score should end the match")
			}
			if res.State.Won != tc.won {
				t.Errorf("won = %v, expected %v", res.State.Won, tc.won)
			}
		})
	}
}

func TestPaddleReturnSpeedsUpAndSpins(t *testing.T) {
	g := newGame(1)
	g.paddle1Y = 5
	px := g.paddleX(1) + paddleWidth
	// Ball hits the lower part of the paddle.
	inPlay(g, physics.V(px+0.7, 8.5), physics.V(-0.5, 0))

	g.Advance()

	if g.ball.Vel.X <= 0.5 {
		t.Errorf("returned ball should move right faster, vx = %f", g.ball.Vel.X)
	}
	if g.ball.Vel.Y <= 0 {
		t.Errorf("low hit should spin downward, vy = %f", g.ball.Vel.Y)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name string
		pos  physics.Vec
		vel  physics.Vec
	}{
		{"top", physics.V(30, 0.7), physics.V(0.3, -0.4)},
		{"bottom", physics.V(30, 21.3), physics.V(0.3, 0.4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			inPlay(g, tc.pos, tc.vel)
			speed := tc.vel.Len()

			g.Advance()

			if math.Signbit(g.ball.Vel.Y) == math.Signbit(tc.vel.Y) {
				t.Errorf("vy should flip, got %f", g.ball.Vel.Y)
			}
			if g.ball.Vel.Len() > speed+1e-9 {
				t.Errorf("wall bounce gained speed: %f > %f", g.ball.Vel.Len(), speed)
			}
			if y := g.ball.Pos.Y; y < 0 || y > g.height {
				t.Errorf("ball left the field, y = %f", y)
			}
		})
	}
}

func TestPlayerPaddleClamped(t *testing.T) {
	g := newGame(1)
	for i := 0; i < 50; i++ {
		g.Apply(core.CmdUp)
	}
	if g.paddle1Y != 0 {
		t.Errorf("paddle y = %f, expected 0", g.paddle1Y)
	}
	for i := 0; i < 50; i++ {
		g.Apply(core.CmdDown)
	}
	if want := g.height - float64(g.cfg.Paddles.Height); g.paddle1Y != want {
		t.Errorf("paddle y = %f, expected %f", g.paddle1Y, want)
	}
}

func TestPointerMovesPaddle(t *testing.T) {
	g := newGame(1)
	// 30 row screen, 22 row field: field row 0 is screen row 5.
	g.SetPointer(0, 5+10)
	g.Advance()

	center := g.paddle1Y + float64(g.cfg.Paddles.Height)/2
	if center != 10.5 {
		t.Errorf("paddle center = %f, expected 10.5", center)
	}
}

func TestCPUSkillGrows(t *testing.T) {
	g := newGame(1)
	for i := 0; i < skillInterval; i++ {
		g.Advance()
		if g.gameOver {
			t.Skip("match ended early")
		}
	}
	if g.cpuSkill <= g.cfg.CPU.MinSkill {
		t.Errorf("cpu skill = %f, expected growth", g.cpuSkill)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(2024)
		for i := 0; i < 3000; i++ {
			if i%3 == 0 {
				g.Apply(core.CmdUp)
			} else if i%5 == 0 {
				g.Apply(core.CmdDown)
			}
			if g.Advance().Terminal {
				break
			}
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed:\n%+v\n%+v", a, b)
	}
}
