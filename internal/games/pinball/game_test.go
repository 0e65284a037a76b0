package pinball

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/physics"
)

func newGame() *Game {
	g := NewWithConfig(config.DefaultPinballConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 1})
	return g
}

func inPlay(g *Game, pos, vel physics.Vec) {
	g.serving = false
	g.ball.Pos = pos
	g.ball.Vel = vel
}

func TestResetServesOnPlunger(t *testing.T) {
	g := newGame()
	if !g.serving || g.balls != 3 {
		t.Fatalf("serving=%v balls=%d, expected serving with 3 balls", g.serving, g.balls)
	}
	if g.ball.Pos.X <= g.table.laneX {
		t.Errorf("ball should start in the plunger lane, x=%f", g.ball.Pos.X)
	}

	for i := 0; i < 30; i++ {
		g.Advance()
	}
	if !g.serving {
		t.Error("ball should wait for launch")
	}
}

func TestLaunchLeavesLane(t *testing.T) {
	g := newGame()
	g.Apply(core.CmdLaunch)

	left := false
	for i := 0; i < 200 && !left; i++ {
		g.Advance()
		left = g.ball.Pos.X < g.table.laneX
	}
	if !left {
		t.Errorf("ball never left the plunger lane, at %v", g.ball.Pos)
	}
}

func TestBumperScoresAndKicks(t *testing.T) {
	g := newGame()
	bumper := g.table.field.Circles[0]
	inPlay(g, bumper.Center.Add(physics.V(0, -bumper.Radius-0.7)), physics.V(0, 0.4))

	res := g.Advance()

	if res.ScoreDelta != g.cfg.Bumpers.Score {
		t.Errorf("score delta = %d, expected %d", res.ScoreDelta, g.cfg.Bumpers.Score)
	}
	if g.ball.Vel.Y >= 0 {
		t.Errorf("ball should be thrown back up, vy=%f", g.ball.Vel.Y)
	}
	if d := g.ball.Pos.Dist(bumper.Center); d < bumper.Radius+g.ball.Radius-1e-9 {
		t.Errorf("ball overlaps bumper, distance %f", d)
	}
}

func TestDrainLosesBall(t *testing.T) {
	g := newGame()
	inPlay(g, physics.V(20, g.height+0.2), physics.V(0, 0.3))

	res := g.Advance()
	if res.Terminal {
		t.Fatal("first drain should not end the game")
	}
	if g.balls != 2 || !g.serving {
		t.Errorf("balls=%d serving=%v, expected 2 and true", g.balls, g.serving)
	}
}

func TestLastDrainIsTerminal(t *testing.T) {
	g := newGame()
	g.balls = 1
	inPlay(g, physics.V(20, g.height+0.2), physics.V(0, 0.3))

	if res := g.Advance(); !res.Terminal {
		t.Error("draining the last ball should end the game")
	}
}

func TestFlipperPressAndRelease(t *testing.T) {
	tests := []struct {
		name    string
		press   core.Command
		release func(g *Game)
		index   int
	}{
		{"left explicit", core.CmdFlipperLeftDown, func(g *Game) { g.Apply(core.CmdFlipperLeftUp) }, left},
		{"right explicit", core.CmdFlipperRightDown, func(g *Game) { g.Apply(core.CmdFlipperRightUp) }, right},
		{"release all", core.CmdFlipperLeftDown, func(g *Game) { g.ReleaseAll() }, left},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame()
			f := &g.table.flippers[tc.index]

			g.Apply(tc.press)
			g.Advance()
			g.Advance()
			if f.Angle >= restAngle {
				t.Fatalf("pressed flipper should rise, angle=%f", f.Angle)
			}

			tc.release(g)
			for i := 0; i < 10; i++ {
				g.Advance()
			}
			if f.Angle != restAngle {
				t.Errorf("released flipper should rest, angle=%f", f.Angle)
			}
		})
	}
}

func TestFlipperAutoRelease(t *testing.T) {
	g := newGame()
	g.Apply(core.CmdFlipperLeftDown)
	f := &g.table.flippers[left]

	for i := 0; i < g.cfg.Flippers.Hold; i++ {
		g.Advance()
	}
	if f.Held {
		t.Fatal("flipper should release itself after the hold time")
	}
	for i := 0; i < 10; i++ {
		g.Advance()
	}
	if f.Angle != restAngle {
		t.Errorf("angle=%f, expected rest", f.Angle)
	}
}

func TestFlipperThrowsBall(t *testing.T) {
	g := newGame()
	f := &g.table.flippers[left]
	mid := f.Pivot.Add(f.Tip().Sub(f.Pivot).Scale(0.5))
	inPlay(g, mid.Add(f.Up().Scale(g.ball.Radius+0.05)), physics.V(0, 0))

	g.Apply(core.CmdFlipperLeftDown)
	g.Advance()

	if g.ball.Vel.Y >= 0 {
		t.Errorf("flipper should throw the ball up, vel=%v", g.ball.Vel)
	}
}

func TestWallsKeepBallInside(t *testing.T) {
	g := newGame()
	g.Apply(core.CmdLaunch)

	for i := 0; i < 5000 && !g.gameOver; i++ {
		if i%40 == 0 {
			g.Apply(core.CmdFlipperLeftDown)
			g.Apply(core.CmdFlipperRightDown)
		}
		if g.serving {
			g.Apply(core.CmdLaunch)
		}
		g.Advance()

		p := g.ball.Pos
		if p.X < 0 || p.X > g.width || p.Y < 0 {
			t.Fatalf("tick %d: ball escaped at %v", i, p)
		}
		if v := g.ball.Vel.Len(); v > g.cfg.Physics.MaxSpeed+g.cfg.Bumpers.Kick+1e-9 {
			t.Fatalf("tick %d: speed %f out of range", i, v)
		}
	}
}

func TestSweepDetection(t *testing.T) {
	f := newFlipper(physics.V(0, 0), 7, 1)
	ball := physics.Body{Pos: physics.V(4, 4*math.Tan(0.35)), Radius: 0.5}

	f.press(10)
	from := f.swing()
	if !f.Swept(from, ball) {
		t.Error("rising flipper should sweep a ball in its arc")
	}

	far := physics.Body{Pos: physics.V(9, 0), Radius: 0.5}
	if f.Swept(from, far) {
		t.Error("ball beyond the tip should not be swept")
	}

	f.release()
	from = f.swing()
	if f.Swept(from, ball) {
		t.Error("falling flipper does not sweep")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, physics.Body) {
		g := newGame()
		g.Apply(core.CmdLaunch)
		for i := 0; i < 1500; i++ {
			if i%25 == 0 {
				g.Apply(core.CmdFlipperRightDown)
			}
			if i%33 == 0 {
				g.Apply(core.CmdFlipperLeftDown)
			}
			if g.serving {
				g.Apply(core.CmdLaunch)
			}
			if g.Advance().Terminal {
				break
			}
		}
		return g.score, g.ball
	}
	s1, b1 := run()
	s2, b2 := run()
	if s1 != s2 || b1 != b2 {
		t.Errorf("Determinism failed: %d %v vs %d %v", s1, b1, s2, b2)
	}
}
