package shooter

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/physics"
)

func newGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: seed})
	return g
}

// parkEnemies moves every enemy far above the field.
func parkEnemies(g *Game) {
	for i := range g.enemies {
		g.enemies[i] = physics.Body{Pos: physics.V(20, -500), Vel: physics.V(0, 0), Radius: enemyRadius}
	}
}

func TestShipStaysInField(t *testing.T) {
	g := newGame(1)
	parkEnemies(g)
	for i := 0; i < 40; i++ {
		g.Apply(core.CmdLeft)
	}
	if g.shipX != shipWidth/2 {
		t.Errorf("ship x = %f, expected %f", g.shipX, shipWidth/2)
	}
	for i := 0; i < 40; i++ {
		g.Apply(core.CmdRight)
	}
	if g.shipX != g.width-shipWidth/2 {
		t.Errorf("ship x = %f, expected %f", g.shipX, g.width-shipWidth/2)
	}
}

func TestFireCooldown(t *testing.T) {
	g := newGame(1)
	parkEnemies(g)

	g.Apply(core.CmdFire)
	g.Apply(core.CmdFire)
	if len(g.bullets) != 1 {
		t.Fatalf("%d bullets, cooldown should block the second shot", len(g.bullets))
	}

	for i := 0; i < g.cfg.Ship.Cooldown; i++ {
		g.Advance()
	}
	g.Apply(core.CmdFire)
	if len(g.bullets) != 2 {
		t.Errorf("%d bullets, expected a second shot after the cooldown", len(g.bullets))
	}
}

func TestBulletsLeaveField(t *testing.T) {
	g := newGame(1)
	parkEnemies(g)
	g.Apply(core.CmdFire)
	for i := 0; i < 100; i++ {
		g.Advance()
	}
	if len(g.bullets) != 0 {
		t.Errorf("%d bullets left, expected them to leave the field", len(g.bullets))
	}
}

func TestShotKillsEnemy(t *testing.T) {
	g := newGame(1)
	parkEnemies(g)
	g.enemies[0] = physics.Body{Pos: physics.V(g.shipX, 10), Radius: enemyRadius}
	g.bullets = []physics.Body{{Pos: physics.V(g.shipX, 11), Vel: physics.V(0, -g.cfg.Ship.BulletSpeed), Radius: bulletRadius}}

	res := g.Advance()

	if res.ScoreDelta != g.cfg.Enemies.KillScore {
		t.Errorf("score delta = %d, expected %d", res.ScoreDelta, g.cfg.Enemies.KillScore)
	}
	if len(g.bullets) != 0 {
		t.Error("bullet should be spent")
	}
	if g.enemies[0].Pos.Y >= 0 {
		t.Errorf("killed enemy should respawn above the field, y=%f", g.enemies[0].Pos.Y)
	}
}

func TestPassedEnemyRecycles(t *testing.T) {
	g := newGame(1)
	parkEnemies(g)
	g.enemies[0] = physics.Body{Pos: physics.V(5, g.height+enemyRadius-0.01), Radius: enemyRadius}

	res := g.Advance()

	if res.ScoreDelta != g.cfg.Enemies.PassScore {
		t.Errorf("score delta = %d, expected %d", res.ScoreDelta, g.cfg.Enemies.PassScore)
	}
	if g.enemies[0].Pos.Y >= 0 {
		t.Errorf("enemy should respawn above the field, y=%f", g.enemies[0].Pos.Y)
	}
}

func TestEnemyContactIsTerminal(t *testing.T) {
	g := newGame(1)
	parkEnemies(g)
	g.enemies[0] = physics.Body{Pos: physics.V(g.shipX, g.shipY-0.5), Radius: enemyRadius}

	if res := g.Advance(); !res.Terminal {
		t.Error("enemy touching the ship should end the game")
	}
}

func TestEnemiesBounceOffWalls(t *testing.T) {
	tests := []struct {
		name string
		pos  physics.Vec
		vx   float64
	}{
		{"left", physics.V(0.7, 5), -0.15},
		{"right", physics.V(39.3, 5), 0.15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			parkEnemies(g)
			g.enemies[0] = physics.Body{Pos: tc.pos, Vel: physics.V(tc.vx, 0), Radius: enemyRadius}

			g.Advance()

			e := g.enemies[0]
			if e.Vel.X*tc.vx >= 0 {
				t.Errorf("vx should flip, got %f", e.Vel.X)
			}
			if e.Pos.X < e.Radius-1e-9 || e.Pos.X > g.width-e.Radius+1e-9 {
				t.Errorf("enemy left the field, x=%f", e.Pos.X)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, []physics.Body) {
		g := newGame(31)
		for i := 0; i < 3000; i++ {
			switch i % 6 {
			case 0:
				g.Apply(core.CmdFire)
			case 2:
				g.Apply(core.CmdLeft)
			case 4:
				g.Apply(core.CmdRight)
			}
			if g.Advance().Terminal {
				break
			}
		}
		return g.score, append([]physics.Body(nil), g.enemies...)
	}

	s1, e1 := run()
	s2, e2 := run()
	if s1 != s2 {
		t.Fatalf("scores differ: %d vs %d", s1, s2)
	}
	for i := range e1 {
		if e1[i] != e2[i] {
			t.Fatalf("enemy %d differs", i)
		}
	}
}
