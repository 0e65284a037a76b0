package racer

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func newGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultRacerConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: seed})
	return g
}

// clearRoad moves every car far above the road.
func clearRoad(g *Game) {
	for i := range g.traffic.cars {
		g.traffic.cars[i].Y = -1000 - float64(i)*20
	}
}

func TestLaneChangesStayOnRoad(t *testing.T) {
	g := newGame(1)
	clearRoad(g)

	if g.lane != 1 {
		t.Fatalf("start lane = %d, expected middle", g.lane)
	}
	for i := 0; i < 5; i++ {
		g.Apply(core.CmdLaneLeft)
	}
	if g.lane != 0 {
		t.Errorf("lane = %d, expected 0", g.lane)
	}
	for i := 0; i < 5; i++ {
		g.Apply(core.CmdRight)
	}
	if g.lane != g.cfg.Road.Lanes-1 {
		t.Errorf("lane = %d, expected %d", g.lane, g.cfg.Road.Lanes-1)
	}
}

func TestPassedCarRecyclesAndScores(t *testing.T) {
	g := newGame(1)
	clearRoad(g)
	g.traffic.cars[0] = Car{Lane: 0, Y: float64(g.cfg.Road.Height) - 0.1}
	g.lane = 2

	res := g.Advance()

	if res.ScoreDelta != g.cfg.Traffic.PassScore {
		t.Errorf("score delta = %d, expected %d", res.ScoreDelta, g.cfg.Traffic.PassScore)
	}
	if y := g.traffic.cars[0].Y; y >= 0 {
		t.Errorf("recycled car should respawn above the road, y=%f", y)
	}
}

func TestCollisionIsTerminal(t *testing.T) {
	g := newGame(1)
	clearRoad(g)
	g.traffic.cars[0] = Car{Lane: g.lane, Y: g.playerY - float64(g.cfg.Road.CarHeight) - 0.1}

	if res := g.Advance(); !res.Terminal {
		t.Error("running into traffic should end the game")
	}
}

func TestSteeringIntoCarIsTerminal(t *testing.T) {
	g := newGame(1)
	clearRoad(g)
	g.traffic.cars[0] = Car{Lane: g.lane + 1, Y: g.playerY}

	g.Apply(core.CmdLaneRight)

	if !g.State().GameOver {
		t.Error("steering into a car should end the game")
	}
}

func TestSpeedRamps(t *testing.T) {
	g := newGame(1)
	slow := g.traffic.Speed(0, 0)
	fast := g.traffic.Speed(0, g.cfg.Difficulty.Progression.MaxAt)
	if fast <= slow {
		t.Errorf("speed should grow over time: %f -> %f", slow, fast)
	}
	if slow != g.cfg.Traffic.BaseSpeed {
		t.Errorf("start speed = %f, expected %f", slow, g.cfg.Traffic.BaseSpeed)
	}
}

func TestTrafficKeepsSpacing(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	tm := NewTrafficManager(rand.New(rand.NewSource(5)), &cfg, diff)
	gap := float64(cfg.Traffic.Spacing + cfg.Road.CarHeight)

	total := 0
	for tick := 0; tick < 5000; tick++ {
		total += tm.Update(0, tick)

		ys := make([]float64, 0, len(tm.Cars()))
		for _, c := range tm.Cars() {
			ys = append(ys, c.Y)
		}
		sort.Float64s(ys)
		for i := 1; i < len(ys); i++ {
			if ys[i]-ys[i-1] < gap-1e-9 {
				t.Fatalf("tick %d: cars %f apart, expected at least %f", tick, ys[i]-ys[i-1], gap)
			}
		}
	}
	if total == 0 {
		t.Error("traffic should recycle")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, []Car) {
		g := newGame(77)
		for i := 0; i < 2000; i++ {
			if i%13 == 0 {
				g.Apply(core.CmdLaneLeft)
			}
			if i%29 == 0 {
				g.Apply(core.CmdLaneRight)
			}
			if g.Advance().Terminal {
				break
			}
		}
		return g.score, append([]Car(nil), g.traffic.Cars()...)
	}

	s1, c1 := run()
	s2, c2 := run()
	if s1 != s2 {
		t.Fatalf("scores differ: %d vs %d", s1, s2)
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("car %d differs: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}
