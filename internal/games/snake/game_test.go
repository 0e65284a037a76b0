package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func newGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func TestInitialState(t *testing.T) {
	g := newGame(1)
	snap := g.Snapshot()

	if snap.Len() != 1 || snap.Body[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("start body = %v, expected [(10,10)]", snap.Body)
	}
	if snap.Heading != (core.Point{X: 0, Y: 1}) {
		t.Errorf("start heading = %v, expected down", snap.Heading)
	}
	if snap.Food != (core.Point{X: 5, Y: 5}) {
		t.Errorf("first food = %v, expected (5,5)", snap.Food)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)

	script := map[int]core.Command{0: core.CmdLeft, 5: core.CmdUp, 10: core.CmdRight, 14: core.CmdDown}
	for i := 0; i < 40; i++ {
		if cmd, ok := script[i]; ok {
			g1.Apply(cmd)
			g2.Apply(cmd)
		}
		g1.Advance()
		g2.Advance()
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Food != s2.Food || s1.Len() != s2.Len() || s1.GameOver != s2.GameOver {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestReverseDirectionRejected(t *testing.T) {
	g := newGame(42)

	g.Apply(core.CmdUp) // exact reverse of Down
	g.Advance()

	if head := g.Snapshot().Body[0]; head != (core.Point{X: 10, Y: 11}) {
		t.Errorf("head = %v, expected (10,11) after reverse was ignored", head)
	}

	g.Apply(core.CmdLeft)
	g.Advance()
	if head := g.Snapshot().Body[0]; head != (core.Point{X: 9, Y: 11}) {
		t.Errorf("head = %v, expected (9,11) after turning left", head)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newGame(7)

	// From (10,10) heading down: y=11..14 are legal, the fifth move leaves the board.
	var res core.StepResult
	for i := 0; i < 5; i++ {
		res = g.Advance()
	}

	if !res.Terminal || !g.State().GameOver {
		t.Fatal("expected game over after hitting the bottom wall")
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, expected 0", g.State().Score)
	}
	if head := g.Snapshot().Body[0]; !head.In(20, 15) {
		t.Errorf("head left the board: %v", head)
	}
}

func TestEatingFood(t *testing.T) {
	g := newGame(99)

	g.Apply(core.CmdLeft)
	for i := 0; i < 5; i++ {
		g.Advance()
	}
	g.Apply(core.CmdUp)
	for i := 0; i < 4; i++ {
		if res := g.Advance(); res.ScoreDelta != 0 {
			t.Fatalf("unexpected score at step %d", i)
		}
	}

	before := g.Snapshot()
	res := g.Advance()
	after := g.Snapshot()

	if after.Body[0] != (core.Point{X: 5, Y: 5}) {
		t.Fatalf("head = %v, expected the food cell", after.Body[0])
	}
	if res.ScoreDelta != 10 || after.Score != before.Score+10 {
		t.Errorf("score %d -> %d, delta %d; expected +10", before.Score, after.Score, res.ScoreDelta)
	}
	if after.Len() != before.Len()+1 {
		t.Errorf("length %d -> %d, expected +1", before.Len(), after.Len())
	}
	for _, seg := range after.Body {
		if seg == after.Food {
			t.Errorf("food relocated onto the snake at %v", seg)
		}
	}

	// Not eating keeps the length.
	g.food = core.Point{X: 19, Y: 14}
	g.Advance()
	if g.Snapshot().Len() != after.Len() {
		t.Error("length changed without eating")
	}
}

func TestTailCellIsSafeWhenNotEating(t *testing.T) {
	g := newGame(3)
	// Square loop: head (1,1) moving down into the tail at (1,2).
	g.snake = []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	g.heading = core.Point{X: 0, Y: 1}
	g.pending = g.heading
	g.food = core.Point{X: 15, Y: 10}

	g.Advance()
	if g.State().GameOver {
		t.Fatal("moving into the vacated tail cell should be safe")
	}
	if g.Snapshot().Body[0] != (core.Point{X: 1, Y: 2}) {
		t.Errorf("head = %v", g.Snapshot().Body[0])
	}
}

func TestBodyCollisionEndsGame(t *testing.T) {
	g := newGame(3)
	g.snake = []core.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1}}
	g.heading = core.Point{X: -1, Y: 0}
	g.pending = g.heading
	g.food = core.Point{X: 15, Y: 10}

	g.Advance() // head (1,2) is a middle segment
	if !g.State().GameOver {
		t.Error("running into the body should end the game")
	}
}

func TestBoardFullIsWin(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.GridSize{Width: 2, Height: 1}
	cfg.Start = config.Cell{X: 0, Y: 0}
	cfg.FirstFood = config.Cell{X: 1, Y: 0}
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	g.Apply(core.CmdRight)
	res := g.Advance()

	if !res.Terminal || !g.State().Won {
		t.Errorf("filling the board should be a terminal win, got %+v", g.State())
	}
}

func TestCoordinatesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cmds := []core.Command{core.CmdUp, core.CmdDown, core.CmdLeft, core.CmdRight}

	for game := 0; game < 20; game++ {
		g := newGame(int64(game))
		for i := 0; i < 300 && !g.State().GameOver; i++ {
			g.Apply(cmds[rng.Intn(len(cmds))])
			res := g.Advance()
			if res.Terminal {
				break
			}
			for _, seg := range g.Snapshot().Body {
				if !seg.In(20, 15) {
					t.Fatalf("game %d tick %d: segment %v out of bounds", game, i, seg)
				}
			}
		}
	}
}

func TestCommandsIgnoredAfterGameOver(t *testing.T) {
	g := newGame(7)
	for !g.State().GameOver {
		g.Advance()
	}
	snap := g.Snapshot()

	g.Apply(core.CmdLeft)
	g.Apply(core.CmdRotate)
	g.Advance()

	if g.Snapshot().Tick != snap.Tick {
		t.Error("Advance after game over should not tick")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newGame(11)
	g.Advance()
	before := g.Snapshot()

	dst := core.NewScreen(80, 24)
	for i := 0; i < 3; i++ {
		dst.Clear()
		g.Render(dst)
	}

	after := g.Snapshot()
	if after.Tick != before.Tick || after.Food != before.Food || after.Body[0] != before.Body[0] {
		t.Error("Render changed game state")
	}
}
