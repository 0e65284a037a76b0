package t2048

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
		{"merged tile does not merge again", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, 4},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, score := slideLine(tc.input)
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("slideLine(%v) = %v, expected %v", tc.input, got, tc.expected)
				}
			}
			if score != tc.score {
				t.Errorf("score = %d, expected %d", score, tc.score)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	b := Board{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 4, 0, 0},
	}

	tests := []struct {
		name  string
		cmd   core.Command
		at    core.Point
		value int
		score int
	}{
		{"left", core.CmdLeft, core.Point{X: 0, Y: 0}, 4, 4},
		{"right", core.CmdRight, core.Point{X: 3, Y: 0}, 4, 4},
		{"up", core.CmdUp, core.Point{X: 1, Y: 0}, 8, 8},
		{"down", core.CmdDown, core.Point{X: 1, Y: 3}, 8, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := tc.cmd.Direction()
			out, score, changed := Slide(b, d)
			if !changed {
				t.Fatal("board should change")
			}
			if out[tc.at.Y][tc.at.X] != tc.value {
				t.Errorf("cell %v = %d, expected %d\n%v", tc.at, out[tc.at.Y][tc.at.X], tc.value, out)
			}
			if score != tc.score {
				t.Errorf("score = %d, expected %d", score, tc.score)
			}
		})
	}

	if b[0][0] != 2 {
		t.Error("Slide must not modify its input")
	}
}

func TestCanMove(t *testing.T) {
	stuck := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if CanMove(stuck) {
		t.Error("checkerboard should have no moves")
	}
	stuck[3][3] = 4
	if !CanMove(stuck) {
		t.Error("adjacent equal tiles should allow a move")
	}
}

func newGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultT2048Config())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	g := newGame(1)
	if n := 16 - len(EmptyCells(g.board)); n != 2 {
		t.Errorf("%d tiles after reset, expected 2", n)
	}
}

func TestMoveSpawnsTileAndScores(t *testing.T) {
	g := newGame(2)
	g.board = Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g.Apply(core.CmdLeft)

	if g.State().Score != 4 {
		t.Errorf("score = %d, expected 4", g.State().Score)
	}
	if n := 16 - len(EmptyCells(g.board)); n != 2 {
		t.Errorf("%d tiles, expected merged tile plus one spawn", n)
	}
}

func TestNoOpMoveDoesNotSpawn(t *testing.T) {
	g := newGame(3)
	g.board = Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g.Apply(core.CmdLeft)

	if n := 16 - len(EmptyCells(g.board)); n != 1 {
		t.Errorf("%d tiles, a move that changes nothing must not spawn", n)
	}
	if g.moves != 0 {
		t.Error("no-op move should not count")
	}
}

func TestGameOverWhenStuck(t *testing.T) {
	g := newGame(4)
	g.board = Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 8, 0},
	}

	// Sliding right leaves one hole at the left of the last row.
	g.Apply(core.CmdRight)

	if g.board[3][0] == 0 {
		t.Fatal("spawn should fill the only hole")
	}
	if CanMove(g.board) != !g.State().GameOver {
		t.Error("game over must match CanMove")
	}
}

func TestTicksDoNothing(t *testing.T) {
	g := newGame(5)
	before := g.board.Clone()
	for i := 0; i < 10; i++ {
		if res := g.Advance(); res.ScoreDelta != 0 || res.Terminal {
			t.Fatalf("unexpected tick result %+v", res)
		}
	}
	for y := range before {
		for x := range before[y] {
			if g.board[y][x] != before[y][x] {
				t.Fatal("ticks changed the board")
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)
	cmds := []core.Command{core.CmdLeft, core.CmdUp, core.CmdRight, core.CmdDown}

	for i := 0; i < 100; i++ {
		g1.Apply(cmds[i%4])
		g2.Apply(cmds[i%4])
	}

	if g1.score != g2.score || g1.moves != g2.moves {
		t.Fatalf("Determinism failed: score %d vs %d", g1.score, g2.score)
	}
	for y := range g1.board {
		for x := range g1.board[y] {
			if g1.board[y][x] != g2.board[y][x] {
				t.Fatalf("board mismatch at (%d,%d)", x, y)
			}
		}
	}
}
