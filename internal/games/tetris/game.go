// Package tetris implements the falling-block game.
//
// One gravity step per tick. A piece that cannot move down is fixed into the
// well, full rows are cleared and scored LineScore each, and a new random piece
// spawns at the spawn cell. A spawn that collides ends the game.
// Rotation has no wall kicks: a colliding rotation is rejected.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Game implements Tetris.
type Game struct {
	cfg  config.TetrisConfig
	rng  *rand.Rand
	tick uint64

	width  int
	height int
	board  [][]core.Color // ColorDefault means empty

	piece    Piece
	next     Kind
	score    int
	lines    int
	gameOver bool
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// New creates a Tetris game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadTetris("")
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Tetris game with explicit configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.gameOver = false

	g.width = g.cfg.Board.Width
	g.height = g.cfg.Board.Height
	g.board = make([][]core.Color, g.height)
	for y := range g.board {
		g.board[y] = make([]core.Color, g.width)
	}

	g.next = Kind(g.rng.Intn(int(kindCount)))
	g.spawn()
}

// Apply handles shift, rotate and drop commands.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	switch cmd {
	case core.CmdShiftLeft, core.CmdLeft:
		g.tryMove(core.Point{X: -1})
	case core.CmdShiftRight, core.CmdRight:
		g.tryMove(core.Point{X: 1})
	case core.CmdRotate, core.CmdUp:
		rotated := g.piece
		rotated.Shape = g.piece.Shape.Rotate()
		if !g.collides(rotated) {
			g.piece = rotated
		}
	case core.CmdSoftDrop, core.CmdDown:
		g.fall()
	case core.CmdHardDrop:
		for g.tryMove(core.Point{Y: 1}) {
		}
		g.lock()
	}
}

// Advance applies one gravity step.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++
	g.fall()
	return core.Result(before, g.State())
}

// fall moves the piece down one row or locks it.
func (g *Game) fall() {
	if !g.tryMove(core.Point{Y: 1}) {
		g.lock()
	}
}

func (g *Game) tryMove(d core.Point) bool {
	moved := g.piece
	moved.Pos = moved.Pos.Add(d)
	if g.collides(moved) {
		return false
	}
	g.piece = moved
	return true
}

// collides checks every occupied cell against the walls, the floor and the
// fixed blocks. Cells above the top row only collide with the side walls.
func (g *Game) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.width || c.Y >= g.height {
			return true
		}
		if c.Y >= 0 && g.board[c.Y][c.X] != core.ColorDefault {
			return true
		}
	}
	return false
}

// lock fixes the piece, clears rows and spawns the next piece.
func (g *Game) lock() {
	color := g.piece.Color()
	for _, c := range g.piece.Cells() {
		if c.Y < 0 {
			g.gameOver = true
			continue
		}
		g.board[c.Y][c.X] = color
	}
	if g.gameOver {
		return
	}

	cleared := g.clearRows()
	g.lines += cleared
	g.score += g.cfg.LineScore * cleared

	g.spawn()
}

// clearRows removes every full row, shifting the rows above down.
func (g *Game) clearRows() int {
	kept := make([][]core.Color, 0, g.height)
	for _, row := range g.board {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := g.height - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]core.Color, cleared, g.height)
	for i := range fresh {
		fresh[i] = make([]core.Color, g.width)
	}
	g.board = append(fresh, kept...)
	return cleared
}

func rowFull(row []core.Color) bool {
	for _, c := range row {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

func (g *Game) spawn() {
	kind := g.next
	g.next = Kind(g.rng.Intn(int(kindCount)))
	g.piece = Piece{
		Kind:  kind,
		Shape: shapes[kind],
		Pos:   core.Point{X: g.cfg.Spawn.X, Y: g.cfg.Spawn.Y},
	}
	if g.collides(g.piece) {
		g.gameOver = true
	}
}

// Render draws the well, the falling piece and the next-piece preview.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Tetris", hud.F("Score", g.score), hud.F("Lines", g.lines))
	if !hud.Fits(dst, g.width*2, g.height) {
		hud.TooSmall(dst, g.width*2, g.height)
		return
	}

	// Two columns per cell keeps blocks roughly square in a terminal.
	ox, oy := hud.Origin(dst, g.width*2, g.height)
	hud.Frame(dst, ox, oy, g.width*2, g.height)

	for y, row := range g.board {
		for x, c := range row {
			if c != core.ColorDefault {
				drawBlock(dst, ox+x*2, oy+y, c)
			} else {
				dst.SetColored(ox+x*2, oy+y, '·', core.ColorGray)
			}
		}
	}
	if !g.gameOver {
		for _, c := range g.piece.Cells() {
			if c.Y >= 0 {
				drawBlock(dst, ox+c.X*2, oy+c.Y, g.piece.Color())
			}
		}
	}

	px := ox + g.width*2 + 3
	dst.DrawText(px, oy, "Next")
	for _, c := range shapes[g.next].Cells() {
		drawBlock(dst, px+c.X*2, oy+2+c.Y, colors[g.next])
	}

	if g.gameOver {
		dst.DrawMessage("Game Over", fmt.Sprintf("Score: %d  Lines: %d", g.score, g.lines))
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
