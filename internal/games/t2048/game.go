// Package t2048 implements the 2048 sliding-tile puzzle.
// Moves resolve on the directional command; ticks do nothing.
package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

const cellW = 6

// Game implements 2048.
type Game struct {
	cfg  config.T2048Config
	rng  *rand.Rand
	tick uint64

	board    Board
	score    int
	moves    int
	reached  bool // Target tile seen
	gameOver bool
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// New creates a 2048 game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadT2048("")
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a 2048 game with explicit configuration.
func NewWithConfig(cfg config.T2048Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "2048" }

// Title returns the display name.
func (g *Game) Title() string { return "2048" }

// Reset initializes/restarts the game with two starting tiles.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.reached = false
	g.gameOver = false
	g.board = NewBoard(g.cfg.Size)
	g.spawnTile()
	g.spawnTile()
}

// Apply slides the board. A slide that changes nothing does not spawn a tile.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	d, ok := cmd.Direction()
	if !ok {
		return
	}

	next, gained, changed := Slide(g.board, d)
	if !changed {
		return
	}
	g.board = next
	g.score += gained
	g.moves++
	if MaxTile(g.board) >= g.cfg.Target {
		g.reached = true
	}

	g.spawnTile()
	if !CanMove(g.board) {
		g.gameOver = true
	}
}

// Advance only counts ticks; 2048 has no time-driven state.
func (g *Game) Advance() core.StepResult {
	if !g.gameOver {
		g.tick++
	}
	return core.Result(g.score, g.State())
}

func (g *Game) spawnTile() {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return
	}
	p := empty[g.rng.Intn(len(empty))]
	v := 2
	if g.rng.Float64() < g.cfg.FourChance {
		v = 4
	}
	g.board[p.Y][p.X] = v
}

var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorRed,
	64:   core.ColorBrightRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorGreen,
	512:  core.ColorBrightGreen,
	1024: core.ColorCyan,
	2048: core.ColorBrightMagenta,
}

// Render draws the tile grid.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "2048", hud.F("Score", g.score), hud.F("Best tile", MaxTile(g.board)), hud.F("Moves", g.moves))
	n := len(g.board)
	w, h := n*cellW, n*2
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	for y, row := range g.board {
		for x, v := range row {
			sx, sy := ox+x*cellW, oy+y*2
			if v == 0 {
				dst.SetColored(sx+cellW/2, sy, '·', core.ColorGray)
				continue
			}
			c, ok := tileColors[v]
			if !ok {
				c = core.ColorBrightCyan
			}
			dst.Pen(c)
			label := fmt.Sprintf("%d", v)
			dst.DrawText(sx+(cellW-len(label))/2, sy, label)
			dst.Pen(core.ColorDefault)
		}
	}

	if g.gameOver {
		dst.DrawMessage("No moves left", fmt.Sprintf("Score: %d", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.gameOver && g.reached,
	}
}
