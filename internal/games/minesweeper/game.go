// Package minesweeper implements Minesweeper with a keyboard cursor.
//
// Mines are laid on the first reveal so the opening cell and its neighbors
// are always safe. Revealing a zero cell flood-reveals its neighborhood.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

type cell struct {
	mine     bool
	revealed bool
	flagged  bool
	adjacent int
}

// Game implements Minesweeper.
type Game struct {
	cfg  config.MinesweeperConfig
	rng  *rand.Rand
	tick uint64

	width  int
	height int
	mines  int

	cells    [][]cell
	cursor   core.Point
	placed   bool // Mines laid
	revealed int
	flags    int
	exploded core.Point

	score    int
	gameOver bool
	won      bool
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}

// New creates a Minesweeper game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadMinesweeper("")
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Minesweeper game with explicit configuration.
func NewWithConfig(cfg config.MinesweeperConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "minesweeper" }

// Title returns the display name.
func (g *Game) Title() string { return "Minesweeper" }

// Reset initializes/restarts the game with a covered, mine-free board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.width = g.cfg.Board.Width
	g.height = g.cfg.Board.Height
	g.mines = core.Clamp(g.cfg.Mines, 1, g.width*g.height-1)

	g.cells = make([][]cell, g.height)
	for y := range g.cells {
		g.cells[y] = make([]cell, g.width)
	}
	g.cursor = core.Point{X: g.width / 2, Y: g.height / 2}
	g.placed = false
	g.revealed = 0
	g.flags = 0
	g.score = 0
	g.gameOver = false
	g.won = false
}

// Apply moves the cursor, reveals or toggles a flag.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	if d, ok := cmd.Direction(); ok {
		if next := g.cursor.Add(d); next.In(g.width, g.height) {
			g.cursor = next
		}
		return
	}
	switch cmd {
	case core.CmdReveal:
		g.reveal(g.cursor)
	case core.CmdFlag:
		g.toggleFlag(g.cursor)
	}
}

// Advance counts ticks; the board only changes on commands.
func (g *Game) Advance() core.StepResult {
	if !g.gameOver {
		g.tick++
	}
	return core.Result(g.score, g.State())
}

func (g *Game) at(p core.Point) *cell {
	return &g.cells[p.Y][p.X]
}

func (g *Game) neighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := core.Point{X: p.X + dx, Y: p.Y + dy}
			if n.In(g.width, g.height) {
				out = append(out, n)
			}
		}
	}
	return out
}

// placeMines lays mines away from safe. The 3x3 block around safe is kept
// clear when the board has room for it; otherwise only safe itself is.
func (g *Game) placeMines(safe core.Point) {
	near := func(p core.Point) bool {
		return core.Abs(p.X-safe.X) <= 1 && core.Abs(p.Y-safe.Y) <= 1
	}

	var wide, narrow []core.Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			if p == safe {
				continue
			}
			narrow = append(narrow, p)
			if !near(p) {
				wide = append(wide, p)
			}
		}
	}

	candidates := wide
	if len(candidates) < g.mines {
		candidates = narrow
	}
	for _, i := range g.rng.Perm(len(candidates))[:g.mines] {
		g.at(candidates[i]).mine = true
	}
	g.countAdjacent()
	g.placed = true
}

func (g *Game) countAdjacent() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			n := 0
			for _, q := range g.neighbors(p) {
				if g.at(q).mine {
					n++
				}
			}
			g.at(p).adjacent = n
		}
	}
}

func (g *Game) reveal(p core.Point) {
	c := g.at(p)
	if c.revealed || c.flagged {
		return
	}
	if !g.placed {
		g.placeMines(p)
	}
	if c.mine {
		c.revealed = true
		g.exploded = p
		g.gameOver = true
		return
	}

	queue := []core.Point{p}
	c.revealed = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		g.revealed++
		g.score += g.cfg.CellScore

		if g.at(cur).adjacent != 0 {
			continue
		}
		for _, n := range g.neighbors(cur) {
			nc := g.at(n)
			if nc.revealed || nc.flagged || nc.mine {
				continue
			}
			nc.revealed = true
			queue = append(queue, n)
		}
	}

	if g.revealed == g.width*g.height-g.mines {
		g.score += g.cfg.ClearBonus
		g.won = true
		g.gameOver = true
	}
}

func (g *Game) toggleFlag(p core.Point) {
	c := g.at(p)
	if c.revealed {
		return
	}
	c.flagged = !c.flagged
	if c.flagged {
		g.flags++
	} else {
		g.flags--
	}
}

var digitColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the board with two columns per cell and the cursor brackets.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Minesweeper",
		hud.F("Score", g.score),
		hud.F("Mines", g.mines-g.flags),
		hud.F("Cleared", fmt.Sprintf("%d/%d", g.revealed, g.width*g.height-g.mines)))

	w, h := g.width*2+1, g.height
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			r, c := g.glyph(p)
			dst.SetColored(ox+1+x*2, oy+y, r, c)
		}
	}

	if !g.gameOver {
		sx, sy := ox+g.cursor.X*2, oy+g.cursor.Y
		dst.SetColored(sx, sy, '[', core.ColorBrightYellow)
		dst.SetColored(sx+2, sy, ']', core.ColorBrightYellow)
	}

	switch {
	case g.won:
		dst.DrawMessage("Field cleared!", fmt.Sprintf("Score: %d", g.score))
	case g.gameOver:
		dst.DrawMessage("Boom!", fmt.Sprintf("Score: %d", g.score))
	}
}

func (g *Game) glyph(p core.Point) (rune, core.Color) {
	c := g.at(p)
	switch {
	case c.flagged && !(g.gameOver && c.mine):
		return '⚑', core.ColorBrightRed
	case c.revealed && c.mine:
		return '✹', core.ColorBrightRed
	case g.gameOver && c.mine:
		return '*', core.ColorRed
	case !c.revealed:
		return '■', core.ColorGray
	case c.adjacent == 0:
		return '·', core.ColorDefault
	}
	return rune('0' + c.adjacent), digitColors[c.adjacent]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
