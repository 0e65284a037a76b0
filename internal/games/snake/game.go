// Package snake implements classic Snake on a fixed board.
//
// Rules: the head advances one cell per tick in the current heading. Leaving
// the board or running into the body ends the game. The tail cell being
// vacated this tick is safe unless the snake is eating, because a growing
// snake keeps its tail. Food is worth FoodScore and respawns on a uniformly
// random free cell; filling the board is a win.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Game implements the Snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  *rand.Rand
	tick uint64

	width  int
	height int

	snake    []core.Point // Head at index 0
	heading  core.Point   // Direction applied on the last move
	pending  core.Point   // Direction for the next move
	food     core.Point
	hasFood  bool
	score    int
	gameOver bool
	won      bool
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// New creates a Snake game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadSnake("")
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Snake game with explicit configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false

	g.width = g.cfg.Board.Width
	g.height = g.cfg.Board.Height

	start := core.Point{X: g.cfg.Start.X, Y: g.cfg.Start.Y}
	g.snake = []core.Point{start}
	g.heading = core.Point{X: 0, Y: 1}
	g.pending = g.heading

	first := core.Point{X: g.cfg.FirstFood.X, Y: g.cfg.FirstFood.Y}
	if first.In(g.width, g.height) && first != start {
		g.food = first
		g.hasFood = true
	} else {
		g.spawnFood()
	}
}

// Apply sets the pending direction. The exact reverse of the current
// heading is rejected.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	d, ok := cmd.Direction()
	if !ok {
		return
	}
	if d == g.heading.Neg() && len(g.snake) > 0 {
		return
	}
	g.pending = d
}

// Advance moves the snake one cell.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	g.heading = g.pending
	head := g.snake[0].Add(g.heading)

	if !head.In(g.width, g.height) {
		g.gameOver = true
		return core.Result(before, g.State())
	}

	eating := g.hasFood && head == g.food

	// Pre-move body; the tail only counts when it stays put.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			g.gameOver = true
			return core.Result(before, g.State())
		}
	}

	g.snake = append([]core.Point{head}, g.snake...)
	if eating {
		g.score += g.cfg.FoodScore
		g.spawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	return core.Result(before, g.State())
}

// spawnFood places food on a uniformly random free cell.
// A full board means the player has won.
func (g *Game) spawnFood() {
	occupied := make(map[core.Point]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	free := make([]core.Point, 0, g.width*g.height-len(g.snake))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.hasFood = false
		g.won = true
		g.gameOver = true
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// Render draws the board, snake and food.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Snake", hud.F("Score", g.score), hud.F("Length", len(g.snake)))
	if !hud.Fits(dst, g.width, g.height) {
		hud.TooSmall(dst, g.width, g.height)
		return
	}

	ox, oy := hud.Origin(dst, g.width, g.height)
	hud.Frame(dst, ox, oy, g.width, g.height)

	if g.hasFood {
		dst.SetColored(ox+g.food.X, oy+g.food.Y, '●', core.ColorBrightRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		if i == 0 {
			dst.SetColored(ox+seg.X, oy+seg.Y, '█', core.ColorBrightGreen)
		} else {
			dst.SetColored(ox+seg.X, oy+seg.Y, '▓', core.ColorGreen)
		}
	}

	switch {
	case g.won:
		dst.DrawMessage("Board full!", fmt.Sprintf("Score: %d", g.score))
	case g.gameOver:
		dst.DrawMessage("Game Over", fmt.Sprintf("Score: %d", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
