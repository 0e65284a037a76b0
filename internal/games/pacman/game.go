// Package pacman implements a maze chase on procedurally generated boards.
//
// The player moves one cell per directional command, immediately. Ghosts step
// on their own slower clock, greedily closing Manhattan distance with a fixed
// chance of a random step instead. Clearing every pellet starts the next level
// with more walls, more ghosts and faster ghosts.
package pacman

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

const defaultTick = 50 * time.Millisecond

// Game implements Pac-Man.
type Game struct {
	cfg  config.PacManConfig
	rng  *rand.Rand
	tick uint64

	tickDur  time.Duration
	ghostAcc time.Duration

	m        *maze
	player   core.Point
	ghosts   []core.Point
	level    int
	score    int
	gameOver bool
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// New creates a Pac-Man game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadPacMan("")
	if err != nil {
		cfg = config.DefaultPacManConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Pac-Man game with explicit configuration.
func NewWithConfig(cfg config.PacManConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pacman" }

// Title returns the display name.
func (g *Game) Title() string { return "Pac-Man" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickDur = rc.Tick
	if g.tickDur <= 0 {
		g.tickDur = defaultTick
	}
	g.score = 0
	g.gameOver = false
	g.level = 1
	g.load(g.generate(g.level))
}

func (g *Game) load(m *maze) {
	g.m = m
	g.player = m.player
	g.ghosts = append([]core.Point(nil), m.ghosts...)
	g.ghostAcc = 0
}

// GhostInterval returns the time between ghost steps at the current level.
func (g *Game) GhostInterval() time.Duration {
	e := g.cfg.Ghosts.Every
	return config.LevelInterval(e.Base, e.Floor, e.Step, g.level)
}

// Apply moves the player one cell. Walls block the move.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	d, ok := cmd.Direction()
	if !ok {
		return
	}
	next := g.player.Add(d)
	if !g.m.open(next) {
		return
	}
	g.player = next

	if g.caught() {
		g.gameOver = true
		return
	}

	if g.m.at(next) == TilePellet {
		g.m.tiles[next.Y][next.X] = TileEmpty
		g.m.pellets--
		g.score += g.cfg.PelletScore
		if g.m.pellets == 0 {
			g.level++
			g.load(g.generate(g.level))
		}
	}
}

// Advance runs the ghost clock for one tick.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	g.ghostAcc += g.tickDur
	interval := g.GhostInterval()
	for g.ghostAcc >= interval && !g.gameOver {
		g.ghostAcc -= interval
		g.moveGhosts()
	}
	return core.Result(before, g.State())
}

func (g *Game) moveGhosts() {
	for i, gh := range g.ghosts {
		g.ghosts[i] = g.chooseStep(gh)
		if g.ghosts[i] == g.player {
			g.gameOver = true
		}
	}
}

// chooseStep picks a ghost's next cell: usually the open neighbor closest to
// the player (first in Dirs4 order on ties), sometimes a random open neighbor.
func (g *Game) chooseStep(from core.Point) core.Point {
	var options []core.Point
	for _, d := range core.Dirs4 {
		if n := from.Add(d); g.m.open(n) {
			options = append(options, n)
		}
	}
	if len(options) == 0 {
		return from
	}

	if g.rng.Float64() < g.cfg.ExploreChance {
		return options[g.rng.Intn(len(options))]
	}

	best := options[0]
	for _, o := range options[1:] {
		if o.Manhattan(g.player) < best.Manhattan(g.player) {
			best = o
		}
	}
	return best
}

func (g *Game) caught() bool {
	for _, gh := range g.ghosts {
		if gh == g.player {
			return true
		}
	}
	return false
}

var ghostColors = []core.Color{core.ColorBrightRed, core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorOrange}

// Render draws the maze, pellets, ghosts and player.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Pac-Man", hud.F("Score", g.score), hud.F("Level", g.level), hud.F("Pellets", g.m.pellets))
	w, h := g.m.w*2, g.m.h
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)

	for y := 0; y < g.m.h; y++ {
		for x := 0; x < g.m.w; x++ {
			sx, sy := ox+x*2, oy+y
			switch g.m.tiles[y][x] {
			case TileWall:
				dst.SetColored(sx, sy, '█', core.ColorBlue)
				dst.SetColored(sx+1, sy, '█', core.ColorBlue)
			case TilePellet:
				dst.SetColored(sx, sy, '·', core.ColorBrightWhite)
			}
		}
	}
	for i, gh := range g.ghosts {
		dst.SetColored(ox+gh.X*2, oy+gh.Y, 'ᗣ', ghostColors[i%len(ghostColors)])
	}
	dst.SetColored(ox+g.player.X*2, oy+g.player.Y, 'ᗧ', core.ColorBrightYellow)

	if g.gameOver {
		dst.DrawMessage("Caught!", fmt.Sprintf("Score: %d  Level: %d", g.score, g.level))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Level    int
	Player   core.Point
	Ghosts   []core.Point
	Pellets  int
	GameOver bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Level:    g.level,
		Player:   g.player,
		Ghosts:   append([]core.Point(nil), g.ghosts...),
		Pellets:  g.m.pellets,
		GameOver: g.gameOver,
	}
}
