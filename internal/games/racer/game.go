// Package racer implements a top-down lane racer.
// The player switches lanes to dodge oncoming traffic that speeds up over time.
package racer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Visual characters for rendering
const (
	CarChar     = '█'
	TrafficChar = '▓'
	LaneChar    = '┆'
)

// Game implements the racer.
type Game struct {
	cfg        config.RacerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	traffic *TrafficManager
	lane    int
	playerY float64
	scroll  float64 // Lane marking offset
	passed  int

	score    int
	gameOver bool
}

// Set from the command line before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file for new games.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset overrides the configured difficulty progression.
func SetDifficultyPreset(p config.DifficultyPreset) { difficultyPreset = p }

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}

// New creates a racer using the configuration search path.
func New() *Game {
	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		cfg = config.DefaultRacerConfig()
	}
	if difficultyPreset != "" {
		cfg.Difficulty.ApplyPreset(difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a racer with explicit configuration.
func NewWithConfig(cfg config.RacerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "racer" }

// Title returns the display name.
func (g *Game) Title() string { return "Racer" }

// Reset initializes/restarts the game with the player in the middle lane.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.traffic = NewTrafficManager(g.rng, &g.cfg, g.difficulty)
	g.lane = g.cfg.Road.Lanes / 2
	g.playerY = float64(g.cfg.Road.Height - g.cfg.Road.CarHeight - 1)
	g.scroll = 0
	g.passed = 0
	g.score = 0
	g.gameOver = false
}

// Apply changes lanes. Steering off the road is rejected.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	switch cmd {
	case core.CmdLaneLeft, core.CmdLeft:
		if g.lane > 0 {
			g.lane--
		}
	case core.CmdLaneRight, core.CmdRight:
		if g.lane < g.cfg.Road.Lanes-1 {
			g.lane++
		}
	}
	if g.collided() {
		g.gameOver = true
	}
}

// Advance moves traffic one tick.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	n := g.traffic.Update(g.score, int(g.tick))
	g.passed += n
	g.score += n * g.cfg.Traffic.PassScore
	g.scroll += g.traffic.Speed(g.score, int(g.tick))

	if g.collided() {
		g.gameOver = true
	}
	return core.Result(before, g.State())
}

func (g *Game) collided() bool {
	return g.traffic.CheckCollision(Rect(g.cfg.Road, g.lane, g.playerY))
}

// Render draws the road, traffic and player car.
func (g *Game) Render(dst *core.Screen) {
	speed := g.traffic.Speed(g.score, int(g.tick))
	hud.Draw(dst, "Racer",
		hud.F("Score", g.score),
		hud.F("Passed", g.passed),
		hud.F("Speed", fmt.Sprintf("%.2f", speed)))

	road := g.cfg.Road
	w, h := road.Lanes*road.LaneWidth, road.Height
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	off := int(g.scroll) % 4
	for l := 1; l < road.Lanes; l++ {
		x := ox + l*road.LaneWidth
		for y := 0; y < h; y++ {
			if (y+off)%4 < 2 {
				dst.SetColored(x, oy+y, LaneChar, core.ColorGray)
			}
		}
	}

	draw := func(r core.RectF, ch rune, c core.Color) {
		cell := r.Cell()
		for dy := 0; dy < cell.H; dy++ {
			y := cell.Y + dy
			if y < 0 || y >= h {
				continue
			}
			dst.Pen(c)
			dst.DrawHLine(ox+cell.X, oy+y, cell.W, ch)
		}
		dst.Pen(core.ColorDefault)
	}
	for _, c := range g.traffic.Cars() {
		draw(Rect(road, c.Lane, c.Y), TrafficChar, core.ColorBrightRed)
	}
	draw(Rect(road, g.lane, g.playerY), CarChar, core.ColorBrightCyan)

	if g.gameOver {
		dst.DrawMessage("CRASH!", fmt.Sprintf("Score: %d", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
