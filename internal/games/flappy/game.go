// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
// The field fills the screen below the HUD; the ground is its last row.
package flappy

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
	PlayerChar    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	width   int
	groundY int // Field row of the ground

	playerY   float64 // Player vertical position (top of hitbox)
	playerVel float64 // Player vertical velocity
	pipes     *PipeManager
	passed    int
	score     int
	gameOver  bool
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
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// New creates a Flappy game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		cfg.Difficulty.ApplyPreset(difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Flappy game with explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flappy Bird" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	def := core.DefaultConfig()
	if rc.ScreenW <= 0 {
		rc.ScreenW = def.ScreenW
	}
	if rc.ScreenH <= 0 {
		rc.ScreenH = def.ScreenH
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.width = rc.ScreenW
	g.groundY = rc.ScreenH - hud.Height - 1

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.pipes = NewPipeManager(g.rng, g.width, g.groundY, &g.cfg, g.difficulty)

	g.playerY = float64(g.groundY) / 2
	g.playerVel = 0
	g.passed = 0
	g.score = 0
	g.gameOver = false
}

// Apply handles the flap.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	if cmd == core.CmdJump || cmd == core.CmdUp {
		g.playerVel = g.cfg.Physics.JumpImpulse
	}
}

// Advance runs one tick of gravity, pipe motion and collision.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	g.playerVel += g.cfg.Physics.Gravity
	if g.playerVel > g.cfg.Physics.MaxFallSpeed {
		g.playerVel = g.cfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	px := float64(g.cfg.Player.X)
	n := g.pipes.Update(px, g.score, int(g.tick))
	g.passed += n
	g.score += n * g.cfg.Obstacles.PassScore

	switch {
	case g.playerY < 0:
		g.playerY = 0
		g.gameOver = true
	case g.playerY+float64(g.cfg.Player.Height) > float64(g.groundY):
		g.playerY = float64(g.groundY - g.cfg.Player.Height)
		g.gameOver = true
	case g.pipes.CheckCollision(g.playerRect()):
		g.gameOver = true
	}

	return core.Result(before, g.State())
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.RectF {
	return core.RectF{
		X: float64(g.cfg.Player.X),
		Y: g.playerY,
		W: float64(g.cfg.Player.Width),
		H: float64(g.cfg.Player.Height),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Flappy Bird", hud.F("Score", g.score), hud.F("Pipes", g.passed))
	oy := hud.Height

	dst.Pen(core.ColorYellow)
	dst.DrawHLine(0, oy+g.groundY, dst.Width(), GroundChar)

	dst.Pen(core.ColorGreen)
	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p, oy)
	}

	r := g.playerRect().Cell()
	dst.Pen(core.ColorBrightYellow)
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			if dx == r.W-1 && dy == 0 {
				dst.Set(r.X+dx, oy+r.Y+dy, PlayerChar)
			} else {
				dst.Set(r.X+dx, oy+r.Y+dy, '●')
			}
		}
	}
	dst.Pen(core.ColorDefault)

	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d", g.score))
	}
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, p Pipe, oy int) {
	x0 := int(p.X)
	w := g.cfg.Obstacles.PipeWidth

	for y := 0; y < p.GapY; y++ {
		dst.DrawHLine(x0, oy+y, w, PipeChar)
	}
	if p.GapY > 0 {
		dst.DrawHLine(x0, oy+p.GapY-1, w, PipeCapTop)
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < g.groundY; y++ {
		dst.DrawHLine(x0, oy+y, w, PipeChar)
	}
	if bottomY < g.groundY {
		dst.DrawHLine(x0, oy+bottomY, w, PipeCapBottom)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
