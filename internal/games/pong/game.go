// Package pong implements a classic Pong game with CPU opponent.
// The player controls the left paddle by keys or pointer; the CPU controls the right.
// The ball bounces off segment walls at the top and bottom of the field and
// off the paddles, which are boxes in the same playfield.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/physics"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

const (
	paddleWidth   = 1
	ballRadius    = 0.5
	skillInterval = 600 // Ticks between CPU skill gains
	skillStep     = 0.02
)

// Game implements the Pong game logic.
type Game struct {
	cfg        config.PongConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	screenW int
	screenH int
	width   float64
	height  float64
	field   physics.Playfield

	paddle1Y float64 // Player (left) paddle top
	paddle2Y float64 // CPU (right) paddle top
	pointerY float64
	pointing bool

	ball       physics.Body
	serving    bool // True when waiting to serve
	serveDelay int  // Ticks to wait before serving

	score1   int // Player score
	score2   int // CPU score
	cpuSkill float64
	gameOver bool
	winner   int // 1 or 2
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
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// New creates a Pong game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		cfg.Difficulty.ApplyPreset(difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Pong game with explicit configuration.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "pong" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Pong" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.width = float64(g.cfg.Field.Width)
	g.height = float64(g.cfg.Field.Height)

	g.field = physics.Playfield{
		Segments: []physics.Segment{
			{A: physics.V(0, 0), B: physics.V(g.width, 0)},
			{A: physics.V(0, g.height), B: physics.V(g.width, g.height)},
		},
		Restitution: 1,
	}
	g.field.AddBox(g.paddleBox(1, 0))
	g.field.AddBox(g.paddleBox(2, 0))

	// Center paddles vertically
	top := (g.height - float64(g.cfg.Paddles.Height)) / 2
	g.paddle1Y = top
	g.paddle2Y = top
	g.pointing = false

	g.score1 = 0
	g.score2 = 0
	g.cpuSkill = g.cfg.CPU.MinSkill
	g.gameOver = false
	g.winner = 0

	g.startServe(1)
}

func (g *Game) paddleX(side int) float64 {
	if side == 1 {
		return float64(g.cfg.Paddles.Offset)
	}
	return g.width - float64(g.cfg.Paddles.Offset) - paddleWidth
}

func (g *Game) paddleBox(side int, y float64) physics.Box {
	return physics.BoxAt(g.paddleX(side), y, paddleWidth, float64(g.cfg.Paddles.Height))
}

// startServe centers the ball and aims it at the given side.
func (g *Game) startServe(toward int) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.ServeDelay

	speed := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.score1, int(g.tick))
	vx := speed
	if toward == 1 {
		vx = -speed
	}
	// Random vertical angle
	angle := (g.rng.Float64() - 0.5) * 0.6
	g.ball = physics.Body{
		Pos:    physics.V(g.width/2, g.height/2),
		Vel:    physics.V(vx, speed*angle),
		Radius: ballRadius,
	}
}

func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, 0, g.height-float64(g.cfg.Paddles.Height))
}

// Apply moves the player paddle.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	switch cmd {
	case core.CmdUp:
		g.pointing = false
		g.paddle1Y = g.clampPaddle(g.paddle1Y - g.cfg.Physics.PaddleSpeed)
	case core.CmdDown:
		g.pointing = false
		g.paddle1Y = g.clampPaddle(g.paddle1Y + g.cfg.Physics.PaddleSpeed)
	}
}

// SetPointer centers the player paddle on screen row y on the next tick.
func (g *Game) SetPointer(_, y int) {
	_, oy := hud.OriginFor(g.screenW, g.screenH, g.cfg.Field.Width, g.cfg.Field.Height)
	g.pointerY = float64(y-oy) + 0.5
	g.pointing = true
}

// Advance runs one tick.
func (g *Game) Advance() core.StepResult {
	before := g.score1
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	if g.pointing {
		g.paddle1Y = g.clampPaddle(g.pointerY - float64(g.cfg.Paddles.Height)/2)
	}
	g.updateCPU()
	g.field.Boxes[0] = g.paddleBox(1, g.paddle1Y)
	g.field.Boxes[1] = g.paddleBox(2, g.paddle2Y)

	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
		}
	} else {
		g.updateBall()
	}

	// Gradually increase CPU skill
	if g.tick%skillInterval == 0 && g.cpuSkill < g.cfg.CPU.MaxSkill {
		g.cpuSkill = math.Min(g.cfg.CPU.MaxSkill, g.cpuSkill+skillStep)
	}

	return core.Result(before, g.State())
}

// updateCPU tracks the ball with skill-limited speed while it approaches.
func (g *Game) updateCPU() {
	if g.ball.Vel.X <= 0 {
		return
	}
	target := g.ball.Pos.Y - float64(g.cfg.Paddles.Height)/2
	diff := target - g.paddle2Y
	step := g.cfg.Physics.PaddleSpeed * g.cpuSkill
	if math.Abs(diff) > step {
		g.paddle2Y += math.Copysign(step, diff)
	}
	g.paddle2Y = g.clampPaddle(g.paddle2Y)
}

// updateBall handles ball physics, paddle returns and scoring.
func (g *Game) updateBall() {
	returned := false
	for _, h := range g.field.Move(&g.ball) {
		if h.Kind != physics.KindBox || returned || h.Contact.Normal.X == 0 {
			continue
		}
		returned = true
		top := g.paddle1Y
		if h.Index == 1 {
			top = g.paddle2Y
		}
		// Add spin based on where ball hit paddle
		hitPos := (g.ball.Pos.Y - top) / float64(g.cfg.Paddles.Height)
		v := g.ball.Vel
		v.X *= g.cfg.Physics.SpeedUp
		v.Y += (hitPos - 0.5) * g.cfg.Physics.SpinFactor
		g.ball.Vel = v.ClampLen(g.cfg.Physics.MaxBallSpeed)
	}

	switch {
	case g.ball.Pos.X < 0:
		g.point(2)
	case g.ball.Pos.X > g.width:
		g.point(1)
	}
}

// point credits a side and serves toward it, or ends the match.
func (g *Game) point(side int) {
	score := &g.score1
	if side == 2 {
		score = &g.score2
	}
	*score++
	if *score >= g.cfg.Gameplay.WinScore {
		g.gameOver = true
		g.winner = side
		return
	}
	g.startServe(side)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Pong", hud.F("You", g.score1), hud.F("CPU", g.score2), hud.F("First to", g.cfg.Gameplay.WinScore))

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	for y := 0; y < h; y += 2 {
		dst.SetColored(ox+w/2, oy+y, NetChar, core.ColorGray)
	}

	for i := 0; i < g.cfg.Paddles.Height; i++ {
		dst.SetColored(ox+int(g.paddleX(1)), oy+int(g.paddle1Y)+i, PaddleChar, core.ColorBrightCyan)
		dst.SetColored(ox+int(g.paddleX(2)), oy+int(g.paddle2Y)+i, PaddleChar, core.ColorBrightRed)
	}

	bx, by := int(g.ball.Pos.X), int(g.ball.Pos.Y)
	blink := g.serving && (g.serveDelay/10)%2 == 1
	if !blink && bx >= 0 && bx < w && by >= 0 && by < h {
		dst.SetColored(ox+bx, oy+by, BallChar, core.ColorBrightWhite)
	}

	if g.gameOver {
		msg := "CPU WINS!"
		if g.winner == 1 {
			msg = "YOU WIN!"
		}
		dst.DrawMessage(msg, fmt.Sprintf("%d - %d", g.score1, g.score2))
	}
}

// State returns the current game state. The session score is the player's.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1,
		GameOver: g.gameOver,
		Won:      g.gameOver && g.winner == 1,
	}
}
