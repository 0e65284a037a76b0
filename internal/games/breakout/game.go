package breakout

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
	PaddleChar = '═'
	BallChar   = '●'
)

// Brick glyphs by row (cycling through)
var BrickGlyphs = []rune{'█', '▓', '▒', '░'}

var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
}

const (
	ballRadius = 0.5
	maxBounce  = math.Pi / 3 // Widest paddle deflection from vertical
)

// Game implements the Breakout game logic.
type Game struct {
	cfg  config.BreakoutConfig
	rng  *rand.Rand
	tick uint64

	screenW int
	screenH int
	width   float64
	height  float64

	field     physics.Playfield
	paddleBox int // Index of the paddle in field.Boxes
	wave      *Wave

	ball       physics.Body
	serving    bool // Ball rides the paddle until launched
	speed      float64
	paddleX    float64 // Left edge
	paddleY    float64
	pointerX   float64
	hasPointer bool

	score    int
	lives    int
	gameOver bool
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// New creates a Breakout game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadBreakout("")
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Breakout game with explicit configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.width = float64(g.cfg.Field.Width)
	g.height = float64(g.cfg.Field.Height)
	g.paddleY = g.height - 2
	g.paddleX = (g.width - float64(g.cfg.Paddle.Width)) / 2
	g.hasPointer = false

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.gameOver = false
	g.speed = g.cfg.Physics.BallSpeed

	g.loadWave(1)
	g.serve()
}

// loadWave rebuilds the playfield: walls with an open bottom, one box per
// brick and the paddle box last.
func (g *Game) loadWave(n int) {
	maxTop := int(g.paddleY) - g.cfg.Bricks.Rows - 4
	g.wave = newWave(g.cfg.Bricks, n, maxTop)

	g.field = physics.Playfield{
		Segments:    physics.Walls(g.width, g.height, true),
		Restitution: 1,
	}
	for i := range g.wave.Bricks {
		x, y := g.wave.Cell(i)
		g.field.AddBox(physics.BoxAt(float64(x), float64(y), float64(g.wave.Width), 1))
	}
	g.paddleBox = g.field.AddBox(g.paddleBounds())
}

func (g *Game) paddleBounds() physics.Box {
	return physics.BoxAt(g.paddleX, g.paddleY, float64(g.cfg.Paddle.Width), 1)
}

func (g *Game) serve() {
	g.serving = true
	g.stickBall()
}

func (g *Game) stickBall() {
	g.ball = physics.Body{
		Pos:    physics.V(g.paddleX+float64(g.cfg.Paddle.Width)/2, g.paddleY-ballRadius),
		Radius: ballRadius,
	}
}

func (g *Game) launch() {
	dir := 1.0
	if g.rng.Intn(2) == 0 {
		dir = -1
	}
	g.ball.Vel = physics.V(0, -g.speed).Rotate(dir * math.Pi / 6)
	g.serving = false
}

func (g *Game) movePaddle(dx float64) {
	g.paddleX = core.ClampF(g.paddleX+dx, 0, g.width-float64(g.cfg.Paddle.Width))
}

// Apply handles paddle and launch commands.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	switch cmd {
	case core.CmdLeft, core.CmdShiftLeft:
		g.hasPointer = false
		g.movePaddle(-g.cfg.Paddle.Step)
	case core.CmdRight, core.CmdShiftRight:
		g.hasPointer = false
		g.movePaddle(g.cfg.Paddle.Step)
	case core.CmdLaunch, core.CmdUp, core.CmdFire:
		if g.serving {
			g.launch()
		}
	}
	if g.serving {
		g.stickBall()
	}
}

// SetPointer centers the paddle under screen column x on the next tick.
func (g *Game) SetPointer(x, _ int) {
	ox, _ := hud.OriginFor(g.screenW, g.screenH, g.cfg.Field.Width, g.cfg.Field.Height)
	g.pointerX = float64(x-ox) + 0.5
	g.hasPointer = true
}

// Advance runs one physics tick.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	if g.hasPointer {
		g.movePaddle(g.pointerX - float64(g.cfg.Paddle.Width)/2 - g.paddleX)
	}
	g.field.Boxes[g.paddleBox] = g.paddleBounds()

	if g.serving {
		g.stickBall()
		return core.Result(before, g.State())
	}

	aimed := false
	for _, h := range g.field.Move(&g.ball) {
		if h.Kind != physics.KindBox {
			continue
		}
		if h.Index == g.paddleBox {
			if !aimed && h.Contact.Normal.Y < 0 {
				g.aim()
				aimed = true
			}
			continue
		}
		if g.wave.hit(h.Index) {
			g.field.BoxActive[h.Index] = false
			g.score += g.cfg.Gameplay.BrickPoints
		}
	}

	if g.ball.Pos.Y-g.ball.Radius > g.height {
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
		} else {
			g.serve()
		}
		return core.Result(before, g.State())
	}

	if g.wave.CountAlive() == 0 {
		g.score += g.cfg.Gameplay.WaveBonus
		g.loadWave(g.wave.Number + 1)
		g.serve()
	}

	return core.Result(before, g.State())
}

// aim sends the ball off the paddle at an angle set by where it landed,
// and speeds it up.
func (g *Game) aim() {
	half := float64(g.cfg.Paddle.Width) / 2
	offset := core.ClampF((g.ball.Pos.X-(g.paddleX+half))/half, -1, 1)
	g.speed = math.Min(g.speed*g.cfg.Physics.SpeedUp, g.cfg.Physics.MaxBallSpeed)
	g.ball.Vel = physics.V(0, -g.speed).Rotate(offset * maxBounce)
}

// Render draws the field, bricks, paddle and ball.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Breakout",
		hud.F("Score", g.score),
		hud.F("Lives", g.lives),
		hud.F("Wave", g.wave.Number))

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	for i, b := range g.wave.Bricks {
		if !b.Alive {
			continue
		}
		x, y := g.wave.Cell(i)
		row := i / g.wave.Cols
		glyph := BrickGlyphs[row%len(BrickGlyphs)]
		color := brickColors[row%len(brickColors)]
		if b.Type == BrickHard && b.HP > 1 {
			glyph, color = '█', core.ColorWhite
		}
		// Leave a one-cell gap so neighbors read as separate bricks.
		for dx := 0; dx < g.wave.Width-1; dx++ {
			dst.SetColored(ox+x+dx, oy+y, glyph, color)
		}
	}

	px := int(g.paddleX)
	for dx := 0; dx < g.cfg.Paddle.Width; dx++ {
		dst.SetColored(ox+px+dx, oy+int(g.paddleY), PaddleChar, core.ColorBrightWhite)
	}

	bx, by := int(g.ball.Pos.X), int(g.ball.Pos.Y)
	if bx >= 0 && bx < w && by >= 0 && by < h {
		dst.SetColored(ox+bx, oy+by, BallChar, core.ColorBrightYellow)
	}

	switch {
	case g.gameOver:
		dst.DrawMessage("Game Over", fmt.Sprintf("Score: %d", g.score))
	case g.serving:
		dst.Pen(core.ColorGray)
		dst.DrawTextCentered(oy+h-4, "space to launch")
		dst.Pen(core.ColorDefault)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
