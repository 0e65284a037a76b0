// Package shooter implements a vertical space shooter.
//
// Enemies drift down the field and bounce off the side walls. Shooting one
// or letting it pass the bottom recycles it to a random spot above the field.
// Touching an enemy ends the game.
package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/physics"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Visual characters for rendering
const (
	ShipChar   = '▲'
	WingChar   = '◢'
	EnemyChar  = '▼'
	BulletChar = '│'
)

const (
	shipWidth    = 3.0
	enemyRadius  = 0.6
	bulletRadius = 0.2
)

// Game implements the space shooter.
type Game struct {
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	width  float64
	height float64
	field  physics.Playfield // Side walls only

	shipX    float64 // Center
	shipY    float64 // Top row
	cooldown int
	bullets  []physics.Body
	enemies  []physics.Body

	kills    int
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
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}

// New creates a shooter using the configuration search path.
func New() *Game {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		cfg.Difficulty.ApplyPreset(difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a shooter with explicit configuration.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "shooter" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Shooter" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.width = float64(g.cfg.Field.Width)
	g.height = float64(g.cfg.Field.Height)
	g.field = physics.Playfield{
		Segments: []physics.Segment{
			{A: physics.V(0, -g.height), B: physics.V(0, g.height)},
			{A: physics.V(g.width, -g.height), B: physics.V(g.width, g.height)},
		},
		Restitution: 1,
	}

	g.shipX = g.width / 2
	g.shipY = g.height - 2
	g.cooldown = 0
	g.bullets = g.bullets[:0]
	g.enemies = make([]physics.Body, g.cfg.Enemies.Count)
	for i := range g.enemies {
		g.respawn(i, g.height)
	}

	g.kills = 0
	g.score = 0
	g.gameOver = false
}

// respawn places enemy i at a random column up to depth rows above the field.
func (g *Game) respawn(i int, depth float64) {
	drift := (g.rng.Float64()*2 - 1) * g.cfg.Enemies.Drift
	g.enemies[i] = physics.Body{
		Pos:    physics.V(enemyRadius+g.rng.Float64()*(g.width-2*enemyRadius), -enemyRadius-g.rng.Float64()*depth),
		Vel:    physics.V(drift, g.cfg.Enemies.Speed),
		Radius: enemyRadius,
	}
}

func (g *Game) shipBox() physics.Box {
	return physics.BoxAt(g.shipX-shipWidth/2, g.shipY, shipWidth, 1)
}

// Apply moves the ship or fires.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	switch cmd {
	case core.CmdLeft, core.CmdShiftLeft:
		g.shipX = core.ClampF(g.shipX-g.cfg.Ship.Step, shipWidth/2, g.width-shipWidth/2)
	case core.CmdRight, core.CmdShiftRight:
		g.shipX = core.ClampF(g.shipX+g.cfg.Ship.Step, shipWidth/2, g.width-shipWidth/2)
	case core.CmdFire, core.CmdUp, core.CmdJump:
		if g.cooldown == 0 {
			g.bullets = append(g.bullets, physics.Body{
				Pos:    physics.V(g.shipX, g.shipY-bulletRadius),
				Vel:    physics.V(0, -g.cfg.Ship.BulletSpeed),
				Radius: bulletRadius,
			})
			g.cooldown = g.cfg.Ship.Cooldown
		}
	}
	if g.hitShip() {
		g.gameOver = true
	}
}

// Advance moves bullets and enemies one tick.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++
	if g.cooldown > 0 {
		g.cooldown--
	}

	live := g.bullets[:0]
	for _, b := range g.bullets {
		b.Integrate()
		if b.Pos.Y+b.Radius >= 0 {
			live = append(live, b)
		}
	}
	g.bullets = live

	speed := g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, int(g.tick))
	for i := range g.enemies {
		e := &g.enemies[i]
		e.Vel.Y = speed
		g.field.Move(e)
		if e.Pos.Y-e.Radius > g.height {
			g.score += g.cfg.Enemies.PassScore
			g.respawn(i, g.height/2)
		}
	}

	g.resolveShots()
	if g.hitShip() {
		g.gameOver = true
	}
	return core.Result(before, g.State())
}

// resolveShots removes every bullet that overlaps an enemy and recycles the enemy.
func (g *Game) resolveShots() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		for i := range g.enemies {
			c := physics.Circle{Center: g.enemies[i].Pos, Radius: g.enemies[i].Radius}
			if _, ok := c.Collide(b); ok {
				g.score += g.cfg.Enemies.KillScore
				g.kills++
				g.respawn(i, g.height/2)
				hit = true
				break
			}
		}
		if !hit {
			live = append(live, b)
		}
	}
	g.bullets = live
}

func (g *Game) hitShip() bool {
	box := g.shipBox()
	for _, e := range g.enemies {
		if _, ok := box.Collide(e); ok {
			return true
		}
	}
	return false
}

// Render draws the ship, bullets and enemies.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Space Shooter", hud.F("Score", g.score), hud.F("Kills", g.kills))

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	plot := func(p physics.Vec, r rune, c core.Color) {
		x, y := int(p.X), int(p.Y)
		if p.Y >= 0 && x >= 0 && x < w && y < h {
			dst.SetColored(ox+x, oy+y, r, c)
		}
	}

	for _, b := range g.bullets {
		plot(b.Pos, BulletChar, core.ColorBrightYellow)
	}
	for _, e := range g.enemies {
		plot(e.Pos, EnemyChar, core.ColorBrightRed)
	}
	sy := g.shipY + 0.5
	plot(physics.V(g.shipX-1, sy), WingChar, core.ColorCyan)
	plot(physics.V(g.shipX, sy), ShipChar, core.ColorBrightCyan)
	plot(physics.V(g.shipX+1, sy), '◣', core.ColorCyan)

	if g.gameOver {
		dst.DrawMessage("Ship destroyed", fmt.Sprintf("Score: %d", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
