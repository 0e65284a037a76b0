// Package pinball implements a single-table pinball game.
//
// The table is static segment and circle geometry from the physics package.
// Flippers are segments rotated about their pivots each tick; a rising
// flipper that sweeps through the ball throws it off the playing face.
// Terminals report no key-up, so a pressed flipper drops on its own after a
// configured number of ticks unless the key repeats.
package pinball

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/physics"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

const (
	left  = 0
	right = 1
)

// Game implements Pinball.
type Game struct {
	cfg  config.PinballConfig
	tick uint64

	width  float64
	height float64
	table  table

	ball    physics.Body
	serving bool // Ball sits on the plunger
	balls   int
	bumps   int // Bumper hits, for the HUD

	score    int
	gameOver bool
}

func init() {
	registry.Register("pinball", func() registry.Game {
		return New()
	})
}

// New creates a Pinball game using the configuration search path.
func New() *Game {
	cfg, err := config.LoadPinball("")
	if err != nil {
		cfg = config.DefaultPinballConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Pinball game with explicit configuration.
func NewWithConfig(cfg config.PinballConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pinball" }

// Title returns the display name.
func (g *Game) Title() string { return "Pinball" }

// Reset initializes/restarts the game. The table has no random elements,
// so the seed is unused.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.tick = 0
	g.width = float64(g.cfg.Field.Width)
	g.height = float64(g.cfg.Field.Height)
	g.table = buildTable(g.width, g.height, g.cfg.Flippers.Length, g.cfg.Physics.Restitution)
	g.balls = g.cfg.Balls
	g.bumps = 0
	g.score = 0
	g.gameOver = false
	g.serve()
}

func (g *Game) serve() {
	g.serving = true
	r := g.cfg.Physics.BallRadius
	g.ball = physics.Body{
		Pos:    physics.V((g.table.laneX+g.width)/2, g.height-r),
		Radius: r,
	}
}

// Apply handles flipper and plunger commands.
func (g *Game) Apply(cmd core.Command) {
	if g.gameOver {
		return
	}
	f := &g.table.flippers
	switch cmd {
	case core.CmdFlipperLeftDown:
		f[left].press(g.cfg.Flippers.Hold)
	case core.CmdFlipperLeftUp:
		f[left].release()
	case core.CmdFlipperRightDown:
		f[right].press(g.cfg.Flippers.Hold)
	case core.CmdFlipperRightUp:
		f[right].release()
	case core.CmdLaunch:
		if g.serving {
			g.serving = false
			g.ball.Vel = physics.V(0, -g.cfg.Physics.LaunchSpeed)
		}
	}
}

// ReleaseAll drops both flippers.
func (g *Game) ReleaseAll() {
	for i := range g.table.flippers {
		g.table.flippers[i].release()
	}
}

// Advance runs one physics tick.
func (g *Game) Advance() core.StepResult {
	before := g.score
	if g.gameOver {
		return core.Result(before, g.State())
	}
	g.tick++

	var from [2]float64
	for i := range g.table.flippers {
		from[i] = g.table.flippers[i].swing()
	}
	g.table.syncFlippers()

	if g.serving {
		return core.Result(before, g.State())
	}

	for i := range g.table.flippers {
		f := &g.table.flippers[i]
		if f.Swept(from[i], g.ball) {
			g.flip(f)
		}
	}

	g.ball.Accelerate(physics.V(0, g.cfg.Physics.Gravity))
	g.ball.Vel = g.ball.Vel.ClampLen(g.cfg.Physics.MaxSpeed)

	for _, h := range g.table.field.Move(&g.ball) {
		switch h.Kind {
		case physics.KindCircle:
			g.score += g.cfg.Bumpers.Score
			g.bumps++
			g.kick(h.Contact.Normal, g.cfg.Bumpers.Kick)
		case physics.KindSegment:
			if i := g.table.flipperAt(h.Index); i >= 0 {
				f := &g.table.flippers[i]
				if f.Rising(from[i]) && h.Contact.Normal.Dot(f.Up()) > 0 {
					g.kick(h.Contact.Normal, g.cfg.Flippers.Impulse)
				}
			}
		}
	}

	switch {
	case g.ball.Pos.Y-g.ball.Radius > g.height:
		g.balls--
		if g.balls <= 0 {
			g.gameOver = true
		} else {
			g.serve()
		}
	case g.ball.Pos.X > g.table.laneX && g.ball.Pos.Y > g.height-2*g.ball.Radius:
		// Fell back down the plunger lane.
		g.serve()
	}

	return core.Result(before, g.State())
}

// flip places the ball on the playing face of a rising flipper and throws it.
// The throw is stronger toward the tip.
func (g *Game) flip(f *Flipper) {
	seg := f.Segment()
	on := seg.Closest(g.ball.Pos)
	up := f.Up()
	g.ball.Pos = on.Add(up.Scale(g.ball.Radius + 0.01))
	reach := on.Dist(f.Pivot) / f.Length
	g.ball.Vel = physics.Reflect(g.ball.Vel, up, g.cfg.Physics.Restitution)
	g.kick(up, g.cfg.Flippers.Impulse*(0.5+0.5*reach))
}

func (g *Game) kick(n physics.Vec, strength float64) {
	g.ball.Vel = g.ball.Vel.Add(n.Scale(strength)).ClampLen(g.cfg.Physics.MaxSpeed)
}

// Render draws the table, flippers and ball.
func (g *Game) Render(dst *core.Screen) {
	hud.Draw(dst, "Pinball",
		hud.F("Score", g.score),
		hud.F("Balls", g.balls),
		hud.F("Bumps", g.bumps))

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	if !hud.Fits(dst, w, h) {
		hud.TooSmall(dst, w, h)
		return
	}
	ox, oy := hud.Origin(dst, w, h)
	hud.Frame(dst, ox, oy, w, h)

	plot := func(p physics.Vec, r rune, c core.Color) {
		x, y := int(p.X), int(p.Y)
		if x >= 0 && x < w && y >= 0 && y < h {
			dst.SetColored(ox+x, oy+y, r, c)
		}
	}
	line := func(s physics.Segment, r rune, c core.Color) {
		steps := int(s.B.Sub(s.A).Len()*2) + 1
		for i := 0; i <= steps; i++ {
			plot(s.A.Add(s.B.Sub(s.A).Scale(float64(i)/float64(steps))), r, c)
		}
	}

	// The first three segments coincide with the frame.
	for i, s := range g.table.field.Segments[3:] {
		if g.table.flipperAt(i+3) >= 0 {
			continue
		}
		line(s, '░', core.ColorGray)
	}
	for _, c := range g.table.field.Circles {
		for dy := -c.Radius; dy <= c.Radius; dy++ {
			for dx := -c.Radius; dx <= c.Radius; dx++ {
				if dx*dx+dy*dy <= c.Radius*c.Radius {
					plot(c.Center.Add(physics.V(dx, dy)), '◉', core.ColorBrightMagenta)
				}
			}
		}
	}
	for i := range g.table.flippers {
		color := core.ColorBrightCyan
		if g.table.flippers[i].Held {
			color = core.ColorBrightYellow
		}
		line(g.table.flippers[i].Segment(), '▬', color)
	}
	plot(g.ball.Pos, '●', core.ColorBrightWhite)

	switch {
	case g.gameOver:
		dst.DrawMessage("Game Over", fmt.Sprintf("Score: %d", g.score))
	case g.serving:
		dst.Pen(core.ColorGray)
		dst.DrawTextCentered(oy+h/2, "space to launch")
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
