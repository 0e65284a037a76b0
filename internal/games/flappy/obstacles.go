package flappy

import (
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	GapY      int     // Y position where gap starts (top of gap)
	GapHeight int     // Height of the passable gap
	Passed    bool    // Whether the player has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth int) core.RectF {
	return core.RectF{X: p.X, Y: 0, W: float64(pipeWidth), H: float64(p.GapY)}
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(pipeWidth, groundY int) core.RectF {
	bottomY := p.GapY + p.GapHeight
	return core.RectF{X: p.X, Y: float64(bottomY), W: float64(pipeWidth), H: float64(groundY - bottomY)}
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	width      int
	groundY    int
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a pipe manager for a width x groundY field.
func NewPipeManager(rng *rand.Rand, width, groundY int, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	return &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		rng:        rng,
		width:      width,
		groundY:    groundY,
		cfg:        cfg,
		difficulty: diff,
	}
}

// Update moves pipes left, recycles the ones that left the field and spawns
// new ones as needed. Returns the number of pipes the player cleared.
func (pm *PipeManager) Update(playerX float64, score, ticks int) int {
	passed := 0
	speed := pm.difficulty.Speed(pm.cfg.Physics.BaseSpeed, score, ticks)
	pipeWidth := float64(pm.cfg.Obstacles.PipeWidth)

	for i := range pm.pipes {
		pm.pipes[i].X -= speed
		if !pm.pipes[i].Passed && pm.pipes[i].X+pipeWidth < playerX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Drop pipes that have moved off the left side
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pipeWidth > 0 {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid

	minSpacing := pm.cfg.Obstacles.PipeWidth * 3
	spacing := pm.difficulty.Spacing(pm.cfg.Obstacles.PipeSpacing, minSpacing, score, ticks)
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < float64(pm.width-spacing) {
		pm.spawnPipe(score, ticks)
	}

	return passed
}

// spawnPipe creates a new pipe at the right edge of the field.
func (pm *PipeManager) spawnPipe(score, ticks int) {
	minGap := pm.cfg.Obstacles.MinGapSize
	currentGap := core.Max(pm.difficulty.GapSize(pm.cfg.Obstacles.MaxGapSize, score, ticks), minGap)

	gapHeight := minGap
	if r := currentGap - minGap; r > 0 {
		gapHeight = minGap + pm.rng.Intn(r+1)
	}

	minGapY := pm.cfg.Obstacles.TopMargin
	maxGapY := core.Max(pm.groundY-pm.cfg.Obstacles.BottomMargin-gapHeight, minGapY)
	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         float64(pm.width),
		GapY:      gapY,
		GapHeight: gapHeight,
	})
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pipe.
func (pm *PipeManager) CheckCollision(player core.RectF) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.pipes {
		if player.Intersects(p.TopRect(pipeWidth)) || player.Intersects(p.BottomRect(pipeWidth, pm.groundY)) {
			return true
		}
	}
	return false
}
