package breakout

import "github.com/vovakirdan/arcade-hub/internal/physics"

// Snapshot contains the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	Wave        int
	Ball        physics.Body
	PaddleX     float64
	Serving     bool
	BricksAlive int
	GameOver    bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Lives:       g.lives,
		Wave:        g.wave.Number,
		Ball:        g.ball,
		PaddleX:     g.paddleX,
		Serving:     g.serving,
		BricksAlive: g.wave.CountAlive(),
		GameOver:    g.gameOver,
	}
}
