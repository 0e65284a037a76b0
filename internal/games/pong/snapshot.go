package pong

import "github.com/vovakirdan/arcade-hub/internal/physics"

// Snapshot contains the state of a Pong match for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Ball     physics.Body
	Paddle1Y float64
	Paddle2Y float64
	Score1   int
	Score2   int
	CPUSkill float64
	GameOver bool
	Winner   int // 0=none, 1=Player, 2=CPU
	Serving  bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Ball:     g.ball,
		Paddle1Y: g.paddle1Y,
		Paddle2Y: g.paddle2Y,
		Score1:   g.score1,
		Score2:   g.score2,
		CPUSkill: g.cpuSkill,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Serving:  g.serving,
	}
}
