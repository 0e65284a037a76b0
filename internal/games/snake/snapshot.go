package snake

import "github.com/vovakirdan/arcade-hub/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Body     []core.Point // Head first
	Heading  core.Point
	Food     core.Point
	HasFood  bool
	GameOver bool
	Won      bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Body:     body,
		Heading:  g.heading,
		Food:     g.food,
		HasFood:  g.hasFood,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Body)
}
