package tetris

import "github.com/vovakirdan/arcade-hub/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Piece    Kind
	PiecePos core.Point
	Next     Kind
	Filled   int // Occupied cells in the well
	GameOver bool
}

// Snapshot returns the current state summary.
func (g *Game) Snapshot() Snapshot {
	filled := 0
	for _, row := range g.board {
		for _, c := range row {
			if c != core.ColorDefault {
				filled++
			}
		}
	}
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Piece:    g.piece.Kind,
		PiecePos: g.piece.Pos,
		Next:     g.next,
		Filled:   filled,
		GameOver: g.gameOver,
	}
}
