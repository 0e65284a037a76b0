package core

import "time"

// RuntimeConfig contains configuration passed to games at Reset.
// Games use this to size their playfield and seed their RNG.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Seed    int64         // RNG seed for deterministic gameplay
	Tick    time.Duration // Simulation interval; games with their own clocks scale by it
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the part of a simulation's state the session layer cares about.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Set together with GameOver when the ending was a win
}

// StepResult is returned by Game.Advance after each simulation tick.
type StepResult struct {
	State      GameState
	Terminal   bool // The tick ended the game
	ScoreDelta int  // Points awarded while resolving this tick
}

// Result builds a StepResult from the score before the tick and the state after it.
func Result(before int, st GameState) StepResult {
	return StepResult{
		State:      st,
		Terminal:   st.GameOver,
		ScoreDelta: st.Score - before,
	}
}
