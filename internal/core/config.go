package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock

	// Random names the tile random source ("gray" or "std").
	Random string

	HighlightMerges bool
	HighlightSpawn  bool
	ShowTimer       bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		TickRate:        60,
		Random:          "gray",
		HighlightMerges: true,
		HighlightSpawn:  true,
		ShowTimer:       true,
	}
}

// GameState is the game status reported to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool // no move is possible
	Paused   bool
	Won      bool // the winning tile was reached during this game

	MaxTile int
	Moves   int
	Elapsed time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
