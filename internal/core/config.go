package core

import "time"

// DefaultTickRate is the simulation rate in ticks per second.
// The device paces its loop with a 50 ms delay after every tick.
const DefaultTickRate = 20

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; front-ends use the screen
// size for layout only (the game itself always renders 128x64).
type RuntimeConfig struct {
	ScreenW  int   // Terminal/window width available to the front-end
	ScreenH  int   // Terminal/window height available to the front-end
	TickRate int   // Simulation ticks per second (default 20)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns seed unchanged, or a time-based seed when it is 0.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Aliens destroyed this round
	Lives    int  // Lives left, including the current one
	Round    int  // 1-based round counter for this session
	Ticks    int  // Ticks played this round
	GameOver bool // Whether the round has ended and awaits restart
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RoundEnded is true only on the tick where the game entered game over.
	RoundEnded bool

	// Restarted is true only on the tick where a new round began.
	Restarted bool
}
