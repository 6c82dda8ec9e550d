package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation and to learn the platform's
// tick cadence; the framebuffer dimensions are fixed by the game itself.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The 15 ticks/s default matches the cadence the invaders simulation
// was tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 15,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the round has ended (win and loss both end it)
	Cleared  bool // Whether a finished round ended by wiping the formation
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
