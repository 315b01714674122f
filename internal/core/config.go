package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt rendering to screen size and for deterministic
// simulation. The playfield itself is fixed-size; only the projection of it
// onto terminal cells depends on ScreenW/ScreenH.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	GameOver bool // Player ship has been hit
	Paused   bool // Simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
