package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int    // Current score, lower is better
	Turns    int    // Successful steps
	Eaten    int    // Pieces destroyed by merges
	Pieces   int    // Pieces remaining on the board
	Running  bool   // Whether the board auto-advances
	Finished bool   // A step has just emptied a populated board
	Layout   uint64 // Changes whenever a new set of pieces is laid out
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Steps int // Board steps executed during this tick
}
