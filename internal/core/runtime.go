package core

import "time"

// DefaultTickRate is the simulation rate hosts use when none is configured.
const DefaultTickRate = 60

// RuntimeConfig describes the host a game runs in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Ticks per second, DefaultTickRate when zero
	Seed     int64 // Pipe layout seed; zero lets the host pick one
}

// DefaultConfig returns an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// TickInterval returns the wall-clock time between two ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is what a host needs to know about a game between ticks.
type GameState struct {
	Score    int
	Best     int
	Started  bool // A run is in progress or has ended
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Game.Step.
type StepResult struct {
	State GameState
}
