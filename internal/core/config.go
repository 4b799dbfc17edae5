package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the nominal seconds per tick for this config.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int  // Current score
	GameOver      bool // Whether the game has ended
	Paused        bool // Whether the game is paused
	ExitRequested bool // Player picked "main menu" from an overlay
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventStageCleared EventKind = iota
	EventUpgrade
	EventHeartLost
	EventGameOver
	EventRestart
)

// Event is a host-facing notification (sound cues, logging, run summaries).
type Event struct {
	Kind  EventKind
	Stage int
	Text  string
}

// RunSummary describes a finished run for persistence.
type RunSummary struct {
	Seed     int64
	Stage    int
	Score    int
	Kills    int
	Duration float64 // simulated seconds
}
