package parameter

import "time"

// Playback Timing
const (
	// StepSize is the fraction of a frame advanced per tick at unit speed
	StepSize = 0.1

	// PlaySpeed is the default play speed multiplier
	PlaySpeed = 0.5

	// ScrubSpeed is frame units moved per tick while a scrub key is held
	ScrubSpeed = 0.25

	// MinPlaySpeed and MaxPlaySpeed bound runtime speed changes
	MinPlaySpeed = 0.125
	MaxPlaySpeed = 8.0

	// PlaySpeedFactor is the multiplier applied by one speed-up/slow-down step
	PlaySpeedFactor = 2.0
)

// Tick Source
const (
	// TickRate is the nominal tick rate; one tick delta unit equals one frame at this rate
	TickRate = 60

	// TickInterval is the wall-clock length of one tick delta unit
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the terminal redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick delta after a stall (10 FPS floor)
	MaxTickDelta = 6.0

	// KeyScrubTicks is the tick budget applied per scrub key event
	// Terminal key repeat delivers discrete presses instead of held state
	KeyScrubTicks = 2.0
)

// Entity Lifecycle
const (
	// AliveInstant is the effective death instant of an unflagged entity
	// Unreachable within [0,1) so the entity stays alive for the whole frame
	AliveInstant = 1.1

	// LowHealthFactor is the planet health ratio below which intensity drops
	LowHealthFactor = 0.25

	// LowHealthIntensity is planet intensity when under LowHealthFactor
	LowHealthIntensity = 0.7
)
