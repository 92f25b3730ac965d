package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBuffer is the speaker buffer length
	AudioBuffer = 100 * time.Millisecond

	// AudioVolume is the default master volume, 0.0-1.0
	AudioVolume = 0.5

	// CueMinGap suppresses repeats of one cue within this window
	// A frame can destroy dozens of ships at once
	CueMinGap = 40 * time.Millisecond
)

// Cue Shapes
const (
	PlanetBoomDuration = 600 * time.Millisecond
	PlanetBoomAttack   = 5 * time.Millisecond

	ShipPopDuration = 150 * time.Millisecond
	ShipPopAttack   = 2 * time.Millisecond
	ShipPopRelease  = 120 * time.Millisecond

	AttackZapDuration = 60 * time.Millisecond
	AttackZapAttack   = 2 * time.Millisecond
	AttackZapRelease  = 40 * time.Millisecond

	SpawnChimeNoteDuration = 80 * time.Millisecond
	SpawnChimeAttack       = 5 * time.Millisecond
	SpawnChimeRelease      = 60 * time.Millisecond
)
