// Package animation schedules delayed, duration-bound visual effects and advances them per tick
package animation

import "github.com/lixenwraith/haliteviz/replay"

// Animation receives the lifecycle callbacks of one scheduled effect
type Animation interface {
	// Start fires once, on the first tick the delay is satisfied
	Start()

	// Tick fires once per active tick with the remaining duration before this tick's decrement
	Tick(remaining float64)

	// Finish fires exactly once after Start, when the duration is exhausted or the queue is cleared
	Finish()

	// Cancel fires instead of Start and Finish when the queue is cleared before the delay elapsed
	// Implementations must not emit cues from it
	Cancel()
}

// Effect exposes the current visual state of an animation to renderers
type Effect interface {
	Visual() Visual
}

// Kind identifies an effect variant
type Kind int

const (
	KindPlanetExplosion Kind = iota
	KindShipExplosion
	KindAttackFlash
	KindSpawnBeam
)

func (k Kind) String() string {
	switch k {
	case KindPlanetExplosion:
		return "planet_explosion"
	case KindShipExplosion:
		return "ship_explosion"
	case KindAttackFlash:
		return "attack_flash"
	case KindSpawnBeam:
		return "spawn_beam"
	default:
		return "unknown"
	}
}

// Visual is a renderer-facing snapshot of an effect, in board units
type Visual struct {
	Kind     Kind
	Owner    replay.Owner
	X, Y     float64 // center, or beam origin
	ToX, ToY float64 // beam end
	Radius   float64
	Alpha    float64 // 0..1
	Progress float64 // 0 at start, 1 at end
}

// Cue names the sound played when an effect starts
type Cue int

const (
	CuePlanetExplosion Cue = iota
	CueShipExplosion
	CueAttack
	CueSpawn
)

// CueSink plays effect cues; implementations must not block
type CueSink interface {
	PlayCue(c Cue)
}

type nopSink struct{}

func (nopSink) PlayCue(Cue) {}
