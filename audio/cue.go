package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/parameter"
)

// Synth builds the streamer for cue at the given sample rate and linear volume
// Returns nil for unknown cues
func Synth(cue animation.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case animation.CuePlanetExplosion:
		s = planetBoom(rate)
	case animation.CueShipExplosion:
		s = shipPop(rate)
	case animation.CueAttack:
		s = attackZap(rate)
	case animation.CueSpawn:
		s = spawnChime(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// planetBoom is a falling rumble under noise with a long exponential tail
func planetBoom(rate beep.SampleRate) beep.Streamer {
	d := parameter.PlanetBoomDuration
	mixed := beep.Mix(
		newVolume(newTone(sine, 90, 40, d, rate), 0.6),
		newVolume(newTone(noise, 0, 0, d, rate), 0.3),
	)
	return shape(mixed, d, rate,
		ramp(d, parameter.PlanetBoomAttack, 0, rate),
		falloff(6, rate),
	)
}

// shipPop is a short noise burst
func shipPop(rate beep.SampleRate) beep.Streamer {
	d := parameter.ShipPopDuration
	return shape(newTone(noise, 0, 0, d, rate), d, rate,
		ramp(d, parameter.ShipPopAttack, parameter.ShipPopRelease, rate))
}

// attackZap is a saw blip dropping an octave
func attackZap(rate beep.SampleRate) beep.Streamer {
	d := parameter.AttackZapDuration
	zap := shape(newTone(saw, 660, 330, d, rate), d, rate,
		ramp(d, parameter.AttackZapAttack, parameter.AttackZapRelease, rate))
	return newVolume(zap, 0.4)
}

// spawnChime is two rising sine notes (E5, A5)
func spawnChime(rate beep.SampleRate) beep.Streamer {
	d := parameter.SpawnChimeNoteDuration
	note := func(freq float64) beep.Streamer {
		return shape(newTone(sine, freq, freq, d, rate), d, rate,
			ramp(d, parameter.SpawnChimeAttack, parameter.SpawnChimeRelease, rate))
	}
	return beep.Seq(note(659.25), note(880))
}
