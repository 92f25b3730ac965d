// Package audio synthesizes effect cues and plays them through the beep speaker
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveFunc maps a phase in [0, 1) to a sample in [-1, 1]
type waveFunc func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }
func saw(p float64) float64  { return 2*p - 1 }
func noise(float64) float64  { return rand.Float64()*2 - 1 }

// tone is a fixed-length voice gliding linearly from `from` to `to` Hz
type tone struct {
	wave     waveFunc
	from, to float64
	phase    float64
	pos, n   int
	rate     beep.SampleRate
}

func newTone(wave waveFunc, from, to float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{wave: wave, from: from, to: to, n: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.n {
			return i, i > 0
		}
		v := t.wave(t.phase)
		samples[i] = [2]float64{v, v}

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.n)
		t.phase = math.Mod(t.phase+freq/float64(t.rate), 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gainFunc returns the gain applied at sample index pos
type gainFunc func(pos int) float64

// ramp rises linearly over attack and falls linearly over the last release of total
func ramp(total, attack, release time.Duration, rate beep.SampleRate) gainFunc {
	n, a, r := rate.N(total), rate.N(attack), rate.N(release)
	return func(pos int) float64 {
		g := 1.0
		if a > 0 && pos < a {
			g = float64(pos) / float64(a)
		}
		if r > 0 && pos >= n-r {
			g = min(g, max(float64(n-pos)/float64(r), 0))
		}
		return g
	}
}

// falloff decays as exp(-k*t) with t in seconds
func falloff(k float64, rate beep.SampleRate) gainFunc {
	return func(pos int) float64 {
		return math.Exp(-k * float64(pos) / float64(rate))
	}
}

// shaped multiplies a source by gain curves and stops it after n samples
type shaped struct {
	src    beep.Streamer
	gains  []gainFunc
	pos, n int
}

func shape(src beep.Streamer, d time.Duration, rate beep.SampleRate, gains ...gainFunc) *shaped {
	return &shaped{src: src, gains: gains, n: rate.N(d)}
}

func (s *shaped) Stream(samples [][2]float64) (int, bool) {
	if left := s.n - s.pos; left < len(samples) {
		samples = samples[:max(left, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok := s.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		for _, f := range s.gains {
			g *= f(s.pos)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		s.pos++
	}
	return n, ok
}

func (s *shaped) Err() error { return s.src.Err() }

// newVolume wraps s at a linear volume; zero or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
