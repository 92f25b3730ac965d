package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/clock"
	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/parameter"
)

var _ animation.CueSink = (*CuePlayer)(nil)

// CuePlayer plays animation cues on the system speaker
// PlayCue never blocks the caller on audio output
type CuePlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	out         func(s beep.Streamer)
	time        clock.TimeProvider
	last        map[animation.Cue]time.Time
	initialized bool
	muted       atomic.Bool
	log         *logrus.Entry

	played     int
	suppressed int
}

// NewCuePlayer creates a player at the given linear volume; Init opens the speaker
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: min(max(volume, 0), 1),
		mixer:  &beep.Mixer{},
		time:   clock.NewMonotonicTimeProvider(),
		last:   make(map[animation.Cue]time.Time),
		log:    logger.For("audio"),
	}
}

// Init opens the speaker and starts the mixer
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.out = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	p.log.WithField("rate", int(p.rate)).Info("audio initialized")
	return nil
}

// Close silences pending cues
// beep keeps the speaker device open for the process lifetime
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	p.out = nil
	p.log.WithFields(logrus.Fields{"played": p.played, "suppressed": p.suppressed}).Debug("audio closed")
}

// PlayCue mixes the cue in unless the same cue played within CueMinGap
func (p *CuePlayer) PlayCue(c animation.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil || p.muted.Load() {
		return
	}

	now := p.time.Now()
	if last, ok := p.last[c]; ok && now.Sub(last) < parameter.CueMinGap {
		p.suppressed++
		return
	}

	s := Synth(c, p.rate, p.volume)
	if s == nil {
		return
	}
	p.last[c] = now
	p.played++
	p.out(s)
}

// ToggleMute flips muting and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are suppressed
func (p *CuePlayer) Muted() bool {
	return p.muted.Load()
}

// Counts returns the number of cues played and suppressed
func (p *CuePlayer) Counts() (played, suppressed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.suppressed
}
