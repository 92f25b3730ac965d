package input

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/playback"
	"github.com/lixenwraith/haliteviz/replay"
)

// Target is the playback surface driven by input
type Target interface {
	Play()
	TogglePlay()
	Scrub(frame int, subTime float64)
	ScrubBy(direction int, dt float64)
	SetPlaySpeed(v float64)
	PlaySpeed() float64
	State() playback.State
	Replay() *replay.Replay
	Select(ref replay.EntityRef)
	Deselect()
}

// PickFunc resolves a screen cell to the entity drawn there
type PickFunc func(col, row int) (replay.EntityRef, bool)

// Dispatcher applies intents to a Target
type Dispatcher struct {
	target Target
	pick   PickFunc
	mute   func()
	log    *logrus.Entry
}

// NewDispatcher creates a dispatcher; pick and mute may be nil
func NewDispatcher(target Target, pick PickFunc, mute func()) *Dispatcher {
	return &Dispatcher{
		target: target,
		pick:   pick,
		mute:   mute,
		log:    logger.For("input"),
	}
}

// Apply executes in and reports whether the viewer should quit
func (d *Dispatcher) Apply(in Intent) (quit bool) {
	t := d.target
	switch in.Type {
	case IntentQuit:
		return true

	case IntentTogglePlay:
		// Space at the end restarts from the first frame
		if t.State() == playback.StateEnded {
			t.Scrub(0, 0)
			t.Play()
			return false
		}
		t.TogglePlay()

	case IntentScrubBack:
		t.ScrubBy(-1, parameter.KeyScrubTicks)

	case IntentScrubForward:
		t.ScrubBy(1, parameter.KeyScrubTicks)

	case IntentSpeedUp:
		t.SetPlaySpeed(t.PlaySpeed() * parameter.PlaySpeedFactor)
		d.log.WithField("speed", t.PlaySpeed()).Debug("play speed changed")

	case IntentSlowDown:
		t.SetPlaySpeed(t.PlaySpeed() / parameter.PlaySpeedFactor)
		d.log.WithField("speed", t.PlaySpeed()).Debug("play speed changed")

	case IntentFirstFrame:
		t.Scrub(0, 0)

	case IntentLastFrame:
		t.Scrub(t.Replay().LastFrame(), 0)

	case IntentToggleMute:
		if d.mute != nil {
			d.mute()
		}

	case IntentSelect:
		if d.pick == nil {
			return false
		}
		if ref, ok := d.pick(in.Col, in.Row); ok {
			t.Select(ref)
		} else {
			t.Deselect()
		}

	case IntentDeselect:
		t.Deselect()
	}
	return false
}
