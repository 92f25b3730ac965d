package lifecycle

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/replay"
)

// Tracker holds the death flags of the current frame
// Rebuilt wholesale on every frame change, never patched
type Tracker struct {
	frame *replay.Frame
	flags DeathFlags
}

// NewTracker creates a tracker with no current frame; every query reports dead
func NewTracker() *Tracker {
	return &Tracker{flags: newDeathFlags()}
}

// Rebuild discards the previous flags and scans frame's destroyed events
func (t *Tracker) Rebuild(frame *replay.Frame) {
	t.frame = frame
	t.flags = newDeathFlags()
	if frame == nil {
		return
	}

	for _, ev := range frame.Events {
		d, ok := ev.(replay.Destroyed)
		if !ok {
			continue
		}
		switch d.Entity.Kind {
		case replay.EntityPlanet:
			t.flags.Planets[replay.PlanetID(d.Entity.ID)] = d.Time
		case replay.EntityShip:
			t.flags.flagShip(d.Entity.Owner, replay.ShipID(d.Entity.ID), d.Time)
		default:
			logger.For("lifecycle").WithFields(logrus.Fields{
				"frame": frame.Index,
				"id":    d.Entity.ID,
			}).Warn("unknown entity destroyed, skipped")
		}
	}
}

// Frame returns the frame the flags were built from
func (t *Tracker) Frame() *replay.Frame {
	return t.frame
}

// Flags returns the current death flags
// The maps are owned by the tracker and replaced on Rebuild
func (t *Tracker) Flags() DeathFlags {
	return t.flags
}

// DeathInstant returns the sub-frame instant at which ref disappears
func (t *Tracker) DeathInstant(ref replay.EntityRef) float64 {
	return t.flags.Instant(ref)
}

// IsAlive reports whether ref is present in the current frame and not yet dead at subTime
func (t *Tracker) IsAlive(ref replay.EntityRef, subTime float64) bool {
	if t.frame == nil || !t.frame.Contains(ref) {
		return false
	}
	return subTime < t.flags.Instant(ref)
}

// PlanetState returns the planet's state while alive
// A dead or absent planet reports health 0 and no owner
func (t *Tracker) PlanetState(id replay.PlanetID, subTime float64) (replay.PlanetState, bool) {
	if !t.IsAlive(replay.PlanetRef(id), subTime) {
		return replay.PlanetState{ID: id}, false
	}
	state, _ := t.frame.Planet(id)
	return state, true
}
