package animation

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/replay"
)

// Factory turns a frame's events into scheduled animations
type Factory struct {
	replay       *replay.Replay
	weaponRadius float64
	cues         CueSink
	log          *logrus.Entry
}

// NewFactory creates a factory for r; cues may be nil
func NewFactory(r *replay.Replay, cues CueSink) *Factory {
	radius := r.Constants.WeaponRadius
	if radius <= 0 {
		radius = parameter.DefaultWeaponRadius
	}
	if cues == nil {
		cues = nopSink{}
	}
	return &Factory{
		replay:       r,
		weaponRadius: radius,
		cues:         cues,
		log:          logger.For("animation"),
	}
}

// Delay converts a fractional in-frame event time into ticks at the given step size and speed
// Computed once at enqueue; later speed changes do not affect it
func Delay(eventTime, stepSize, playSpeed float64) float64 {
	if eventTime == 0 || stepSize <= 0 || playSpeed <= 0 {
		return 0
	}
	return eventTime / (stepSize * playSpeed)
}

// FromEvents builds animations for every recognised event, in event order
// Returns the animations and the number of skipped events
func (f *Factory) FromEvents(events []replay.Event, stepSize, playSpeed float64) ([]*Scheduled, int) {
	return f.build(f.log, events, stepSize, playSpeed)
}

// FromFrame is FromEvents over frame's events, logging with the frame index
func (f *Factory) FromFrame(frame *replay.Frame, stepSize, playSpeed float64) ([]*Scheduled, int) {
	if frame == nil {
		return nil, 0
	}
	return f.build(f.log.WithField("frame", frame.Index), frame.Events, stepSize, playSpeed)
}

func (f *Factory) build(log *logrus.Entry, events []replay.Event, stepSize, playSpeed float64) ([]*Scheduled, int) {
	items := make([]*Scheduled, 0, len(events))
	skipped := 0

	for _, ev := range events {
		delay := Delay(ev.EventTime(), stepSize, playSpeed)

		switch e := ev.(type) {
		case replay.Destroyed:
			item := f.explosion(e, delay)
			if item == nil {
				log.WithField("id", e.Entity.ID).Warn("unknown entity destroyed, skipped")
				skipped++
				continue
			}
			items = append(items, item)

		case replay.Attack:
			anim := NewAttackFlash(e.Owner, e.X, e.Y, f.weaponRadius, f.cues)
			items = append(items, NewScheduled(anim, parameter.AttackFlashTicks, delay))

		case replay.Spawned:
			anim := NewSpawnBeam(e.Owner, e.PlanetX, e.PlanetY, e.X, e.Y, f.cues)
			items = append(items, NewScheduled(anim, parameter.SpawnBeamTicks, delay))

		case replay.Unrecognized:
			log.WithField("kind", e.Kind).Warn("unrecognized event, skipped")
			skipped++
		}
	}

	return items, skipped
}

func (f *Factory) explosion(e replay.Destroyed, delay float64) *Scheduled {
	switch e.Entity.Kind {
	case replay.EntityPlanet:
		x, y, radius := e.X, e.Y, e.Radius
		if base, ok := f.replay.Planet(replay.PlanetID(e.Entity.ID)); ok {
			if radius <= 0 {
				radius = base.Radius
			}
			if x == 0 && y == 0 {
				x, y = base.X, base.Y
			}
		}
		anim := NewExplosion(KindPlanetExplosion, replay.Owner{}, x, y,
			radius*parameter.PlanetExplosionGrowth, parameter.PlanetExplosionTicks, f.cues)
		return NewScheduled(anim, parameter.PlanetExplosionTicks, delay)

	case replay.EntityShip:
		anim := NewExplosion(KindShipExplosion, replay.OwnedBy(e.Entity.Owner), e.X, e.Y,
			parameter.ShipExplosionRadius, parameter.ShipExplosionTicks, f.cues)
		return NewScheduled(anim, parameter.ShipExplosionTicks, delay)

	default:
		return nil
	}
}
