// Package playback drives replay position, playback state, entity views and the animation queue
package playback

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/events"
	"github.com/lixenwraith/haliteviz/lifecycle"
	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/replay"
	"github.com/lixenwraith/haliteviz/stats"
	"github.com/lixenwraith/haliteviz/status"
)

// maxSubTime is the largest in-frame position below the next frame boundary
var maxSubTime = math.Nextafter(1, 0)

// Controller owns the playback position and every piece of state derived from it
// Not safe for concurrent use; a single tick loop drives it
type Controller struct {
	replay *replay.Replay
	pos    Position
	state  State

	stepSize   float64
	playSpeed  float64
	scrubSpeed float64

	tracker   *lifecycle.Tracker
	scheduler *animation.Scheduler
	factory   *animation.Factory
	cues      animation.CueSink
	bus       *events.Bus
	reg       *status.Registry
	log       *logrus.Entry

	stats    stats.Stats
	ships    map[ShipKey]*ShipView
	planets  []*PlanetView
	selected replay.EntityRef
	hasSel   bool

	statFrame         *atomic.Int64
	statFrameChanges  *atomic.Int64
	statEventsQueued  *atomic.Int64
	statEventsSkipped *atomic.Int64
	statShipsLive     *atomic.Int64
}

// New creates a paused controller at the start of r with frame 0's events queued
func New(r *replay.Replay, opts ...Option) (*Controller, error) {
	if r == nil || r.FrameCount() == 0 {
		return nil, fmt.Errorf("new controller: %w", replay.ErrEmptyReplay)
	}

	c := &Controller{
		replay:     r,
		stepSize:   parameter.StepSize,
		playSpeed:  parameter.PlaySpeed,
		scrubSpeed: parameter.ScrubSpeed,
		tracker:    lifecycle.NewTracker(),
		ships:      make(map[ShipKey]*ShipView),
		log:        logger.For("playback"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		c.bus = events.NewBus()
	}
	if c.reg == nil {
		c.reg = status.NewRegistry()
	}

	c.scheduler = animation.NewScheduler(c.reg)
	c.factory = animation.NewFactory(r, c.cues)

	c.statFrame = c.reg.Ints.Get(status.MetricFrame)
	c.statFrameChanges = c.reg.Ints.Get(status.MetricFrameChanges)
	c.statEventsQueued = c.reg.Ints.Get(status.MetricEventsQueued)
	c.statEventsSkipped = c.reg.Ints.Get(status.MetricEventsSkipped)
	c.statShipsLive = c.reg.Ints.Get(status.MetricShipsLive)

	c.planets = make([]*PlanetView, len(r.Planets))
	for i, base := range r.Planets {
		c.planets[i] = &PlanetView{Base: base}
	}

	c.frameChanged()
	c.syncShips()
	c.syncPlanets()

	return c, nil
}

// AdvanceTime moves the position by delta frame units, crossing at most one frame boundary
func (c *Controller) AdvanceTime(delta float64) {
	prev := c.pos.Frame
	frame := prev
	sub := c.pos.SubTime + delta

	if sub >= 1.0 {
		frame++
		sub -= 1.0
	} else if sub < 0.0 {
		frame--
		sub = 1.0 + sub
	}

	if frame > c.replay.LastFrame() {
		c.overrun()
		return
	}
	if frame < 0 {
		c.Pause()
		frame, sub = 0, 0
	}

	// Residue beyond the neighbouring frame waits for the next call
	sub = min(max(sub, 0), maxSubTime)

	if c.state == StateEnded {
		c.state = StatePaused
	}
	c.pos = Position{Frame: frame, SubTime: sub}

	if frame != prev {
		c.frameChanged()
	}
	c.publish(events.EventUpdate)
}

// overrun pins the position past the last frame and enters Ended
func (c *Controller) overrun() {
	c.Pause()
	c.pos = Position{Frame: c.replay.LastFrame(), SubTime: 1.0}
	if c.state == StateEnded {
		return
	}
	c.state = StateEnded
	c.log.WithField("frame", c.pos.Frame).Info("replay ended")
	c.publish(events.EventEnd)
}

// Scrub pauses and jumps to frame at subTime without visiting intermediate frames
func (c *Controller) Scrub(frame int, subTime float64) {
	c.Pause()
	if c.state == StateEnded {
		c.state = StatePaused
	}

	frame = min(max(frame, 0), c.replay.LastFrame())
	subTime = min(max(subTime, 0), 1)

	prev := c.pos.Frame
	c.pos = Position{Frame: frame, SubTime: subTime}

	if frame != prev || subTime == 0 {
		c.scheduler.Clear()
	}
	if subTime == 0 {
		c.frameChanged()
		c.publish(events.EventUpdate)
	} else if frame != prev {
		c.tracker.Rebuild(c.replay.Frame(frame))
		c.stats = stats.Aggregate(c.tracker.Frame())
		c.statFrame.Store(int64(frame))
	}

	c.draw(0)
}

// ScrubBy pauses and moves the position by direction at scrub speed for dt ticks
func (c *Controller) ScrubBy(direction int, dt float64) {
	c.Pause()
	c.AdvanceTime(float64(direction) * c.scrubSpeed * dt)
}

// Play starts playback; no-op when already playing
func (c *Controller) Play() {
	if c.state == StatePlaying {
		return
	}
	c.state = StatePlaying
	c.publish(events.EventPlay)
}

// Pause stops playback; no-op unless playing
func (c *Controller) Pause() {
	if c.state != StatePlaying {
		return
	}
	c.state = StatePaused
	c.publish(events.EventPause)
}

// TogglePlay switches between playing and paused
func (c *Controller) TogglePlay() {
	if c.state == StatePlaying {
		c.Pause()
	} else {
		c.Play()
	}
}

// Tick advances playback by dt ticks when playing, then runs the draw pass
func (c *Controller) Tick(dt float64) {
	if c.state == StatePlaying {
		c.AdvanceTime(c.stepSize * c.playSpeed * dt)
	}
	c.draw(dt)
}

// draw syncs entity views then drives the animation queue
func (c *Controller) draw(dt float64) {
	c.syncShips()
	c.syncPlanets()
	c.scheduler.Process(dt)
}

// frameChanged rebuilds death flags and queues the current frame's events
func (c *Controller) frameChanged() {
	frame := c.replay.Frame(c.pos.Frame)
	c.tracker.Rebuild(frame)
	c.stats = stats.Aggregate(frame)

	items, skipped := c.factory.FromFrame(frame, c.stepSize, c.playSpeed)
	c.scheduler.Enqueue(items...)

	c.statFrame.Store(int64(c.pos.Frame))
	c.statFrameChanges.Add(1)
	c.statEventsQueued.Add(int64(len(items)))
	c.statEventsSkipped.Add(int64(skipped))

	c.log.WithFields(logrus.Fields{
		"frame":   c.pos.Frame,
		"queued":  len(items),
		"skipped": skipped,
	}).Debug("frame changed")
}

func (c *Controller) publish(t events.EventType) {
	c.bus.Publish(events.Event{Type: t, Frame: c.pos.Frame, SubTime: c.pos.SubTime})
}

// SetPlaySpeed changes the speed for future ticks and enqueues, clamped to the supported range
// Delays already queued keep the speed they were computed with
func (c *Controller) SetPlaySpeed(v float64) {
	c.playSpeed = min(max(v, parameter.MinPlaySpeed), parameter.MaxPlaySpeed)
}

// PlaySpeed returns the current play speed
func (c *Controller) PlaySpeed() float64 {
	return c.playSpeed
}

// Select marks ref as selected and notifies observers
func (c *Controller) Select(ref replay.EntityRef) {
	c.selected = ref
	c.hasSel = true
	c.bus.Publish(events.Event{Type: events.EventSelect, Frame: c.pos.Frame, SubTime: c.pos.SubTime, Entity: ref})
}

// Deselect clears the selection; no-op when nothing is selected
func (c *Controller) Deselect() {
	if !c.hasSel {
		return
	}
	ref := c.selected
	c.selected = replay.EntityRef{}
	c.hasSel = false
	c.bus.Publish(events.Event{Type: events.EventDeselect, Frame: c.pos.Frame, SubTime: c.pos.SubTime, Entity: ref})
}

// Selected returns the selected entity
func (c *Controller) Selected() (replay.EntityRef, bool) {
	return c.selected, c.hasSel
}

// ClearAnimations finishes and drops every queued animation
func (c *Controller) ClearAnimations() {
	c.scheduler.Clear()
}

// Idle reports whether nothing will change until the next input
func (c *Controller) Idle() bool {
	return c.state != StatePlaying && c.scheduler.Len() == 0
}

// Position returns the current position
func (c *Controller) Position() Position {
	return c.pos
}

// State returns the playback state
func (c *Controller) State() State {
	return c.state
}

// CurrentFrame returns the frame at the current position
func (c *Controller) CurrentFrame() *replay.Frame {
	return c.tracker.Frame()
}

// DeathFlags returns the death flags of the current frame
func (c *Controller) DeathFlags() lifecycle.DeathFlags {
	return c.tracker.Flags()
}

// IsAlive reports whether ref is alive at the current position
func (c *Controller) IsAlive(ref replay.EntityRef) bool {
	return c.tracker.IsAlive(ref, c.pos.SubTime)
}

// Animations returns the animation queue
func (c *Controller) Animations() *animation.Scheduler {
	return c.scheduler
}

// Stats returns the aggregate of the current frame
func (c *Controller) Stats() stats.Stats {
	return c.stats
}

// Replay returns the replay being played
func (c *Controller) Replay() *replay.Replay {
	return c.replay
}

// Bus returns the observer bus
func (c *Controller) Bus() *events.Bus {
	return c.bus
}

// Registry returns the metrics registry
func (c *Controller) Registry() *status.Registry {
	return c.reg
}
