package animation

import (
	"sync/atomic"

	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/status"
)

// Scheduled is one queued animation with its remaining duration and delay, in ticks
type Scheduled struct {
	Anim     Animation
	Duration float64 // remaining active ticks
	Delay    float64 // remaining delay ticks; DelaySatisfied once consumed

	started bool
}

// NewScheduled wraps anim with a duration and an initial delay
func NewScheduled(anim Animation, duration, delay float64) *Scheduled {
	return &Scheduled{Anim: anim, Duration: duration, Delay: delay}
}

// Started reports whether Start has fired
func (s *Scheduled) Started() bool {
	return s.started
}

func (s *Scheduled) start() {
	if !s.started {
		s.started = true
		s.Anim.Start()
	}
}

// Scheduler is the ordered queue of scheduled animations
// Single-threaded: callers drive Process from the tick loop
type Scheduler struct {
	queue []*Scheduled

	statActive   *atomic.Int64
	statFinished *atomic.Int64
}

// NewScheduler creates an empty scheduler recording into reg
func NewScheduler(reg *status.Registry) *Scheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Scheduler{
		statActive:   reg.Ints.Get(status.MetricAnimActive),
		statFinished: reg.Ints.Get(status.MetricAnimFinished),
	}
}

// Enqueue appends animations in order
// Animations enqueued from inside a callback are first processed on the next Process call
func (s *Scheduler) Enqueue(items ...*Scheduled) {
	s.queue = append(s.queue, items...)
	s.statActive.Store(int64(len(s.queue)))
}

// Process advances every queued animation by a tick budget of dt
func (s *Scheduler) Process(dt float64) {
	queue := s.queue
	s.queue = make([]*Scheduled, 0, len(queue))

	for _, a := range queue {
		budget := dt

		if a.Delay > 0 {
			if a.Delay >= budget {
				// Still delayed this tick
				a.Delay -= budget
				s.queue = append(s.queue, a)
				continue
			}
			// Borrow: the part of dt left after the delay is this tick's active budget
			budget -= a.Delay
			a.Delay = parameter.DelaySatisfied
		}

		a.start()

		if a.Duration >= budget {
			a.Anim.Tick(a.Duration)
			a.Duration -= budget
			s.queue = append(s.queue, a)
			continue
		}

		a.Anim.Finish()
		s.statFinished.Add(1)
	}

	s.statActive.Store(int64(len(s.queue)))
}

// Clear drops every queued animation
// Started animations finish; those still in their delay are cancelled without starting
func (s *Scheduler) Clear() {
	for _, a := range s.queue {
		if !a.started {
			a.Anim.Cancel()
			continue
		}
		a.Anim.Finish()
		s.statFinished.Add(1)
	}
	s.queue = nil
	s.statActive.Store(0)
}

// Len returns the number of queued animations
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Queue returns the queued animations in order; callers must not modify it
func (s *Scheduler) Queue() []*Scheduled {
	return s.queue
}

// Active returns the effects of started animations, in queue order
func (s *Scheduler) Active() []Effect {
	var effects []Effect
	for _, a := range s.queue {
		if !a.started {
			continue
		}
		if e, ok := a.Anim.(Effect); ok {
			effects = append(effects, e)
		}
	}
	return effects
}
