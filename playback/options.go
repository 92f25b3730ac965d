package playback

import (
	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/config"
	"github.com/lixenwraith/haliteviz/events"
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/status"
)

// Option configures a Controller at construction
type Option func(*Controller)

// WithStepSize sets the fraction of a frame advanced per tick at unit speed
func WithStepSize(v float64) Option {
	return func(c *Controller) {
		if v > 0 {
			c.stepSize = v
		}
	}
}

// WithPlaySpeed sets the initial play speed, clamped like SetPlaySpeed
func WithPlaySpeed(v float64) Option {
	return func(c *Controller) {
		if v > 0 {
			c.playSpeed = min(max(v, parameter.MinPlaySpeed), parameter.MaxPlaySpeed)
		}
	}
}

// WithScrubSpeed sets frame units moved per tick by ScrubBy
func WithScrubSpeed(v float64) Option {
	return func(c *Controller) {
		if v > 0 {
			c.scrubSpeed = v
		}
	}
}

// WithConfig applies the playback fields of cfg
func WithConfig(cfg config.Config) Option {
	return func(c *Controller) {
		WithStepSize(cfg.StepSize)(c)
		WithPlaySpeed(cfg.PlaySpeed)(c)
		WithScrubSpeed(cfg.ScrubSpeed)(c)
	}
}

// WithBus publishes notifications on bus instead of a private one
func WithBus(bus *events.Bus) Option {
	return func(c *Controller) {
		if bus != nil {
			c.bus = bus
		}
	}
}

// WithRegistry records metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(c *Controller) {
		if reg != nil {
			c.reg = reg
		}
	}
}

// WithCues plays effect cues through sink
func WithCues(sink animation.CueSink) Option {
	return func(c *Controller) {
		c.cues = sink
	}
}
