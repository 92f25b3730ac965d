// Package status is the playback diagnostics registry
package status

import (
	"cmp"
	"slices"
	"strconv"
	"sync/atomic"
)

// Metric names recorded by the playback engine
const (
	MetricFrame         = "playback.frame"
	MetricFrameChanges  = "playback.frame_changes"
	MetricEventsQueued  = "playback.events_queued"
	MetricEventsSkipped = "playback.events_skipped"
	MetricShipsLive     = "playback.ships_live"
	MetricAnimActive    = "animation.active"
	MetricAnimFinished  = "animation.finished"
	MetricTickDelta     = "clock.tick_delta"
)

// Registry holds named metrics
// Components cache pointers at construction; hot paths write to the atomics directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// Sample is one metric rendered for display
type Sample struct {
	Name  string
	Value string
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot returns every metric formatted, sorted by name
func (r *Registry) Snapshot() []Sample {
	samples := make([]Sample, 0, r.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		samples = append(samples, Sample{Name: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		samples = append(samples, Sample{Name: key, Value: strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	slices.SortFunc(samples, func(a, b Sample) int { return cmp.Compare(a.Name, b.Name) })
	return samples
}
