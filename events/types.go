// Package events is the synchronous observer bus for playback notifications
package events

import "github.com/lixenwraith/haliteviz/replay"

// EventType identifies a playback notification
type EventType int

const (
	// EventUpdate signals a new playback position
	// Trigger: every in-bounds AdvanceTime, after any frame-change rebuild; Scrub landing on a frame boundary
	EventUpdate EventType = iota

	// EventPlay signals Paused/Ended -> Playing
	EventPlay

	// EventPause signals Playing -> Paused or Ended
	// Trigger: Pause, Scrub while playing, overrun at either end
	EventPause

	// EventEnd signals entry into Ended
	// Trigger: forward overrun past the last frame | Fired once per entry
	EventEnd

	// EventSelect signals an entity was selected | Entity: selected ref
	EventSelect

	// EventDeselect signals the selection was cleared | Entity: previous ref
	EventDeselect

	eventTypeCount
)

var typeNames = [...]string{
	EventUpdate:   "update",
	EventPlay:     "play",
	EventPause:    "pause",
	EventEnd:      "end",
	EventSelect:   "select",
	EventDeselect: "deselect",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return typeNames[t]
}

// AllTypes returns every event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for t := EventUpdate; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Event is one notification with the position at which it fired
type Event struct {
	Type    EventType
	Frame   int
	SubTime float64
	Entity  replay.EntityRef // select/deselect only
}
