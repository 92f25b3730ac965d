package events

import (
	"testing"

	"github.com/lixenwraith/haliteviz/replay"
)

type countingHandler struct {
	types []EventType
	got   []Event
}

func (h *countingHandler) HandleEvent(ev Event)    { h.got = append(h.got, ev) }
func (h *countingHandler) EventTypes() []EventType { return h.types }

func TestBus_RoutesByType(t *testing.T) {
	bus := NewBus()
	play := &countingHandler{types: []EventType{EventPlay}}
	both := &countingHandler{types: []EventType{EventPlay, EventPause}}
	bus.Subscribe(play)
	bus.Subscribe(both)

	bus.Publish(Event{Type: EventPlay})
	bus.Publish(Event{Type: EventPause})
	bus.Publish(Event{Type: EventEnd})

	if len(play.got) != 1 {
		t.Errorf("Expected 1 play event, got %d", len(play.got))
	}
	if len(both.got) != 2 {
		t.Errorf("Expected 2 events, got %d", len(both.got))
	}
	if bus.HandlerCount(EventPlay) != 2 || bus.HandlerCount(EventEnd) != 0 {
		t.Errorf("Unexpected handler counts: play=%d end=%d",
			bus.HandlerCount(EventPlay), bus.HandlerCount(EventEnd))
	}
}

func TestBus_SubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []int
	for i := 0; i < 3; i++ {
		bus.SubscribeFunc(func(Event) { order = append(order, i) }, EventUpdate)
	}

	bus.Publish(Event{Type: EventUpdate})

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("Expected [0 1 2], got %v", order)
	}
}

func TestBus_SubscribeFuncAllTypes(t *testing.T) {
	bus := NewBus()
	var got []EventType
	bus.SubscribeFunc(func(ev Event) { got = append(got, ev.Type) })

	for _, typ := range AllTypes() {
		bus.Publish(Event{Type: typ})
	}

	if len(got) != len(AllTypes()) {
		t.Errorf("Expected %d events, got %v", len(AllTypes()), got)
	}
}

func TestBus_PayloadDelivered(t *testing.T) {
	bus := NewBus()
	var got Event
	bus.SubscribeFunc(func(ev Event) { got = ev }, EventSelect)

	ref := replay.ShipRef(2, 7)
	bus.Publish(Event{Type: EventSelect, Frame: 5, SubTime: 0.25, Entity: ref})

	if got.Entity != ref || got.Frame != 5 || got.SubTime != 0.25 {
		t.Errorf("Expected payload preserved, got %+v", got)
	}
}

func TestEventType_String(t *testing.T) {
	if EventDeselect.String() != "deselect" {
		t.Errorf("Expected deselect, got %s", EventDeselect)
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", EventType(99))
	}
}
