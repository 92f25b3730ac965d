package events

// Handler receives events of the types it declares
type Handler interface {
	// HandleEvent is called synchronously from Publish
	HandleEvent(ev Event)

	// EventTypes returns the types this handler subscribes to
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler
type HandlerFunc struct {
	Fn    func(ev Event)
	Types []EventType
}

func (h HandlerFunc) HandleEvent(ev Event) {
	h.Fn(ev)
}

func (h HandlerFunc) EventTypes() []EventType {
	return h.Types
}

// Bus dispatches events to subscribed handlers
//
// Architecture:
//   - Single-threaded, synchronous dispatch
//   - Multiple handlers can subscribe to the same type
//   - Handlers are invoked in subscription order
//   - Handlers subscribing during dispatch receive the next event
type Bus struct {
	handlers map[EventType][]Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// Subscribe adds a handler for its declared event types
func (b *Bus) Subscribe(h Handler) {
	for _, t := range h.EventTypes() {
		b.handlers[t] = append(b.handlers[t], h)
	}
}

// SubscribeFunc subscribes fn to types, or to every type when none are given
func (b *Bus) SubscribeFunc(fn func(ev Event), types ...EventType) {
	if len(types) == 0 {
		types = AllTypes()
	}
	b.Subscribe(HandlerFunc{Fn: fn, Types: types})
}

// Publish delivers ev to every handler of its type
func (b *Bus) Publish(ev Event) {
	handlers := b.handlers[ev.Type]
	for _, h := range handlers {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers subscribed to t
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}
