package easel

// EventType discriminates editor events.
type EventType int

const (
	// EventSelectionChanged fires after the selection set changes.
	EventSelectionChanged EventType = iota + 1
	// EventArrangeApplied fires after Arrange results are applied.
	EventArrangeApplied
	// EventHandlePick fires when a control handle is picked.
	EventHandlePick
)

// EditorEvent carries event data for subscribers and the ECS bridge. Only the
// fields matching Type are valid.
type EditorEvent struct {
	Type EventType
	// Selection fields (valid for EventSelectionChanged)
	Selected []uint64
	// Arrange fields (valid for EventArrangeApplied)
	Placements []Placement
	// Pick fields (valid for EventHandlePick)
	Hit Hit
}

// EventStore is the interface for optional ECS integration. When set on an
// EventBus, published events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event EditorEvent)
}

type subscriber struct {
	id int
	fn func(EditorEvent)
}

// EventBus delivers editor events to scoped subscriptions. Subscribers for a
// type are called in subscription order. Not safe for concurrent use; it is
// meant to live on the frame loop like everything else here.
type EventBus struct {
	nextID int
	subs   map[EventType][]subscriber
	store  EventStore
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[EventType][]subscriber)}
}

// SetEventStore forwards every published event to store as well. Pass nil to
// detach.
func (b *EventBus) SetEventStore(store EventStore) {
	b.store = store
}

// Subscribe registers fn for events of type t and returns a handle that
// cancels exactly this registration. The subscription stays live until
// Cancel is called; nothing is tied to any component or entity lifecycle.
func (b *EventBus) Subscribe(t EventType, fn func(EditorEvent)) Subscription {
	b.nextID++
	b.subs[t] = append(b.subs[t], subscriber{id: b.nextID, fn: fn})
	return Subscription{bus: b, event: t, id: b.nextID}
}

// Publish delivers the event to all live subscribers of its type, then to
// the attached EventStore if any.
func (b *EventBus) Publish(e EditorEvent) {
	for _, s := range b.subs[e.Type] {
		s.fn(e)
	}
	if b.store != nil {
		b.store.EmitEvent(e)
	}
}

// Subscription is a handle to one EventBus registration.
type Subscription struct {
	bus   *EventBus
	event EventType
	id    int
}

// Cancel removes the registration. Safe to call more than once; later calls
// are no-ops.
func (s Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	subs := s.bus.subs[s.event]
	for i, sub := range subs {
		if sub.id == s.id {
			s.bus.subs[s.event] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}
