// Package ecs provides ECS adapters for easel.
package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for easel editor events.
// Subscribe to this in your ECS systems to receive selection, arrange, and
// handle-pick events.
var EditorEventType = events.NewEventType[easel.EditorEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Editor
// events are published to EditorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) easel.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event easel.EditorEvent) {
	EditorEventType.Publish(s.world, event)
}
