// Package ecs provides ECS adapters for strum.
package ecs

import (
	"github.com/strumkit/strum"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for strum editor events.
// Subscribe to this in your ECS systems to react to placements, deletions,
// and tool changes.
var EditorEventType = events.NewEventType[strum.EditorEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Editor events are published to EditorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) strum.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event strum.EditorEvent) {
	EditorEventType.Publish(s.world, event)
}
