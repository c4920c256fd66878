// Package ecs provides ECS adapters for strum's editor event system.
//
// The primary adapter is [NewDonburiStore], which bridges strum editor
// events (placements, deletions, tool changes) into a [Donburi] world as
// typed events. Subscribe to [EditorEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	composer.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
