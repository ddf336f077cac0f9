// Package ecs bridges truenetwork page interactions into a [Donburi] world.
//
// [NewDonburiStore] publishes every click, scroll, resize, submit and input
// event as an [InteractionEventType] event. Subscribe to it from your ECS
// systems, or attach an [InteractionTally] to count events per element:
//
//	world := donburi.NewWorld()
//	page.SetEntityStore(ecs.NewDonburiStore(world))
//	tally := ecs.NewInteractionTally(world)
//	// each frame:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
