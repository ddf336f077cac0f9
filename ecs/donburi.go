package ecs

import (
	"github.com/phanxgames/truenetwork"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for page interaction events.
var InteractionEventType = events.NewEventType[truenetwork.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) truenetwork.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event truenetwork.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// TallyData counts the interactions one element has received.
type TallyData struct {
	Name   string
	Counts map[truenetwork.EventType]int
}

// Tally is the component holding a TallyData.
var Tally = donburi.NewComponentType[TallyData]()

// InteractionTally keeps one entity per element name and counts the events
// delivered to it. Page-level events without an element are counted under
// the empty name.
type InteractionTally struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewInteractionTally subscribes a tally to InteractionEventType in world.
func NewInteractionTally(world donburi.World) *InteractionTally {
	t := &InteractionTally{world: world, entities: make(map[string]donburi.Entity)}
	InteractionEventType.Subscribe(world, t.record)
	return t
}

func (t *InteractionTally) record(w donburi.World, e truenetwork.InteractionEvent) {
	ent, ok := t.entities[e.ElementName]
	if !ok {
		ent = w.Create(Tally)
		Tally.SetValue(w.Entry(ent), TallyData{
			Name:   e.ElementName,
			Counts: make(map[truenetwork.EventType]int),
		})
		t.entities[e.ElementName] = ent
	}
	Tally.Get(w.Entry(ent)).Counts[e.Type]++
}

// Count returns how many events of type typ name has received.
func (t *InteractionTally) Count(name string, typ truenetwork.EventType) int {
	ent, ok := t.entities[name]
	if !ok {
		return 0
	}
	return Tally.Get(t.world.Entry(ent)).Counts[typ]
}

var tallyQuery = donburi.NewQuery(filter.Contains(Tally))

// Len returns the number of tallied elements.
func (t *InteractionTally) Len() int {
	return tallyQuery.Count(t.world)
}
