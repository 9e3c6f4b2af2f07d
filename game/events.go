package game

import "github.com/go-gl/mathgl/mgl64"

// EventType names something that happened during a frame
type EventType string

const (
	BulletFired      EventType = "BulletFired"
	ArrowFired       EventType = "ArrowFired"
	EnemyDestroyed   EventType = "EnemyDestroyed"
	PowerUpCollected EventType = "PowerUpCollected"
	ShieldBroken     EventType = "ShieldBroken"
	Frozen           EventType = "Frozen"
	EffectExpired    EventType = "EffectExpired"
	GameLost         EventType = "GameLost"
	GameWon          EventType = "GameWon"
)

// AllEventTypes lists every event the simulation publishes
var AllEventTypes = []EventType{
	BulletFired, ArrowFired, EnemyDestroyed, PowerUpCollected,
	ShieldBroken, Frozen, EffectExpired, GameLost, GameWon,
}

// Event carries what happened, to what, where and when
type Event struct {
	Type     EventType
	Kind     Kind
	Position mgl64.Vec3
	Time     float64
	Detail   string
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers synchronously
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllEventTypes {
		d.Subscribe(t, listener)
	}
}

// Dispatch sends an event to its subscribers in subscription order
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
