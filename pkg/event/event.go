// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Gameplay event types
const (
	LifeLost         Type = "life_lost"
	LifeGained       Type = "life_gained"
	PlayerRespawned  Type = "player_respawned"
	PlayerDestroyed  Type = "player_destroyed"
	GameOver         Type = "game_over"
	ExplosionSpawned Type = "explosion_spawned"
	ProjectileFired  Type = "projectile_fired"
	EnemySpawned     Type = "enemy_spawned"
	EnemyDestroyed   Type = "enemy_destroyed"
	EntityCollision  Type = "entity_collision"
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a handler registration for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a handler registration. It reports whether one was removed.
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers. A nil bus drops the event.
func (b *Bus) Publish(event Event) {
	if b == nil || event == nil {
		return
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.GetType()]))
	copy(subs, b.handlers[event.GetType()])
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}

// PlayerEvent carries the player's state at the time of a lives transition
type PlayerEvent struct {
	BaseEvent
	Lives     int
	HitPoints float64
	X, Y      float64
}

// NewPlayerEvent creates a new player event
func NewPlayerEvent(eventType Type, source interface{}, lives int, hitPoints, x, y float64) *PlayerEvent {
	return &PlayerEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Lives:     lives,
		HitPoints: hitPoints,
		X:         x,
		Y:         y,
	}
}

// EntityEvent references a single game object by ID and position
type EntityEvent struct {
	BaseEvent
	EntityID uint64
	X, Y     float64
}

// NewEntityEvent creates a new entity event
func NewEntityEvent(eventType Type, source interface{}, entityID uint64, x, y float64) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		X:        x,
		Y:        y,
	}
}

// CollisionEvent contains information about entity collisions
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: EntityCollision,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
	}
}
