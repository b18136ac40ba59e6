package ecs

import "github.com/milk9111/colormaze/levels"

// EventType names a round event.
type EventType string

const (
	EventRoundStarted    EventType = "round_started"
	EventPickupCollected EventType = "pickup_collected"
	EventRoundWon        EventType = "round_won"
	EventRoundReset      EventType = "round_reset"
	EventReturnedToStart EventType = "returned_to_start"
	EventRoundAbandoned  EventType = "round_abandoned"
)

// Event is a round event payload.
type Event struct {
	Type EventType
	Data any
}

// RoundEvent describes the round an event belongs to.
type RoundEvent struct {
	Color levels.Color
	Total int
}

// PickupEvent is sent with EventPickupCollected.
type PickupEvent struct {
	ID        string
	Collected int
	Total     int
}

// EventQueue is a simple FIFO queue. Events stay queued until drained.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
