package game

import "github.com/plus3/blockfall/piece"

// EventType classifies session notifications.
type EventType int

const (
	EventSpawned EventType = iota + 1
	EventLocked
	EventCleared
	EventGameOver
	EventRestarted
)

func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventCleared:
		return "cleared"
	case EventGameOver:
		return "game over"
	case EventRestarted:
		return "restarted"
	}
	return "unknown"
}

// Event describes a state transition. Kind is the piece involved, Rows the
// number of rows cleared by a lock and Score the score after the transition.
type Event struct {
	Type  EventType
	Kind  piece.Kind
	Rows  int
	Score int
}

// Listener receives events synchronously on the session's goroutine.
type Listener func(Event)
