package objects

import "fmt"

// EventType identifies a lighting or environment event. VoidEvent is the
// sentinel kind.
type EventType int32

const (
	Event0 EventType = iota
	Event1
	Event2
	Event3
	Event4
	Event5
	Event6
	Event7
	Event8
	Event9
	Event10
	Event11
	Event12
	Event13
	Event14
	Event15

	VoidEvent EventType = -1
)

// Valid reports whether t is one of the defined event kinds.
func (t EventType) Valid() bool {
	return t == VoidEvent || (t >= Event0 && t <= Event15)
}

func (t EventType) String() string {
	switch {
	case t == VoidEvent:
		return "VoidEvent"
	case t.Valid():
		return fmt.Sprintf("Event%d", int32(t))
	default:
		return fmt.Sprintf("EventType(%d)", int32(t))
	}
}

// EventData is a timed event with an integer payload.
type EventData struct {
	Type  EventType `json:"type"`
	Time  float32   `json:"time"`
	Value int32     `json:"value"`
}
