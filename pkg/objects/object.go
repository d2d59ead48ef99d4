// Package objects models the playable content of a level: notes, long notes,
// obstacles and events, and the transforms that mirror them left to right.
package objects

import "fmt"

// Kind names the variant held by an Object.
type Kind int

const (
	KindInvalid Kind = iota
	KindNote
	KindLongNote
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "Note"
	case KindLongNote:
		return "LongNote"
	case KindObstacle:
		return "Obstacle"
	default:
		return "Invalid"
	}
}

// Object is a tagged union over Note, LongNote and Obstacle. The zero Object
// holds no variant; its accessors panic.
type Object struct {
	kind     Kind
	note     NoteData
	obstacle ObstacleData
}

// NewNote wraps n as a Note.
func NewNote(n NoteData) Object {
	return Object{kind: KindNote, note: n}
}

// NewLongNote wraps n as a LongNote.
func NewLongNote(n NoteData) Object {
	return Object{kind: KindLongNote, note: n}
}

// NewObstacle wraps o as an Obstacle.
func NewObstacle(o ObstacleData) Object {
	return Object{kind: KindObstacle, obstacle: o}
}

// Kind returns the variant held by o.
func (o Object) Kind() Kind {
	return o.kind
}

// Note returns the note data of a Note or LongNote.
func (o Object) Note() (NoteData, bool) {
	switch o.kind {
	case KindNote, KindLongNote:
		return o.note, true
	case KindObstacle, KindInvalid:
		return NoteData{}, false
	}
	panic(o.badKind())
}

// Obstacle returns the obstacle data of an Obstacle.
func (o Object) Obstacle() (ObstacleData, bool) {
	switch o.kind {
	case KindObstacle:
		return o.obstacle, true
	case KindNote, KindLongNote, KindInvalid:
		return ObstacleData{}, false
	}
	panic(o.badKind())
}

func (o Object) Index() int32 {
	switch o.kind {
	case KindNote, KindLongNote:
		return o.note.Index
	case KindObstacle:
		return o.obstacle.Index
	}
	panic(o.badKind())
}

func (o *Object) SetIndex(index int32) {
	switch o.kind {
	case KindNote, KindLongNote:
		o.note.Index = index
	case KindObstacle:
		o.obstacle.Index = index
	default:
		panic(o.badKind())
	}
}

func (o Object) ID() int32 {
	switch o.kind {
	case KindNote, KindLongNote:
		return o.note.ID
	case KindObstacle:
		return o.obstacle.ID
	}
	panic(o.badKind())
}

func (o *Object) SetID(id int32) {
	switch o.kind {
	case KindNote, KindLongNote:
		o.note.ID = id
	case KindObstacle:
		o.obstacle.ID = id
	default:
		panic(o.badKind())
	}
}

func (o Object) Time() float32 {
	switch o.kind {
	case KindNote, KindLongNote:
		return o.note.Time
	case KindObstacle:
		return o.obstacle.Time
	}
	panic(o.badKind())
}

func (o *Object) SetTime(time float32) {
	switch o.kind {
	case KindNote, KindLongNote:
		o.note.Time = time
	case KindObstacle:
		o.obstacle.Time = time
	default:
		panic(o.badKind())
	}
}

// Mirrored returns a copy of o with its lane reflected across lanes lanes.
// Only the index changes; see MirrorObject for a full flip.
func (o Object) Mirrored(lanes int32) Object {
	o.SetIndex(lanes - 1 - o.Index())
	return o
}

func (o Object) badKind() error {
	return fmt.Errorf("objects: invalid object kind %d", int(o.kind))
}
