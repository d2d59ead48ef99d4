// pkg/objects/enums.go
package objects

import "fmt"

// NoteType is the kind of a note.
type NoteType int

const (
	NoteA NoteType = iota
	NoteB
	GhostNote
	Bomb
)

var noteTypeNames = [...]string{"NoteA", "NoteB", "GhostNote", "Bomb"}

func (t NoteType) String() string {
	if t >= 0 && int(t) < len(noteTypeNames) {
		return noteTypeNames[t]
	}
	return fmt.Sprintf("NoteType(%d)", int(t))
}

func (t NoteType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(noteTypeNames) {
		return nil, fmt.Errorf("invalid note type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *NoteType) UnmarshalText(text []byte) error {
	v, err := parseName(noteTypeNames[:], string(text), "note type")
	if err != nil {
		return err
	}
	*t = NoteType(v)
	return nil
}

// NoteDirection is the cut direction of a note.
type NoteDirection int

const (
	Up NoteDirection = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	Any
	None
)

var directionNames = [...]string{"Up", "Down", "Left", "Right", "UpLeft", "UpRight", "DownLeft", "DownRight", "Any", "None"}

func (d NoteDirection) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("NoteDirection(%d)", int(d))
}

// Mirrored returns the horizontal mirror of d. Vertical and neutral
// directions map to themselves.
func (d NoteDirection) Mirrored() NoteDirection {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return UpRight
	case UpRight:
		return UpLeft
	case DownLeft:
		return DownRight
	case DownRight:
		return DownLeft
	default:
		return d
	}
}

func (d NoteDirection) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(directionNames) {
		return nil, fmt.Errorf("invalid note direction %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *NoteDirection) UnmarshalText(text []byte) error {
	v, err := parseName(directionNames[:], string(text), "note direction")
	if err != nil {
		return err
	}
	*d = NoteDirection(v)
	return nil
}

// NoteLayer is the vertical row of a note. Layers are ordered bottom to top,
// so they compare with < and >.
type NoteLayer int

const (
	Base NoteLayer = iota
	Upper
	Top
)

var layerNames = [...]string{"Base", "Upper", "Top"}

func (l NoteLayer) String() string {
	if l >= 0 && int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("NoteLayer(%d)", int(l))
}

func (l NoteLayer) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(layerNames) {
		return nil, fmt.Errorf("invalid note layer %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *NoteLayer) UnmarshalText(text []byte) error {
	v, err := parseName(layerNames[:], string(text), "note layer")
	if err != nil {
		return err
	}
	*l = NoteLayer(v)
	return nil
}

// ObstacleType is the kind of an obstacle.
type ObstacleType int

const (
	FullHeight ObstacleType = iota
	TopObstacle
)

var obstacleTypeNames = [...]string{"FullHeight", "Top"}

func (t ObstacleType) String() string {
	if t >= 0 && int(t) < len(obstacleTypeNames) {
		return obstacleTypeNames[t]
	}
	return fmt.Sprintf("ObstacleType(%d)", int(t))
}

func (t ObstacleType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(obstacleTypeNames) {
		return nil, fmt.Errorf("invalid obstacle type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ObstacleType) UnmarshalText(text []byte) error {
	v, err := parseName(obstacleTypeNames[:], string(text), "obstacle type")
	if err != nil {
		return err
	}
	*t = ObstacleType(v)
	return nil
}

func parseName(names []string, name, kind string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, name)
}
