package beatmap

import (
	"fmt"
	"io"
)

// DifficultySize is the encoded size of a Difficulty in bytes.
const DifficultySize = 4 + 4 + 4 + 4 + PointerSize

// Difficulty describes one playable tier of a level.
type Difficulty struct {
	Difficulty     int32   `json:"_difficulty"`
	Rank           int32   `json:"_difficultyRank"`
	NoteJumpSpeed  float32 `json:"_noteJumpMovementSpeed"`
	NoteJumpOffset int32   `json:"_noteJumpStartBeatOffset"`
	BeatmapData    Pointer `json:"_beatmapData"`
}

// DifficultyList is a counted sequence of difficulties. Size is stored on the
// wire and must equal len(Array) when writing.
type DifficultyList struct {
	Array []Difficulty `json:"Array"`
	Size  uint32       `json:"size"`
}

// NewDifficultyList returns a list holding ds with a matching size.
func NewDifficultyList(ds ...Difficulty) DifficultyList {
	return DifficultyList{Array: ds, Size: uint32(len(ds))}
}

// ReadDifficulty reads a single Difficulty record from r.
func ReadDifficulty(r io.Reader) (Difficulty, error) {
	fr := newFieldReader(r)
	d := fr.difficulty("Difficulty")
	return d, fr.err
}

// Write encodes d to w.
func (d Difficulty) Write(w io.Writer) error {
	fw := newFieldWriter(w, PadLegacy)
	fw.difficulty("Difficulty", d)
	return fw.err
}

// ReadDifficultyList reads a count followed by that many Difficulty records.
func ReadDifficultyList(r io.Reader) (DifficultyList, error) {
	fr := newFieldReader(r)
	l := fr.difficultyList("DifficultyList")
	if fr.err != nil {
		return DifficultyList{}, fr.err
	}
	return l, nil
}

// Write encodes l to w. It fails with ErrSizeMismatch before writing
// anything if Size and len(Array) disagree.
func (l DifficultyList) Write(w io.Writer) error {
	if err := l.validate(); err != nil {
		return err
	}
	fw := newFieldWriter(w, PadLegacy)
	fw.difficultyList("DifficultyList", l)
	return fw.err
}

func (l DifficultyList) validate() error {
	if int(l.Size) != len(l.Array) {
		return fmt.Errorf("%w: size %d, array %d", ErrSizeMismatch, l.Size, len(l.Array))
	}
	return nil
}

func (fr *fieldReader) difficulty(field string) Difficulty {
	return Difficulty{
		Difficulty:     fr.int32(field + "._difficulty"),
		Rank:           fr.int32(field + "._difficultyRank"),
		NoteJumpSpeed:  fr.float32(field + "._noteJumpMovementSpeed"),
		NoteJumpOffset: fr.int32(field + "._noteJumpStartBeatOffset"),
		BeatmapData:    fr.pointer(field + "._beatmapData"),
	}
}

func (fr *fieldReader) difficultyList(field string) DifficultyList {
	size := fr.uint32(field + ".size")
	if fr.err != nil {
		return DifficultyList{}
	}

	// The count comes from the stream; grow as records arrive instead of
	// trusting it for the allocation.
	l := DifficultyList{Size: size, Array: make([]Difficulty, 0, min(size, 64))}
	for i := uint32(0); i < size; i++ {
		d := fr.difficulty(fmt.Sprintf("%s.Array[%d]", field, i))
		if fr.err != nil {
			return DifficultyList{}
		}
		l.Array = append(l.Array, d)
	}
	return l
}

func (fw *fieldWriter) difficulty(field string, d Difficulty) {
	fw.int32(field+"._difficulty", d.Difficulty)
	fw.int32(field+"._difficultyRank", d.Rank)
	fw.float32(field+"._noteJumpMovementSpeed", d.NoteJumpSpeed)
	fw.int32(field+"._noteJumpStartBeatOffset", d.NoteJumpOffset)
	fw.pointer(field+"._beatmapData", d.BeatmapData)
}

func (fw *fieldWriter) difficultyList(field string, l DifficultyList) {
	if err := l.validate(); err != nil {
		fw.fail(field, err)
		return
	}
	fw.uint32(field+".size", uint32(len(l.Array)))
	for i, d := range l.Array {
		fw.difficulty(fmt.Sprintf("%s.Array[%d]", field, i), d)
	}
}

// UnmarshalJSON decodes a Difficulty, rejecting documents with missing fields.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var v Difficulty
	err := decodeFields(data, []field{
		{"_difficulty", &v.Difficulty},
		{"_difficultyRank", &v.Rank},
		{"_noteJumpMovementSpeed", &v.NoteJumpSpeed},
		{"_noteJumpStartBeatOffset", &v.NoteJumpOffset},
		{"_beatmapData", &v.BeatmapData},
	})
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalJSON decodes a DifficultyList. The size field is taken as given;
// a mismatch surfaces when the list is written.
func (l *DifficultyList) UnmarshalJSON(data []byte) error {
	var v DifficultyList
	err := decodeFields(data, []field{
		{"Array", &v.Array},
		{"size", &v.Size},
	})
	if err != nil {
		return err
	}
	*l = v
	return nil
}
