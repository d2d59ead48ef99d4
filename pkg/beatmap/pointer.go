package beatmap

import "io"

// PointerSize is the encoded size of a Pointer in bytes.
const PointerSize = 12

// Pointer references another serialized asset by file index and path id.
type Pointer struct {
	FileID int32 `json:"FileID"`
	PathID int64 `json:"PathID"`
}

// ReadPointer reads a Pointer from r.
func ReadPointer(r io.Reader) (Pointer, error) {
	fr := newFieldReader(r)
	p := fr.pointer("Pointer")
	return p, fr.err
}

// Write encodes p to w.
func (p Pointer) Write(w io.Writer) error {
	fw := newFieldWriter(w, PadLegacy)
	fw.pointer("Pointer", p)
	return fw.err
}

// IsNull reports whether p references nothing.
func (p Pointer) IsNull() bool {
	return p.FileID == 0 && p.PathID == 0
}

// UnmarshalJSON decodes a Pointer, rejecting documents with missing fields.
func (p *Pointer) UnmarshalJSON(data []byte) error {
	var v Pointer
	err := decodeFields(data, []field{
		{"FileID", &v.FileID},
		{"PathID", &v.PathID},
	})
	if err != nil {
		return err
	}
	*p = v
	return nil
}
