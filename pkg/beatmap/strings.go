package beatmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// Padding selects how WriteAlignedStringPadded fills the bytes after a string.
type Padding int

const (
	// PadLegacy always writes 4 - len%4 zero bytes, so a string whose length is
	// a multiple of 4 gets a full 4 byte pad. Existing files were written this way.
	PadLegacy Padding = iota
	// PadAligned writes (4 - len%4) % 4 zero bytes, which is what
	// ReadAlignedString skips.
	PadAligned
)

// String returns the config name of the padding mode.
func (p Padding) String() string {
	switch p {
	case PadLegacy:
		return "legacy"
	case PadAligned:
		return "aligned"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// ParsePadding maps a config name to a Padding mode.
func ParsePadding(name string) (Padding, error) {
	switch name {
	case "", "legacy":
		return PadLegacy, nil
	case "aligned":
		return PadAligned, nil
	default:
		return PadLegacy, fmt.Errorf("unknown padding mode %q", name)
	}
}

var zeroPad [4]byte

// padLen returns the number of padding bytes written after a string of n bytes.
func (p Padding) padLen(n int) int {
	if p == PadAligned {
		return (4 - n%4) % 4
	}
	return 4 - n%4
}

// WriteAlignedString writes s as a little-endian u32 byte length, the raw
// bytes and legacy padding.
func WriteAlignedString(w io.Writer, s string) error {
	return WriteAlignedStringPadded(w, s, PadLegacy)
}

// WriteAlignedStringPadded writes s like WriteAlignedString using the given
// padding mode.
func WriteAlignedStringPadded(w io.Writer, s string, padding Padding) error {
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(s)))
	if _, err := w.Write(length[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	_, err := w.Write(zeroPad[:padding.padLen(len(s))])
	return err
}

// ReadAlignedString reads a string written by WriteAlignedString.
// After the payload it skips (4 - length) % 4 bytes; errors while skipping are
// ignored, as the payload is already complete.
func ReadAlignedString(r io.Reader) (string, error) {
	var length [4]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return "", err
	}
	n := binary.LittleEndian.Uint32(length[:])

	// Read incrementally so a bogus length cannot force a huge allocation
	// before the stream runs dry.
	var buf bytes.Buffer
	buf.Grow(int(min(n, 1<<16)))
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}

	var pad [4]byte
	_, _ = io.ReadFull(r, pad[:(4-n)%4])

	if !utf8.Valid(buf.Bytes()) {
		return "", ErrInvalidData
	}
	return buf.String(), nil
}
