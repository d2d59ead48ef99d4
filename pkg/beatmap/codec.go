// pkg/beatmap/codec.go
package beatmap

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// fieldReader decodes little-endian primitives from a stream. The first
// failure sticks: later reads are no-ops and err reports the field that failed.
type fieldReader struct {
	r   io.Reader
	buf [8]byte
	err error
}

func newFieldReader(r io.Reader) *fieldReader {
	return &fieldReader{r: r}
}

func (fr *fieldReader) read(field string, n int) []byte {
	if fr.err != nil {
		return nil
	}
	if _, err := io.ReadFull(fr.r, fr.buf[:n]); err != nil {
		fr.err = fmt.Errorf("read %s: %w", field, err)
		return nil
	}
	return fr.buf[:n]
}

func (fr *fieldReader) uint32(field string) uint32 {
	b := fr.read(field, 4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (fr *fieldReader) int32(field string) int32 {
	return int32(fr.uint32(field))
}

func (fr *fieldReader) int64(field string) int64 {
	b := fr.read(field, 8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

func (fr *fieldReader) float32(field string) float32 {
	return math.Float32frombits(fr.uint32(field))
}

func (fr *fieldReader) string(field string) string {
	if fr.err != nil {
		return ""
	}
	s, err := ReadAlignedString(fr.r)
	if err != nil {
		fr.err = fmt.Errorf("read %s: %w", field, err)
		return ""
	}
	return s
}

func (fr *fieldReader) pointer(field string) Pointer {
	return Pointer{
		FileID: fr.int32(field + ".FileID"),
		PathID: fr.int64(field + ".PathID"),
	}
}

// fieldWriter is the encoding counterpart of fieldReader.
type fieldWriter struct {
	w       io.Writer
	padding Padding
	buf     [8]byte
	err     error
}

func newFieldWriter(w io.Writer, padding Padding) *fieldWriter {
	return &fieldWriter{w: w, padding: padding}
}

func (fw *fieldWriter) write(field string, b []byte) {
	if fw.err != nil {
		return
	}
	if _, err := fw.w.Write(b); err != nil {
		fw.err = fmt.Errorf("write %s: %w", field, err)
	}
}

func (fw *fieldWriter) uint32(field string, v uint32) {
	binary.LittleEndian.PutUint32(fw.buf[:4], v)
	fw.write(field, fw.buf[:4])
}

func (fw *fieldWriter) int32(field string, v int32) {
	fw.uint32(field, uint32(v))
}

func (fw *fieldWriter) int64(field string, v int64) {
	binary.LittleEndian.PutUint64(fw.buf[:8], uint64(v))
	fw.write(field, fw.buf[:8])
}

func (fw *fieldWriter) float32(field string, v float32) {
	fw.uint32(field, math.Float32bits(v))
}

func (fw *fieldWriter) string(field, s string) {
	if fw.err != nil {
		return
	}
	if err := WriteAlignedStringPadded(fw.w, s, fw.padding); err != nil {
		fw.err = fmt.Errorf("write %s: %w", field, err)
	}
}

func (fw *fieldWriter) pointer(field string, p Pointer) {
	fw.int32(field+".FileID", p.FileID)
	fw.int64(field+".PathID", p.PathID)
}

// fail records err for field unless an earlier failure is already held.
func (fw *fieldWriter) fail(field string, err error) {
	if fw.err == nil {
		fw.err = fmt.Errorf("write %s: %w", field, err)
	}
}
