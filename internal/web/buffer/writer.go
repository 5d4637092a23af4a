package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Writer is a growable little-endian output buffer.
type Writer struct {
	buf []byte
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// Data returns the written bytes. The writer must not be used afterwards.
func (w *Writer) Data() []byte {
	return w.buf
}

func (w *Writer) Bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *Writer) String(s string) {
	w.buf = append(w.buf, s...)
}

// CString writes s followed by a NUL byte.
func (w *Writer) CString(s string) {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
}

func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v)) //nolint:gosec // two's complement reinterpretation
}

func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (w *Writer) Uint16BE(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32BE(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// PutUint32At overwrites four already-written bytes at off.
func (w *Writer) PutUint32At(off int, v uint32) error {
	if off < 0 || off+4 > len(w.buf) {
		return fmt.Errorf("%w: cannot patch offset %d of %d bytes", ErrTruncated, off, len(w.buf))
	}

	binary.LittleEndian.PutUint32(w.buf[off:], v)
	return nil
}

// Struct appends a fixed-layout record.
func (w *Writer) Struct(v any) error {
	var err error

	w.buf, err = binary.Append(w.buf, binary.LittleEndian, v)
	if err != nil {
		return fmt.Errorf("failed to write packet: %w", err)
	}

	return nil
}
