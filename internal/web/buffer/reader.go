package buffer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Reader is a bounds-checked little-endian cursor over a byte slice.
type Reader struct {
	data []byte
	off  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.off
}

func (r *Reader) Offset() int {
	return r.off
}

// Rest returns the unread bytes and moves the cursor to the end.
func (r *Reader) Rest() []byte {
	rest := r.data[r.off:]
	r.off = len(r.data)
	return rest
}

func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.off, r.Len())
	}

	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err //nolint:gosec // two's complement reinterpretation
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// CString reads up to and including the next NUL byte and returns the string without it.
func (r *Reader) CString() (string, error) {
	idx := bytes.IndexByte(r.data[r.off:], 0)
	if idx < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", ErrTruncated, r.off)
	}

	s := string(r.data[r.off : r.off+idx])
	r.off += idx + 1
	return s, nil
}

// Struct decodes a fixed-layout record at the cursor.
func (r *Reader) Struct(v any) error {
	size := binary.Size(v)
	if size < 0 {
		return fmt.Errorf("record %T has no fixed size", v)
	}

	b, err := r.Bytes(size)
	if err != nil {
		return err
	}

	if _, err = binary.Decode(b, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	return nil
}
