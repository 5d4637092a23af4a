package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("buffer: length mismatch")
	ErrLengthTooShort = errors.New("buffer: length too short")
	ErrTruncated      = errors.New("buffer: truncated data")
)

// ReadExact decodes data into v after checking that data is exactly size bytes long.
func ReadExact(data []byte, size int, v any) error {
	if len(data) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(data), size)
	}

	if _, err := binary.Decode(data, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	return nil
}

// ReadAtLeast decodes the fixed prefix of data into v and returns whatever follows it.
// The returned tail aliases data.
func ReadAtLeast(data []byte, size int, v any) ([]byte, error) {
	if len(data) < size {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrLengthTooShort, len(data), size)
	}

	if _, err := binary.Decode(data[:size], binary.LittleEndian, v); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	return data[size:], nil
}

// Encode serializes a fixed-layout record.
func Encode(v any) ([]byte, error) {
	data, err := binary.Append(nil, binary.LittleEndian, v)
	if err != nil {
		return nil, fmt.Errorf("failed to write packet: %w", err)
	}

	return data, nil
}
