// Package collection converts between counted record arrays and the web client's
// chained record lists.
package collection

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// NextFieldSize is the width of the trailing "next" offset in a linked record.
const NextFieldSize = 4

var ErrMalformedCount = errors.New("collection: malformed record count")

// Count returns how many recordSize records data holds. data must be an exact multiple.
func Count(data []byte, recordSize int) (int, error) {
	if recordSize <= 0 {
		return 0, fmt.Errorf("%w: record size %d", ErrMalformedCount, recordSize)
	}

	if len(data)%recordSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrMalformedCount, len(data), recordSize)
	}

	return len(data) / recordSize, nil
}

// Records splits data into exactly count records of recordSize bytes, ignoring any trailing bytes.
func Records(data []byte, recordSize, count int) ([][]byte, error) {
	if count < 0 || recordSize <= 0 || count > len(data)/recordSize {
		return nil, fmt.Errorf("%w: %d records of %d bytes in %d bytes", ErrMalformedCount, count, recordSize, len(data))
	}

	records := make([][]byte, count)
	for i := range records {
		records[i] = data[i*recordSize : (i+1)*recordSize]
	}

	return records, nil
}

// PackLinked concatenates records and chains them: the last NextFieldSize bytes of every
// record are overwritten with the absolute offset of the following record, or zero for the
// last one. base is the number of bytes that will precede the first record on the wire.
func PackLinked(records [][]byte, base int) []byte {
	total := 0
	for _, r := range records {
		total += len(r)
	}

	out := make([]byte, 0, total)
	offset := base
	for i, r := range records {
		start := len(out)
		out = append(out, r...)
		offset += len(r)

		next := uint32(0)
		if i < len(records)-1 {
			next = uint32(offset) //nolint:gosec // packet sizes are far below 4GiB
		}
		binary.LittleEndian.PutUint32(out[start+len(r)-NextFieldSize:], next)
	}

	return out
}

// UnpackLinked follows a chain of fixed-size records starting at data[0]. base is the wire
// offset of data[0]. Every link must point at the record immediately after the current one.
func UnpackLinked(data []byte, base, recordSize int) ([][]byte, error) {
	if recordSize < NextFieldSize {
		return nil, fmt.Errorf("%w: record size %d", ErrMalformedCount, recordSize)
	}

	var records [][]byte
	for off := 0; ; off += recordSize {
		if off+recordSize > len(data) {
			return nil, fmt.Errorf("%w: record at offset %d overruns %d bytes", ErrMalformedCount, base+off, len(data))
		}

		record := data[off : off+recordSize]
		records = append(records, record)

		next := binary.LittleEndian.Uint32(record[recordSize-NextFieldSize:])
		if next == 0 {
			return records, nil
		}

		if int64(next) != int64(base+off+recordSize) {
			return nil, fmt.Errorf("%w: record at offset %d links to %d", ErrMalformedCount, base+off, next)
		}
	}
}

// Strings reads count consecutive NUL-terminated strings from data.
func Strings(data []byte, count int) ([]string, []byte, error) {
	out := make([]string, 0, count)
	for range count {
		idx := bytes.IndexByte(data, 0)
		if idx < 0 {
			return nil, nil, fmt.Errorf("%w: found %d of %d strings", ErrMalformedCount, len(out), count)
		}

		out = append(out, string(data[:idx]))
		data = data[idx+1:]
	}

	return out, data, nil
}
