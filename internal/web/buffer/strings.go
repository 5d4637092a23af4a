package buffer

import "bytes"

// FixedString returns the contents of a NUL-padded fixed-width field.
func FixedString(b []byte) string {
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		return string(b[:idx])
	}

	return string(b)
}

// PutFixedString copies s into dst, truncating so that dst always ends up NUL terminated.
func PutFixedString(dst []byte, s string) {
	if len(dst) == 0 {
		return
	}

	n := copy(dst[:len(dst)-1], s)
	clear(dst[n:])
}

// CopyFixed copies one fixed-width string field into another of possibly different width.
func CopyFixed(dst, src []byte) {
	PutFixedString(dst, FixedString(src))
}
