// Package web defines the wire layouts of the web client. Records are little-endian with
// no padding; the Size constants are the encoded widths. Records that end in Next are
// chained on the wire with an absolute offset to the following record.
package web

type Tint struct {
	Blue    uint8
	Green   uint8
	Red     uint8
	UseTint uint8
}

// MaterialSlots is the number of visible equipment slots.
const MaterialSlots = 9
