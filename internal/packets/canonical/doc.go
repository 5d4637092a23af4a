// Package canonical defines the server's internal layouts of messages that the web codec
// rewrites. Every record is encoded little-endian with no padding; the Size constants
// are the encoded widths.
package canonical

// InvalidIndex marks an unused slot or index field.
const InvalidIndex uint32 = 0xFFFFFFFF

// Tint is a packed blue/green/red/use-tint colour.
type Tint struct {
	Blue    uint8
	Green   uint8
	Red     uint8
	UseTint uint8
}

// Texture describes one equipment appearance slot.
type Texture struct {
	Material        uint32
	Unknown1        uint32
	EliteModel      uint32
	HerosForgeModel uint32
	Unknown2        uint32
}

// MaterialSlots is the number of visible equipment slots.
const MaterialSlots = 9
