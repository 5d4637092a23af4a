package opcodes

// Manager maps opcodes to the numbers used on the wire.
type Manager interface {
	EmuToWire(op Opcode) uint16
	WireToEmu(wire uint16) Opcode
}

// PassthroughManager uses the opcode value itself as the wire number.
type PassthroughManager struct{}

func (PassthroughManager) EmuToWire(op Opcode) uint16 {
	return uint16(op)
}

func (PassthroughManager) WireToEmu(wire uint16) Opcode {
	return Opcode(wire)
}

// Signature identifies a client profile from the first packet of a stream.
type Signature struct {
	FirstOpcode Opcode
	FirstLength int
}

// WebSignature is the opening packet sent by the web client.
var WebSignature = Signature{FirstOpcode: WebInitiateConnection, FirstLength: 1}

func (s Signature) Matches(op Opcode, length int) bool {
	return op == s.FirstOpcode && length == s.FirstLength
}
