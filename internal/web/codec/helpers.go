package codec

import (
	"context"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

type slotNumber interface {
	~int16 | ~uint16 | ~int32 | ~uint32
}

// toWeb maps a server slot through m. Slots without a web counterpart become
// slots.Invalid in the width of T.
func toWeb[T slotNumber](ctx context.Context, c *Codec, m *slots.Mapping, slot T) T {
	out, ok := m.LookupServerToWeb(int32(slot))
	if !ok {
		c.invalidSlot(ctx, m, Encode, int32(slot))
	}

	return T(out)
}

func toServer[T slotNumber](ctx context.Context, c *Codec, m *slots.Mapping, slot T) T {
	out, ok := m.LookupWebToServer(int32(slot))
	if !ok {
		c.invalidSlot(ctx, m, Decode, int32(slot))
	}

	return T(out)
}

func (c *Codec) invalidSlot(ctx context.Context, m *slots.Mapping, direction Direction, slot int32) {
	c.recorder.InvalidSlot(ctx, m.Name(), direction.String())
	c.logger.Debug("slot has no counterpart", "mapping", m.Name(), "direction", direction.String(), "slot", slot)
}

func readExact[T any](data []byte, size int) (T, error) {
	var v T
	err := buffer.ReadExact(data, size, &v)
	return v, err
}

func readAtLeast[T any](data []byte, size int) (T, []byte, error) {
	var v T
	rest, err := buffer.ReadAtLeast(data, size, &v)
	return v, rest, err
}

// record encodes v as the whole payload of a new packet.
func record(op opcodes.Opcode, v any) (packets.Packet, error) {
	data, err := buffer.Encode(v)
	if err != nil {
		return packets.Packet{}, err
	}

	return packets.Packet{Opcode: op, Data: data}, nil
}

// replaceWith is the common tail of fixed-layout transforms.
func replaceWith(op opcodes.Opcode, v any) Result {
	p, err := record(op, v)
	if err != nil {
		return dropped(err)
	}

	return replaced(p)
}

// clampRace maps races the web client cannot render to human.
func clampRace[T ~uint32 | ~int32](race T) T {
	if race > web.MaxRace {
		return 1
	}

	return race
}
