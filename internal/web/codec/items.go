package codec

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

var errItemIndex = errors.New("codec: item index out of range")

// serializeItem renders the instance a SerializedItem record points at.
func (c *Codec) serializeItem(ctx context.Context, p *packets.Packet, ref canonical.SerializedItem) ([]byte, error) {
	if int(ref.Index) >= len(p.Items) {
		return nil, fmt.Errorf("%w: %d of %d", errItemIndex, ref.Index, len(p.Items))
	}

	return c.serializer.Serialize(&p.Items[ref.Index], toWeb(ctx, c, slots.Inventory, ref.SlotID))
}

func (c *Codec) encodeItemPacket(ctx context.Context, p packets.Packet) Result {
	r := buffer.NewReader(p.Data)

	header, err := r.Bytes(canonical.ItemPacketHeaderSize)
	if err != nil {
		return dropped(err)
	}

	var ref canonical.SerializedItem
	if err = r.Struct(&ref); err != nil {
		return dropped(err)
	}

	item, err := c.serializeItem(ctx, &p, ref)
	if err != nil {
		return dropped(err)
	}

	w := buffer.NewWriter(web.ItemPacketHeaderSize + len(item))
	w.Bytes(header)
	w.Bytes(item)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) encodeItemLinkResponse(ctx context.Context, p packets.Packet) Result {
	return c.forward(ctx, Encode, opcodes.ItemPacket, p)
}

// encodeCharInventory serializes every item of the inventory. Items that cannot be
// serialized are left out and the count reflects what was sent.
func (c *Codec) encodeCharInventory(ctx context.Context, p packets.Packet) Result {
	header, rest, err := readAtLeast[canonical.CharInventoryHeader](p.Data, canonical.CharInventoryHeaderSize)
	if err != nil {
		return dropped(err)
	}

	records, err := collection.Records(rest, canonical.SerializedItemSize, int(header.Count))
	if err != nil {
		return dropped(err)
	}

	w := buffer.NewWriter(web.CharInventoryHeaderSize + len(p.Data))
	w.Uint32(0)

	var sent uint32
	var lastErr error
	for _, data := range records {
		var ref canonical.SerializedItem
		if err = buffer.ReadExact(data, canonical.SerializedItemSize, &ref); err != nil {
			return dropped(err)
		}

		item, err := c.serializeItem(ctx, &p, ref)
		if err != nil {
			lastErr = err
			c.logger.Warn("item skipped", "opcode", p.Opcode.String(), "slot", ref.SlotID, "error", err)
			continue
		}

		w.Bytes(item)
		sent++
	}

	if sent == 0 && lastErr != nil {
		return dropped(lastErr)
	}

	if err = w.PutUint32At(0, sent); err != nil {
		return dropped(err)
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}
