package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func TestEncodeMoveItem(t *testing.T) {
	tests := []struct {
		name     string
		from, to uint32
		wantFrom uint32
		wantTo   uint32
		invalid  int
	}{
		{"worn to worn", 3, 20, 3, 20, 0},
		{"ammo to general", 22, 23, 21, 22, 0},
		{"cursor to bag", 33, 251, 30, 251, 0},
		{"power source", 21, 23, uint32(0xFFFFFFFF), 22, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			c := newTestCodec(t, WithRecorder(rec))

			data := encodeRecord(t, &canonical.MoveItem{FromSlot: tt.from, ToSlot: tt.to, NumberInStack: 5})
			res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.MoveItem, Data: data})
			require.Equal(t, Replaced, res.Outcome)

			out := decodeRecord[web.MoveItem](t, single(t, res).Data, web.MoveItemSize)
			assert.Equal(t, tt.wantFrom, out.FromSlot)
			assert.Equal(t, tt.wantTo, out.ToSlot)
			assert.Equal(t, uint32(5), out.NumberInStack)
			assert.Len(t, rec.invalid, tt.invalid)
		})
	}
}

func TestMoveItemRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	for _, slot := range []uint32{0, 20, 22, 23, 30, 33, 255, 351, 2000, 2031, 3000, 4000} {
		data := encodeRecord(t, &canonical.MoveItem{FromSlot: slot, ToSlot: slot})

		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.MoveItem, Data: data})
		res = c.Decode(ctx, single(t, res))

		out := decodeRecord[canonical.MoveItem](t, single(t, res).Data, canonical.MoveItemSize)
		assert.Equal(t, slot, out.FromSlot, "slot %d", slot)
		assert.Equal(t, slot, out.ToSlot, "slot %d", slot)
	}
}

func TestDeleteChargeForwardsToMoveItem(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestCodec(t, WithRecorder(rec))

	data := encodeRecord(t, &canonical.MoveItem{FromSlot: 22, ToSlot: 0xFFFFFFFF, NumberInStack: 1})
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.DeleteCharge, Data: data})

	assert.Equal(t, Forwarded, res.Outcome)
	p := single(t, res)
	assert.Equal(t, opcodes.DeleteCharge, p.Opcode)

	out := decodeRecord[web.MoveItem](t, p.Data, web.MoveItemSize)
	assert.Equal(t, uint32(slots.WebSlotAmmo), out.FromSlot)

	require.Len(t, rec.packets, 1)
	assert.Equal(t, "forwarded", rec.packets[0].outcome)
}

func TestEncodeLootItemUsesCorpseSlots(t *testing.T) {
	c := newTestCodec(t)

	data := encodeRecord(t, &canonical.LootingItem{Lootee: 7, Looter: 8, SlotID: 23, AutoLoot: 1})
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.LootItem, Data: data})

	out := decodeRecord[web.LootingItem](t, single(t, res).Data, web.LootingItemSize)
	assert.Equal(t, uint16(slots.WebSlotGeneral1), out.SlotID)
	assert.Equal(t, uint32(7), out.Lootee)
	assert.Equal(t, int32(1), out.AutoLoot)

	// Worn slots are never on a corpse.
	data = encodeRecord(t, &canonical.LootingItem{SlotID: 2})
	res = c.Encode(context.Background(), packets.Packet{Opcode: opcodes.LootItem, Data: data})
	out = decodeRecord[web.LootingItem](t, single(t, res).Data, web.LootingItemSize)
	assert.Equal(t, uint16(0xFFFF), out.SlotID)
}

func TestDecodeConsume(t *testing.T) {
	c := newTestCodec(t)

	data := encodeRecord(t, &web.Consume{Slot: 29, AutoConsumed: 1, Type: 2})
	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.Consume, Data: data})

	out := decodeRecord[canonical.Consume](t, single(t, res).Data, canonical.ConsumeSize)
	assert.Equal(t, uint32(slots.ServerSlotGeneral8), out.Slot)
	assert.Equal(t, uint8(2), out.Type)
}

func TestDecodeAugmentItem(t *testing.T) {
	c := newTestCodec(t)

	data := encodeRecord(t, &web.AugmentItem{ContainerSlot: 30, AugmentSlot: 2})
	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.AugmentItem, Data: data})

	out := decodeRecord[canonical.AugmentItem](t, single(t, res).Data, canonical.AugmentItemSize)
	assert.Equal(t, int16(slots.ServerSlotCursor), out.ContainerSlot)
	assert.Equal(t, int32(2), out.AugmentSlot)
}

func TestInspectAnswer(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	var in canonical.InspectResponse
	in.TargetID = 4
	for i := range in.ItemIcons {
		in.ItemIcons[i] = uint32(1000 + i)
		copy(in.ItemNames[i][:], "item")
	}
	copy(in.Text[:], "hello")

	res := c.Encode(ctx, packets.Packet{Opcode: opcodes.InspectAnswer, Data: encodeRecord(t, &in)})
	out := decodeRecord[web.InspectResponse](t, single(t, res).Data, web.InspectResponseSize)

	assert.Equal(t, uint32(4), out.TargetID)
	assert.Equal(t, uint32(1000), out.ItemIcons[0])
	assert.Equal(t, uint32(1020), out.ItemIcons[20])
	assert.Equal(t, uint32(1022), out.ItemIcons[web.InspectAmmo])
	assert.Equal(t, in.Text, out.Text)

	res = c.Decode(ctx, single(t, res))
	back := decodeRecord[canonical.InspectResponse](t, single(t, res).Data, canonical.InspectResponseSize)
	assert.Equal(t, uint32(1022), back.ItemIcons[slots.ServerSlotAmmo])
	assert.Equal(t, canonical.InvalidIndex, back.ItemIcons[slots.ServerSlotPowerSource])
	assert.Equal(t, uint32(1005), back.ItemIcons[5])
}

func TestDecodeTradeSkillCombine(t *testing.T) {
	c := newTestCodec(t)

	data := encodeRecord(t, &web.NewCombine{ContainerSlot: 22, GuildTributeSlot: -1})
	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.TradeSkillCombine, Data: data})

	out := decodeRecord[canonical.NewCombine](t, single(t, res).Data, canonical.NewCombineSize)
	assert.Equal(t, int16(slots.ServerSlotGeneral1), out.ContainerSlot)
	assert.Equal(t, int16(-1), out.GuildTributeSlot)
}
