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

func TestDecodeCastSpell(t *testing.T) {
	tests := []struct {
		name          string
		in            web.CastSpell
		wantSlot      uint32
		wantInventory uint32
	}{
		{
			name:          "gem",
			in:            web.CastSpell{Slot: 4, SpellID: 200, InventorySlot: slots.InvalidIndex},
			wantSlot:      4,
			wantInventory: slots.InvalidIndex,
		},
		{
			name:          "item click",
			in:            web.CastSpell{Slot: slots.WebCastItem, SpellID: 300, InventorySlot: 22},
			wantSlot:      slots.ServerCastItem,
			wantInventory: 23,
		},
		{
			name:          "discipline",
			in:            web.CastSpell{Slot: slots.WebCastDiscipline, SpellID: 4585, InventorySlot: slots.InvalidIndex},
			wantSlot:      slots.ServerCastDiscipline,
			wantInventory: slots.InvalidIndex,
		},
		{
			name:          "ability",
			in:            web.CastSpell{Slot: slots.WebCastAbility, InventorySlot: slots.InvalidIndex},
			wantSlot:      slots.ServerCastAbility,
			wantInventory: slots.InvalidIndex,
		},
		{
			name:          "alternate ability",
			in:            web.CastSpell{Slot: slots.CastAltAbility, InventorySlot: slots.InvalidIndex},
			wantSlot:      slots.CastAltAbility,
			wantInventory: slots.InvalidIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			c := newTestCodec(t, WithRecorder(rec))

			in := tt.in
			in.TargetID = 55
			res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.CastSpell, Data: encodeRecord(t, &in)})

			out := decodeRecord[canonical.CastSpell](t, single(t, res).Data, canonical.CastSpellSize)
			assert.Equal(t, tt.wantSlot, out.Slot)
			assert.Equal(t, tt.wantInventory, out.InventorySlot)
			assert.Equal(t, tt.in.SpellID, out.SpellID)
			assert.Equal(t, uint32(55), out.TargetID)
			assert.Empty(t, rec.invalid)
		})
	}
}

func TestEncodeMemorizeSpell(t *testing.T) {
	tests := []struct {
		name string
		in   canonical.MemorizeSpell
		want uint32
	}{
		{
			name: "scribe keeps book page",
			in:   canonical.MemorizeSpell{Slot: 300, SpellID: 5, Scribing: 0},
			want: 300,
		},
		{
			name: "spell bar gem",
			in:   canonical.MemorizeSpell{Slot: 7, SpellID: 5, Scribing: scribingSpellBar},
			want: 7,
		},
		{
			name: "spell bar gem beyond client",
			in:   canonical.MemorizeSpell{Slot: slots.ServerCastGem12, SpellID: 5, Scribing: scribingSpellBar},
			want: slots.WebCastDiscipline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec(t)

			res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.MemorizeSpell, Data: encodeRecord(t, &tt.in)})
			out := decodeRecord[web.MemorizeSpell](t, single(t, res).Data, web.MemorizeSpellSize)

			assert.Equal(t, tt.want, out.Slot)
			assert.Equal(t, tt.in.Scribing, out.Scribing)
		})
	}
}

func TestBuff(t *testing.T) {
	tests := []struct {
		name   string
		server uint32
		web    uint32
	}{
		{name: "long", server: 3, web: 3},
		{name: "short", server: 45, web: 28},
		{name: "discipline", server: 62, web: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec(t)
			ctx := context.Background()

			in := canonical.SpellBuffPacket{
				EntityID: 9,
				Buff:     canonical.SpellBuff{Level: 60, SpellID: 1447, Duration: 100, NumHits: 4},
				SlotID:   tt.server,
				BuffFade: 1,
			}

			res := c.Encode(ctx, packets.Packet{Opcode: opcodes.Buff, Data: encodeRecord(t, &in)})
			p := single(t, res)

			out := decodeRecord[web.SpellBuffPacket](t, p.Data, web.SpellBuffPacketSize)
			assert.Equal(t, tt.web, out.SlotID)
			assert.Equal(t, uint32(1447), out.Buff.SpellID)
			assert.Equal(t, int32(100), out.Buff.Duration)

			res = c.Decode(ctx, p)
			back := decodeRecord[canonical.SpellBuffPacket](t, single(t, res).Data, canonical.SpellBuffPacketSize)
			assert.Equal(t, tt.server, back.SlotID)
			assert.Zero(t, back.Buff.NumHits)
			assert.Equal(t, uint32(1), back.BuffFade)
		})
	}
}

func TestEncodeAction(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.Action{Target: 1, Source: 2, Level: 50, Type: 231, Damage: 500, Spell: 2345, SpellLevel: 50}
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.Action, Data: encodeRecord(t, &in)})

	out := decodeRecord[web.Action](t, single(t, res).Data, web.ActionSize)
	assert.Equal(t, uint16(2345), out.Spell)
	assert.Equal(t, uint8(231), out.Type)
	assert.Equal(t, uint16(50), out.Level)
}

func TestEncodeDamage(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.CombatDamage{Target: 1, Source: 2, Type: 1, Damage: -10, Force: 0.5, Special: 2}
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.Damage, Data: encodeRecord(t, &in)})

	out := decodeRecord[web.CombatDamage](t, single(t, res).Data, web.CombatDamageSize)
	assert.Equal(t, web.CombatDamage{Target: 1, Source: 2, Type: 1, Damage: -10, Force: 0.5}, out)
}

func TestEncodeManaChange(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.ManaChange{NewMana: 900, Stamina: 100, SpellID: 12, KeepCasting: 1, Slot: 3}
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.ManaChange, Data: encodeRecord(t, &in)})

	out := decodeRecord[web.ManaChange](t, single(t, res).Data, web.ManaChangeSize)
	assert.Equal(t, web.ManaChange{NewMana: 900, Stamina: 100, SpellID: 12, KeepCasting: 1}, out)
}

func TestDecodeLoadSpellSet(t *testing.T) {
	c := newTestCodec(t)

	var in web.LoadSpellSet
	for i := range in.Spells {
		in.Spells[i] = uint32(100 + i)
	}

	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.LoadSpellSet, Data: encodeRecord(t, &in)})
	out := decodeRecord[canonical.LoadSpellSet](t, single(t, res).Data, canonical.LoadSpellSetSize)

	for i := range web.SpellGems {
		assert.Equal(t, uint32(100+i), out.Spells[i])
	}
	for i := web.SpellGems; i < canonical.SpellGems; i++ {
		assert.Equal(t, canonical.InvalidIndex, out.Spells[i])
	}
}

func TestEncodePetBuffWindow(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.PetBuff{PetID: 3, BuffCount: 2}
	in.SpellIDs[4], in.TicsRemaining[4] = 278, 10
	in.SpellIDs[20], in.TicsRemaining[20] = 3, 99

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.PetBuffWindow, Data: encodeRecord(t, &in)})
	out := decodeRecord[web.PetBuff](t, single(t, res).Data, web.PetBuffSize)

	assert.Equal(t, uint32(3), out.PetID)
	assert.Equal(t, uint32(2), out.BuffCount)
	assert.Equal(t, []uint32{278, 3, 0}, out.SpellIDs[:3])
	assert.Equal(t, []int32{10, 99, 0}, out.TicsRemaining[:3])
}

func TestDecodePetCommands(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want uint32
	}{
		{name: "health report", in: 4, want: 0},
		{name: "attack", in: 7, want: 2},
		{name: "guard me follows", in: 6, want: 4},
		{name: "focus toggle", in: 19, want: 24},
		{name: "unknown passes", in: 15, want: 15},
		{name: "out of range passes", in: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec(t)

			data := encodeRecord(t, &web.PetCommand{Command: tt.in, Target: 12})
			res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.PetCommands, Data: data})

			out := decodeRecord[canonical.PetCommand](t, single(t, res).Data, canonical.PetCommandSize)
			require.Equal(t, tt.want, out.Command)
			assert.Equal(t, uint32(12), out.Target)
		})
	}
}
