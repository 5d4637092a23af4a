package codec

import (
	"context"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func TestEncodePlayerProfile(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.PlayerProfile{Race: 522, Class: 2, Level: 42, Platinum: 17, ZoneID: 202}
	copy(in.Name[:], "Testchar")
	in.Binds[0] = canonical.Bind{ZoneID: 202, X: 1, Y: 2, Z: 3}
	in.SpellBook[0] = 10
	in.SpellBook[1] = 15000
	in.AAArray[3] = canonical.AAEntry{AA: 100, Value: 2, Charges: 9}
	in.Buffs[0].SpellID = 1
	in.Buffs[42].SpellID = 2
	in.Buffs[62].SpellID = 3
	in.Buffs[40].SpellID = 4

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.PlayerProfile, Data: encodeRecord(t, &in)})
	p := single(t, res)
	require.Len(t, p.Data, web.PlayerProfileSize)

	out := decodeRecord[web.PlayerProfile](t, p.Data, web.PlayerProfileSize)
	assert.Equal(t, web.AllSlotsAvailable, out.AvailableSlots)
	assert.Equal(t, uint32(1), out.Race)
	assert.Equal(t, uint8(42), out.Level)
	assert.Equal(t, uint8(42), out.Level1)
	assert.Equal(t, uint8(42), out.Level3)
	assert.Equal(t, "Testchar", buffer.FixedString(out.Name[:]))
	assert.Equal(t, web.Bind{ZoneID: 202, X: 1, Y: 2, Z: 3}, out.Binds[0])
	assert.Equal(t, uint32(10), out.SpellBook[0])
	assert.Equal(t, canonical.InvalidIndex, out.SpellBook[1])
	assert.Equal(t, web.AAEntry{AA: 100, Value: 2}, out.AAArray[3])

	assert.Equal(t, uint32(1), out.Buffs[0].SpellID)
	assert.Equal(t, uint32(2), out.Buffs[slots.WebBuffs.Long].SpellID)
	assert.Equal(t, uint32(3), out.Buffs[web.BuffSlots-1].SpellID)
	for _, buff := range out.Buffs {
		assert.NotEqual(t, uint32(4), buff.SpellID, "long buffs beyond the client's band are not shown")
	}

	assert.Equal(t, crc32.ChecksumIEEE(p.Data[:len(p.Data)-4]), out.Checksum)
}

func charSelectEntry(name string, race uint32) canonical.CharacterSelectEntry {
	entry := canonical.CharacterSelectEntry{Race: race, Level: 10, Zone: 202, Enabled: 1}
	copy(entry.Name[:], name)
	entry.Equip[1] = canonical.CharSelectEquip{Material: 4, Color: 0x01FF8040}

	return entry
}

func charInfo(t *testing.T, count uint32, entries ...canonical.CharacterSelectEntry) []byte {
	t.Helper()

	data := encodeRecord(t, &canonical.CharacterSelectHeader{CharCount: count, TotalChars: 10})
	for i := range entries {
		data = append(data, encodeRecord(t, &entries[i])...)
	}

	return data
}

func TestEncodeSendCharInfo(t *testing.T) {
	c := newTestCodec(t)

	data := charInfo(t, 2, charSelectEntry("Alpha", 3), charSelectEntry("Beta", 900))
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.SendCharInfo, Data: data})
	p := single(t, res)

	require.Len(t, p.Data, web.CharacterSelectHeaderSize+2*web.CharacterSelectEntrySize)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(p.Data))

	records, err := collection.UnpackLinked(p.Data[web.CharacterSelectHeaderSize:], web.CharacterSelectHeaderSize, web.CharacterSelectEntrySize)
	require.NoError(t, err)
	require.Len(t, records, 2)

	alpha := decodeRecord[web.CharacterSelectEntry](t, records[0], web.CharacterSelectEntrySize)
	assert.Equal(t, "Alpha", buffer.FixedString(alpha.Name[:]))
	assert.Equal(t, uint32(3), alpha.Race)
	assert.Equal(t, web.CharSelectEquip{Material: 4, Color: web.Tint{Blue: 0x40, Green: 0x80, Red: 0xFF, UseTint: 1}}, alpha.Equip[1])

	beta := decodeRecord[web.CharacterSelectEntry](t, records[1], web.CharacterSelectEntrySize)
	assert.Equal(t, uint32(1), beta.Race)
}

func TestEncodeSendCharInfoCapsCount(t *testing.T) {
	c := newTestCodec(t)

	entries := make([]canonical.CharacterSelectEntry, 10)
	for i := range entries {
		entries[i] = charSelectEntry("Alt", 1)
	}

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.SendCharInfo, Data: charInfo(t, 10, entries...)})
	p := single(t, res)

	assert.Equal(t, uint32(web.MaxCharacters), binary.LittleEndian.Uint32(p.Data))
	assert.Len(t, p.Data, web.CharacterSelectHeaderSize+web.MaxCharacters*web.CharacterSelectEntrySize)
}

func TestEncodeSendCharInfoEdges(t *testing.T) {
	c := newTestCodec(t)

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.SendCharInfo, Data: charInfo(t, 0)})
	assert.Equal(t, []byte{0, 0, 0, 0}, single(t, res).Data)

	res = c.Encode(context.Background(), packets.Packet{Opcode: opcodes.SendCharInfo, Data: charInfo(t, 3, charSelectEntry("Only", 1))})
	assert.Equal(t, Dropped, res.Outcome)
	assert.Equal(t, MalformedCount, res.Reason)
}

func TestEncodeSendMaxCharacters(t *testing.T) {
	c := newTestCodec(t)

	data := encodeRecord(t, &canonical.MaxCharacters{MaxChars: 8})
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.SendMaxCharacters, Data: data})
	assert.Equal(t, []byte{8, 0, 0, 0}, single(t, res).Data)
}

func TestEncodeApproveName(t *testing.T) {
	c := newTestCodec(t)

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.ApproveName, Data: []byte{1}})
	p := single(t, res)
	assert.Equal(t, opcodes.ApproveNameServer, p.Opcode)
	assert.Equal(t, []byte{1, 0, 0, 0}, p.Data)

	res = c.Encode(context.Background(), packets.Packet{Opcode: opcodes.ApproveName, Data: []byte{1, 0}})
	assert.Equal(t, LengthMismatch, res.Reason)
}

func TestEncodeRespondAA(t *testing.T) {
	c := newTestCodec(t)

	var in canonical.AATable
	in.AAList[0] = canonical.AAEntry{AA: 1, Value: 3, Charges: 1}
	in.AAList[239] = canonical.AAEntry{AA: 999, Value: 1}

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.RespondAA, Data: encodeRecord(t, &in)})
	out := decodeRecord[web.AATable](t, single(t, res).Data, web.AATableSize)

	assert.Equal(t, web.AAEntry{AA: 1, Value: 3}, out.AAList[0])
	assert.Equal(t, web.AAEntry{AA: 999, Value: 1}, out.AAList[239])
}

func TestEncodeLeadershipExpUpdate(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.LeadershipExpUpdate{GroupLeadershipExp: 0.5, GroupLeadershipPoints: 3, RaidLeadershipExp: 0.25, RaidLeadershipPoints: 1}
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.LeadershipExpUpdate, Data: encodeRecord(t, &in)})

	out := decodeRecord[web.LeadershipExpUpdate](t, single(t, res).Data, web.LeadershipExpUpdateSize)
	assert.Equal(t, web.LeadershipExpUpdate{GroupLeadershipExp: 0.5, GroupLeadershipPoints: 3, RaidLeadershipExp: 0.25, RaidLeadershipPoints: 1}, out)
}

func TestDecodeSendLoginInfo(t *testing.T) {
	c := newTestCodec(t)

	w := buffer.NewWriter(32)
	w.CString("player")
	w.CString("hunter2")
	w.Uint8(1)

	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.SendLoginInfo, Data: w.Data()})
	out := decodeRecord[canonical.LoginInfo](t, single(t, res).Data, canonical.LoginInfoSize)

	assert.Equal(t, []byte("player\x00hunter2\x00"), out.Credentials[:15])
	assert.Equal(t, uint8(1), out.Zoning)

	res = c.Decode(context.Background(), packets.Packet{Opcode: opcodes.SendLoginInfo, Data: []byte("player\x00hunter2")})
	assert.Equal(t, Dropped, res.Outcome)
	assert.Equal(t, LengthTooShort, res.Reason)
}

func TestDecodeDeleteCharacter(t *testing.T) {
	c := newTestCodec(t)

	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.DeleteCharacter, Data: []byte("Oldchar\x00junk")})
	assert.Equal(t, []byte("Oldchar\x00"), single(t, res).Data)
}

func TestDecodeCharacterCreate(t *testing.T) {
	c := newTestCodec(t)

	in := web.CharacterCreate{Class: 1, Race: 2, StartZone: 3, Deity: 211, STR: 90, Tutorial: 1}
	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.CharacterCreate, Data: encodeRecord(t, &in)})

	out := decodeRecord[canonical.CharacterCreate](t, single(t, res).Data, canonical.CharacterCreateSize)
	assert.Equal(t, canonical.CharacterCreate{Class: 1, Race: 2, StartZone: 3, Deity: 211, STR: 90, Tutorial: 1}, out)
}
