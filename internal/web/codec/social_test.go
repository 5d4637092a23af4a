package codec

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
)

func raidGeneral(action, parameter uint32) canonical.RaidGeneral {
	general := canonical.RaidGeneral{Action: action, Parameter: parameter}
	copy(general.LeaderName[:], "Leader")
	copy(general.PlayerName[:], "Member")

	return general
}

func TestEncodeRaidUpdate(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	t.Run("add member", func(t *testing.T) {
		in := canonical.RaidAddMember{General: raidGeneral(canonical.RaidAdd, 2), Class: 3, Level: 50, IsGroupLeader: 1}
		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.RaidUpdate, Data: encodeRecord(t, &in)})

		out := decodeRecord[web.RaidAddMember](t, single(t, res).Data, web.RaidAddMemberSize)
		assert.Equal(t, "Leader", buffer.FixedString(out.General.LeaderName[:]))
		assert.Equal(t, "Member", buffer.FixedString(out.General.PlayerName[:]))
		assert.Equal(t, uint32(2), out.General.Parameter)
		assert.Equal(t, uint8(50), out.Level)
		assert.Equal(t, uint8(1), out.IsGroupLeader)
	})

	t.Run("motd", func(t *testing.T) {
		in := canonical.RaidMOTD{General: raidGeneral(canonical.RaidSetMotd, 9)}
		copy(in.MOTD[:], "Meet at the gate")

		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.RaidUpdate, Data: encodeRecord(t, &in)})
		out := decodeRecord[web.RaidMOTD](t, single(t, res).Data, web.RaidMOTDSize)
		assert.Zero(t, out.General.Parameter)
		assert.Equal(t, "Meet at the gate", buffer.FixedString(out.MOTD[:]))
	})

	t.Run("note", func(t *testing.T) {
		in := canonical.RaidNote{General: raidGeneral(canonical.RaidSetNote, 9)}
		copy(in.Note[:], "puller")

		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.RaidUpdate, Data: encodeRecord(t, &in)})
		out := decodeRecord[web.RaidNote](t, single(t, res).Data, web.RaidNoteSize)
		assert.Zero(t, out.General.Parameter)
		assert.Equal(t, "puller", buffer.FixedString(out.Note[:]))
	})

	t.Run("no raid passes through", func(t *testing.T) {
		in := raidGeneral(canonical.RaidNoRaid, 0)
		p := packets.Packet{Opcode: opcodes.RaidUpdate, Data: encodeRecord(t, &in)}

		res := c.Encode(ctx, p)
		assert.Equal(t, Forwarded, res.Outcome)
		assert.Equal(t, []packets.Packet{p}, res.Packets)
	})

	t.Run("general", func(t *testing.T) {
		in := raidGeneral(canonical.RaidMakeLeader, 4)
		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.RaidUpdate, Data: encodeRecord(t, &in)})

		out := decodeRecord[web.RaidGeneral](t, single(t, res).Data, web.RaidGeneralSize)
		assert.Equal(t, canonical.RaidMakeLeader, out.Action)
		assert.Equal(t, uint32(4), out.Parameter)
	})
}

func TestDecodeRaidInvite(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	general := web.RaidGeneral{Action: canonical.RaidSetMotd, Parameter: 1}
	copy(general.LeaderName[:], "Leader")

	data := append(encodeRecord(t, &general), "Raid tonight\x00"...)
	res := c.Decode(ctx, packets.Packet{Opcode: opcodes.RaidInvite, Data: data})

	motd := decodeRecord[canonical.RaidMOTD](t, single(t, res).Data, canonical.RaidMOTDSize)
	assert.Equal(t, "Raid tonight", buffer.FixedString(motd.MOTD[:]))
	assert.Equal(t, "Leader", buffer.FixedString(motd.General.LeaderName[:]))

	general.Action = 1
	res = c.Decode(ctx, packets.Packet{Opcode: opcodes.RaidInvite, Data: encodeRecord(t, &general)})
	out := decodeRecord[canonical.RaidGeneral](t, single(t, res).Data, canonical.RaidGeneralSize)
	assert.Equal(t, uint32(1), out.Action)
	assert.Equal(t, uint32(1), out.Parameter)
}

func TestEncodeGuildMemberList(t *testing.T) {
	c := newTestCodec(t)

	header := canonical.GuildMembersHeader{Count: 2, NameLength: 9, NoteLength: 7}
	copy(header.PlayerName[:], "Me")

	data := encodeRecord(t, &header)
	data = append(data, encodeRecord(t, &canonical.GuildMemberEntry{Level: 60, Class: 1, Rank: 2, ZoneID: 202})...)
	data = append(data, encodeRecord(t, &canonical.GuildMemberEntry{Level: 1, TimeLastOn: 0x01020304})...)
	data = append(data, "Firstguy\x00B\x00"...)
	data = append(data, "officer\x00\x00"...)

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.GuildMemberList, Data: data})
	r := buffer.NewReader(single(t, res).Data)

	player, err := r.CString()
	require.NoError(t, err)
	assert.Equal(t, "Me", player)

	count, err := r.Bytes(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), binary.BigEndian.Uint32(count))

	name, err := r.CString()
	require.NoError(t, err)
	assert.Equal(t, "Firstguy", name)

	fields, err := r.Bytes(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(60), binary.BigEndian.Uint32(fields[0:]))
	assert.Equal(t, uint32(1), binary.BigEndian.Uint32(fields[8:]))
	assert.Equal(t, uint32(2), binary.BigEndian.Uint32(fields[12:]))

	note, err := r.CString()
	require.NoError(t, err)
	assert.Equal(t, "officer", note)

	zone, err := r.Bytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 202}, zone)

	name, err = r.CString()
	require.NoError(t, err)
	assert.Equal(t, "B", name)

	fields, err = r.Bytes(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), binary.BigEndian.Uint32(fields[16:]))

	note, err = r.CString()
	require.NoError(t, err)
	assert.Empty(t, note)

	_, err = r.Bytes(4)
	require.NoError(t, err)
	assert.Zero(t, r.Len())
}

func TestEncodeGuildMemberListMissingStrings(t *testing.T) {
	c := newTestCodec(t)

	data := encodeRecord(t, &canonical.GuildMembersHeader{Count: 1})
	data = append(data, encodeRecord(t, &canonical.GuildMemberEntry{})...)
	data = append(data, "onlyname\x00"...)

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.GuildMemberList, Data: data})
	assert.Equal(t, Dropped, res.Outcome)
}

func TestEncodeGuildsList(t *testing.T) {
	c := newTestCodec(t)

	data := make([]byte, 4*canonical.GuildNameSize)
	copy(data[canonical.GuildNameSize:], "Knights")
	copy(data[3*canonical.GuildNameSize:], "Shadows")

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.GuildsList, Data: data})
	p := single(t, res)
	require.Len(t, p.Data, 2*web.GuildNameSize)

	records, err := collection.UnpackLinked(p.Data, 0, web.GuildNameSize)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := decodeRecord[web.GuildName](t, records[0], web.GuildNameSize)
	second := decodeRecord[web.GuildName](t, records[1], web.GuildNameSize)
	assert.Equal(t, "Knights", buffer.FixedString(first.Name[:]))
	assert.Equal(t, "Shadows", buffer.FixedString(second.Name[:]))
}

func TestEncodeBazaarSearch(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	for _, size := range []int{canonical.BazaarReturnDoneSize, canonical.BazaarWelcomeSize} {
		p := packets.Packet{Opcode: opcodes.BazaarSearch, Data: make([]byte, size)}
		res := c.Encode(ctx, p)
		assert.Equal(t, Forwarded, res.Outcome)
		assert.Equal(t, []packets.Packet{p}, res.Packets)
	}

	in := canonical.BazaarSearchResults{NumItems: 2, SellerID: 5, Cost: 1000}
	copy(in.ItemName[:], "Cloth Cap")

	data := append(encodeRecord(t, &in), encodeRecord(t, &in)...)
	res := c.Encode(ctx, packets.Packet{Opcode: opcodes.BazaarSearch, Data: data})
	p := single(t, res)
	require.Len(t, p.Data, 2*web.BazaarSearchResultsSize)

	out := decodeRecord[web.BazaarSearchResults](t, p.Data[web.BazaarSearchResultsSize:], web.BazaarSearchResultsSize)
	assert.Equal(t, uint32(1000), out.Cost)
	assert.Equal(t, "Cloth Cap", buffer.FixedString(out.ItemName[:]))

	res = c.Encode(ctx, packets.Packet{Opcode: opcodes.BazaarSearch, Data: make([]byte, 10)})
	assert.Equal(t, MalformedCount, res.Reason)

	// a record and a half
	res = c.Encode(ctx, packets.Packet{Opcode: opcodes.BazaarSearch, Data: make([]byte, canonical.BazaarSearchResultsSize*3/2)})
	assert.Equal(t, Dropped, res.Outcome)
	assert.Equal(t, MalformedCount, res.Reason)
	assert.Empty(t, res.Packets)
}

func TestEncodeTrader(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	buy := canonical.TraderBuy{Action: 1, Price: 250, TraderID: 8, ItemID: 1001, Quantity: 3, AlreadySold: 1}
	copy(buy.ItemName[:], "Bone Chips")

	res := c.Encode(ctx, packets.Packet{Opcode: opcodes.Trader, Data: encodeRecord(t, &buy)})
	assert.Equal(t, Forwarded, res.Outcome)

	p := single(t, res)
	assert.Equal(t, opcodes.Trader, p.Opcode)

	out := decodeRecord[web.TraderBuy](t, p.Data, web.TraderBuySize)
	assert.Equal(t, uint32(250), out.Price)
	assert.Equal(t, uint32(3), out.Quantity)
	assert.Equal(t, "Bone Chips", buffer.FixedString(out.ItemName[:]))

	other := packets.Packet{Opcode: opcodes.Trader, Data: make([]byte, 12)}
	res = c.Encode(ctx, other)
	assert.Equal(t, []packets.Packet{other}, res.Packets)
}

func TestTraderBuyRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	in := web.TraderBuy{Action: 2, Price: 5, TraderID: 6, ItemID: 7, Quantity: 8, AlreadySold: 9}
	copy(in.ItemName[:], "Rusty Dagger")

	res := c.Decode(ctx, packets.Packet{Opcode: opcodes.TraderBuy, Data: encodeRecord(t, &in)})
	p := single(t, res)
	require.Len(t, p.Data, canonical.TraderBuySize)

	res = c.Encode(ctx, p)
	assert.Equal(t, in, decodeRecord[web.TraderBuy](t, single(t, res).Data, web.TraderBuySize))
}

func TestEncodeBecomeTrader(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.BecomeTrader{ID: 4, Code: 1}
	copy(in.TraderName[:], "Seller")

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.BecomeTrader, Data: encodeRecord(t, &in)})
	assert.Equal(t, web.BecomeTrader{ID: 4, Code: 1}, decodeRecord[web.BecomeTrader](t, single(t, res).Data, web.BecomeTraderSize))
}

func TestLFGuild(t *testing.T) {
	c := newTestCodec(t)
	ctx := context.Background()

	t.Run("other commands pass through", func(t *testing.T) {
		p := packets.Packet{Opcode: opcodes.LFGuild, Data: []byte{3, 0, 0, 0, 9, 9}}
		assert.Equal(t, []packets.Packet{p}, c.Encode(ctx, p).Packets)
		assert.Equal(t, []packets.Packet{p}, c.Decode(ctx, p).Packets)
	})

	t.Run("player toggle", func(t *testing.T) {
		in := canonical.LFGuildPlayerToggle{TimeZone: 5, Toggle: 1, TimePosted: 1700000000}
		copy(in.Comment[:], "LF casual guild")

		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.LFGuild, Data: encodeRecord(t, &in)})
		p := single(t, res)

		out := decodeRecord[web.LFGuildPlayerToggle](t, p.Data, web.LFGuildPlayerToggleSize)
		assert.Equal(t, "LF casual guild", buffer.FixedString(out.Comment[:]))
		assert.Equal(t, uint32(1700000000), out.TimePosted)

		res = c.Decode(ctx, p)
		back := decodeRecord[canonical.LFGuildPlayerToggle](t, single(t, res).Data, canonical.LFGuildPlayerToggleSize)
		assert.Equal(t, in, back)
	})

	t.Run("short toggle", func(t *testing.T) {
		res := c.Encode(ctx, packets.Packet{Opcode: opcodes.LFGuild, Data: make([]byte, 100)})
		assert.Equal(t, LengthTooShort, res.Reason)

		res = c.Decode(ctx, packets.Packet{Opcode: opcodes.LFGuild, Data: []byte{0, 0}})
		assert.Equal(t, LengthTooShort, res.Reason)
	})
}

func TestEncodeVetRewards(t *testing.T) {
	c := newTestCodec(t)

	in := canonical.VeteranReward{ClaimID: 12, ClaimCount: 2}
	in.Items[0] = canonical.VeteranRewardItem{ItemID: 1, Charges: 5}
	copy(in.Items[0].ItemName[:], "Chest of Riches")
	in.Items[1] = canonical.VeteranRewardItem{ItemID: 2}

	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.VetRewardsAvaliable, Data: encodeRecord(t, &in)})
	out := decodeRecord[web.VeteranReward](t, single(t, res).Data, web.VeteranRewardSize)

	assert.Equal(t, uint32(12), out.ClaimID)
	assert.Equal(t, uint32(1), out.Item.ItemID)
	assert.Equal(t, "Chest of Riches", buffer.FixedString(out.Item.ItemName[:]))

	res = c.Encode(context.Background(), packets.Packet{Opcode: opcodes.VetRewardsAvaliable})
	assert.Empty(t, single(t, res).Data)
}

func TestDecodeWhoAllRequest(t *testing.T) {
	c := newTestCodec(t)

	in := web.WhoAll{WRace: 0xFFFFFFFF, WClass: 2, LvlLow: 10, LvlHigh: 20}
	copy(in.Whom[:], "bob")

	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.WhoAllRequest, Data: encodeRecord(t, &in)})
	out := decodeRecord[canonical.WhoAll](t, single(t, res).Data, canonical.WhoAllSize)

	assert.Equal(t, "bob", buffer.FixedString(out.Whom[:]))
	assert.Equal(t, uint32(2), out.WClass)
	assert.Equal(t, canonical.InvalidIndex, out.GuildID)
	assert.Equal(t, whoAllTypeWho, out.Type)
}
