package codec

import (
	"context"
	"fmt"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
)

const (
	// whoAllTypeWho is the search type for a /who all request.
	whoAllTypeWho uint32 = 3

	// lfGuildPlayerToggle is the only LFGuild command with a different layout on the client.
	lfGuildPlayerToggle uint32 = 0
)

func webRaidGeneral(in *canonical.RaidGeneral) web.RaidGeneral {
	out := web.RaidGeneral{Action: in.Action, Parameter: in.Parameter}
	buffer.CopyFixed(out.LeaderName[:], in.LeaderName[:])
	buffer.CopyFixed(out.PlayerName[:], in.PlayerName[:])

	return out
}

func canonicalRaidGeneral(in *web.RaidGeneral) canonical.RaidGeneral {
	out := canonical.RaidGeneral{Action: in.Action, Parameter: in.Parameter}
	buffer.CopyFixed(out.LeaderName[:], in.LeaderName[:])
	buffer.CopyFixed(out.PlayerName[:], in.PlayerName[:])

	return out
}

// encodeRaidUpdate picks the client layout from the action of the leading general block.
func (c *Codec) encodeRaidUpdate(_ context.Context, p packets.Packet) Result {
	general, _, err := readAtLeast[canonical.RaidGeneral](p.Data, canonical.RaidGeneralSize)
	if err != nil {
		return dropped(err)
	}

	switch general.Action {
	case canonical.RaidAdd:
		in, _, err := readAtLeast[canonical.RaidAddMember](p.Data, canonical.RaidAddMemberSize)
		if err != nil {
			return dropped(err)
		}

		return replaceWith(p.Opcode, &web.RaidAddMember{
			General:       webRaidGeneral(&in.General),
			Class:         in.Class,
			Level:         in.Level,
			IsGroupLeader: in.IsGroupLeader,
		})
	case canonical.RaidSetMotd:
		in, _, err := readAtLeast[canonical.RaidMOTD](p.Data, canonical.RaidMOTDSize)
		if err != nil {
			return dropped(err)
		}

		out := web.RaidMOTD{General: webRaidGeneral(&in.General)}
		out.General.Parameter = 0
		buffer.CopyFixed(out.MOTD[:], in.MOTD[:])

		return replaceWith(p.Opcode, &out)
	case canonical.RaidSetNote:
		in, _, err := readAtLeast[canonical.RaidNote](p.Data, canonical.RaidNoteSize)
		if err != nil {
			return dropped(err)
		}

		out := web.RaidNote{General: webRaidGeneral(&in.General)}
		out.General.Parameter = 0
		buffer.CopyFixed(out.Note[:], in.Note[:])

		return replaceWith(p.Opcode, &out)
	case canonical.RaidNoRaid:
		return passthrough(p)
	default:
		out := webRaidGeneral(&general)
		return replaceWith(p.Opcode, &out)
	}
}

func (c *Codec) decodeRaidInvite(_ context.Context, p packets.Packet) Result {
	general, rest, err := readAtLeast[web.RaidGeneral](p.Data, web.RaidGeneralSize)
	if err != nil {
		return dropped(err)
	}

	switch general.Action {
	case canonical.RaidSetMotd:
		out := canonical.RaidMOTD{General: canonicalRaidGeneral(&general)}
		buffer.PutFixedString(out.MOTD[:], buffer.FixedString(rest))

		return replaceWith(p.Opcode, &out)
	case canonical.RaidSetNote:
		out := canonical.RaidNote{General: canonicalRaidGeneral(&general)}
		buffer.PutFixedString(out.Note[:], buffer.FixedString(rest))

		return replaceWith(p.Opcode, &out)
	default:
		out := canonicalRaidGeneral(&general)
		return replaceWith(p.Opcode, &out)
	}
}

// encodeGuildMemberList writes the member roster in the client's packed big-endian form.
func (c *Codec) encodeGuildMemberList(_ context.Context, p packets.Packet) Result {
	header, rest, err := readAtLeast[canonical.GuildMembersHeader](p.Data, canonical.GuildMembersHeaderSize)
	if err != nil {
		return dropped(err)
	}

	count := int(header.Count)
	entries, err := collection.Records(rest, canonical.GuildMemberEntrySize, count)
	if err != nil {
		return dropped(err)
	}

	names, rest, err := collection.Strings(rest[count*canonical.GuildMemberEntrySize:], count)
	if err != nil {
		return dropped(err)
	}

	notes, _, err := collection.Strings(rest, count)
	if err != nil {
		return dropped(err)
	}

	playerName := buffer.FixedString(header.PlayerName[:])
	w := buffer.NewWriter(len(playerName) + 5 + count*canonical.GuildMemberEntrySize + int(header.NameLength) + int(header.NoteLength))
	w.CString(playerName)
	w.Uint32BE(header.Count)

	for i, entry := range entries {
		var in canonical.GuildMemberEntry
		if err = buffer.ReadExact(entry, canonical.GuildMemberEntrySize, &in); err != nil {
			return dropped(err)
		}

		w.CString(names[i])
		w.Uint32BE(in.Level)
		w.Uint32BE(in.Banker)
		w.Uint32BE(in.Class)
		w.Uint32BE(in.Rank)
		w.Uint32BE(in.TimeLastOn)
		w.Uint32BE(in.TributeEnable)
		w.Uint32BE(in.TotalTribute)
		w.Uint32BE(in.LastTribute)
		w.CString(notes[i])
		w.Uint16BE(0)
		w.Uint16BE(in.ZoneID)
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

// encodeGuildsList chains the non-empty guild names. Guild ids are implied by position on
// the server side and are not sent.
func (c *Codec) encodeGuildsList(_ context.Context, p packets.Packet) Result {
	count, err := collection.Count(p.Data, canonical.GuildNameSize)
	if err != nil {
		return dropped(err)
	}

	var records [][]byte
	for i := range count {
		name := p.Data[i*canonical.GuildNameSize : (i+1)*canonical.GuildNameSize]
		if name[0] == 0 {
			continue
		}

		var out web.GuildName
		buffer.CopyFixed(out.Name[:], name)

		data, err := buffer.Encode(&out)
		if err != nil {
			return dropped(err)
		}
		records = append(records, data)
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: collection.PackLinked(records, 0)})
}

// encodeBazaarSearch reduces search results. The done and welcome messages share the
// opcode and go out as they are.
func (c *Codec) encodeBazaarSearch(_ context.Context, p packets.Packet) Result {
	if len(p.Data) == canonical.BazaarReturnDoneSize || len(p.Data) == canonical.BazaarWelcomeSize {
		return passthrough(p)
	}

	count, err := collection.Count(p.Data, canonical.BazaarSearchResultsSize)
	if err != nil {
		return dropped(err)
	}
	if count == 0 {
		return dropped(collection.ErrMalformedCount)
	}

	w := buffer.NewWriter(count * web.BazaarSearchResultsSize)
	r := buffer.NewReader(p.Data)
	for range count {
		var in canonical.BazaarSearchResults
		if err = r.Struct(&in); err != nil {
			return dropped(err)
		}

		out := web.BazaarSearchResults{
			Beginning:    web.BazaarWindowStart{Action: in.Beginning.Action},
			NumItems:     in.NumItems,
			SerialNumber: in.SerialNumber,
			SellerID:     in.SellerID,
			Cost:         in.Cost,
			ItemStat:     in.ItemStat,
		}
		buffer.CopyFixed(out.ItemName[:], in.ItemName[:])

		if err = w.Struct(&out); err != nil {
			return dropped(err)
		}
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) encodeBecomeTrader(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.BecomeTrader](p.Data, canonical.BecomeTraderSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.BecomeTrader{ID: in.ID, Code: in.Code})
}

// encodeTrader only rewrites purchase notifications; other trader messages have the same
// layout on both sides.
func (c *Codec) encodeTrader(ctx context.Context, p packets.Packet) Result {
	if len(p.Data) != canonical.TraderBuySize {
		return passthrough(p)
	}

	return c.forward(ctx, Encode, opcodes.TraderBuy, p)
}

func (c *Codec) encodeTraderBuy(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.TraderBuy](p.Data, canonical.TraderBuySize)
	if err != nil {
		return dropped(err)
	}

	out := web.TraderBuy{
		Action:      in.Action,
		Price:       in.Price,
		TraderID:    in.TraderID,
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		AlreadySold: in.AlreadySold,
	}
	buffer.CopyFixed(out.ItemName[:], in.ItemName[:])

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) decodeTraderBuy(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.TraderBuy](p.Data, web.TraderBuySize)
	if err != nil {
		return dropped(err)
	}

	out := canonical.TraderBuy{
		Action:      in.Action,
		Price:       in.Price,
		TraderID:    in.TraderID,
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		AlreadySold: in.AlreadySold,
	}
	buffer.CopyFixed(out.ItemName[:], in.ItemName[:])

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) encodeLFGuild(_ context.Context, p packets.Packet) Result {
	command, _, err := readAtLeast[uint32](p.Data, 4)
	if err != nil {
		return dropped(err)
	}
	if command != lfGuildPlayerToggle {
		return passthrough(p)
	}

	if len(p.Data) < web.LFGuildPlayerToggleSize {
		return dropped(fmt.Errorf("%w: got %d bytes, want at least %d", buffer.ErrLengthTooShort, len(p.Data), web.LFGuildPlayerToggleSize))
	}

	data := make([]byte, web.LFGuildPlayerToggleSize)
	copy(data, p.Data)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: data})
}

func (c *Codec) decodeLFGuild(_ context.Context, p packets.Packet) Result {
	command, _, err := readAtLeast[uint32](p.Data, 4)
	if err != nil {
		return dropped(err)
	}
	if command != lfGuildPlayerToggle {
		return passthrough(p)
	}

	in, _, err := readAtLeast[web.LFGuildPlayerToggle](p.Data, web.LFGuildPlayerToggleSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.LFGuildPlayerToggle{
		Command:    in.Command,
		Comment:    in.Comment,
		TimeZone:   in.TimeZone,
		Toggle:     in.Toggle,
		Unknown265: in.Unknown265,
		TimePosted: in.TimePosted,
	})
}

// encodeVetRewards keeps the first item of every claim; the client shows one per claim.
func (c *Codec) encodeVetRewards(_ context.Context, p packets.Packet) Result {
	count, err := collection.Count(p.Data, canonical.VeteranRewardSize)
	if err != nil {
		return dropped(err)
	}

	w := buffer.NewWriter(count * web.VeteranRewardSize)
	r := buffer.NewReader(p.Data)
	for range count {
		var in canonical.VeteranReward
		if err = r.Struct(&in); err != nil {
			return dropped(err)
		}

		out := web.VeteranReward{
			ClaimID: in.ClaimID,
			Item:    web.VeteranRewardItem{ItemID: in.Items[0].ItemID},
		}
		buffer.CopyFixed(out.Item.ItemName[:], in.Items[0].ItemName[:])

		if err = w.Struct(&out); err != nil {
			return dropped(err)
		}
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) decodeWhoAllRequest(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.WhoAll](p.Data, web.WhoAllSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.WhoAll{
		Whom:     in.Whom,
		WRace:    in.WRace,
		WClass:   in.WClass,
		LvlLow:   in.LvlLow,
		LvlHigh:  in.LvlHigh,
		GMLookup: in.GMLookup,
		GuildID:  canonical.InvalidIndex,
		Type:     whoAllTypeWho,
	})
}
