package codec

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func (c *Codec) encodePlayerProfile(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.PlayerProfile](p.Data, canonical.PlayerProfileSize)
	if err != nil {
		return dropped(err)
	}

	out := web.PlayerProfile{
		AvailableSlots:        web.AllSlotsAvailable,
		Gender:                in.Gender,
		Race:                  clampRace(in.Race),
		Class:                 in.Class,
		Level:                 in.Level,
		Level1:                in.Level,
		Deity:                 in.Deity,
		Intoxication:          in.Intoxication,
		AbilitySlotRefresh:    in.AbilitySlotRefresh,
		HairColor:             in.HairColor,
		BeardColor:            in.BeardColor,
		EyeColor1:             in.EyeColor1,
		EyeColor2:             in.EyeColor2,
		HairStyle:             in.HairStyle,
		Beard:                 in.Beard,
		Points:                in.Points,
		Mana:                  in.Mana,
		CurHP:                 in.CurHP,
		STR:                   in.STR,
		STA:                   in.STA,
		CHA:                   in.CHA,
		DEX:                   in.DEX,
		INT:                   in.INT,
		AGI:                   in.AGI,
		WIS:                   in.WIS,
		Face:                  in.Face,
		Platinum:              in.Platinum,
		Gold:                  in.Gold,
		Silver:                in.Silver,
		Copper:                in.Copper,
		Exp:                   in.Exp,
		Name:                  in.Name,
		LastName:              in.LastName,
		GuildID:               in.GuildID,
		ZoneID:                in.ZoneID,
		ZoneInstance:          in.ZoneInstance,
		Y:                     in.Y,
		X:                     in.X,
		Z:                     in.Z,
		Heading:               in.Heading,
		GroupLeadershipExp:    in.GroupLeadershipExp,
		RaidLeadershipExp:     in.RaidLeadershipExp,
		GroupLeadershipPoints: in.GroupLeadershipPoints,
		RaidLeadershipPoints:  in.RaidLeadershipPoints,
		AirRemaining:          in.AirRemaining,
		PVPKills:              in.PVPKills,
		PVPDeaths:             in.PVPDeaths,
		PVPCurrentPoints:      in.PVPCurrentPoints,
		PVPCareerPoints:       in.PVPCareerPoints,
		ExpAA:                 in.ExpAA,
		Level3:                in.Level,
		ShowHelm:              in.ShowHelm,
	}

	for i := range out.Binds {
		out.Binds[i] = web.Bind(in.Binds[i])
	}
	copy(out.SpellSlotRefresh[:], in.SpellSlotRefresh[:])
	copy(out.MemSpells[:], in.MemSpells[:])

	for i := range out.AAArray {
		out.AAArray[i] = web.AAEntry{AA: in.AAArray[i].AA, Value: in.AAArray[i].Value}
	}

	for i, spell := range in.SpellBook {
		if spell > web.MaxSpellID {
			spell = canonical.InvalidIndex
		}
		out.SpellBook[i] = spell
	}

	for i := range out.Buffs {
		server := slots.BuffWebToServer(i)
		if !slots.ServerBuffs.Contains(server) {
			continue
		}
		buff := in.Buffs[server]
		out.Buffs[i] = web.SpellBuff{
			EffectType:   buff.EffectType,
			Level:        buff.Level,
			BardModifier: buff.BardModifier,
			SpellID:      buff.SpellID,
			Duration:     buff.Duration,
			Counters:     buff.Counters,
			PlayerID:     buff.PlayerID,
		}
	}

	w := buffer.NewWriter(web.PlayerProfileSize)
	if err = w.Struct(&out); err != nil {
		return dropped(err)
	}

	// The checksum covers everything before itself.
	sumAt := w.Len() - 4
	if err = w.PutUint32At(sumAt, crc32.ChecksumIEEE(w.Data()[:sumAt])); err != nil {
		return dropped(err)
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

// encodeSendCharInfo chains up to web.MaxCharacters entries after a count header.
func (c *Codec) encodeSendCharInfo(_ context.Context, p packets.Packet) Result {
	header, rest, err := readAtLeast[canonical.CharacterSelectHeader](p.Data, canonical.CharacterSelectHeaderSize)
	if err != nil {
		return dropped(err)
	}

	count := min(int(header.CharCount), web.MaxCharacters)
	entries, err := collection.Records(rest, canonical.CharacterSelectEntrySize, count)
	if err != nil {
		return dropped(err)
	}

	records := make([][]byte, 0, count)
	for _, entry := range entries {
		var in canonical.CharacterSelectEntry
		if err = buffer.ReadExact(entry, canonical.CharacterSelectEntrySize, &in); err != nil {
			return dropped(err)
		}

		out := web.CharacterSelectEntry{
			Name:            in.Name,
			Class:           in.Class,
			Race:            clampRace(in.Race),
			Level:           in.Level,
			Zone:            in.Zone,
			Instance:        in.Instance,
			Gender:          in.Gender,
			Face:            in.Face,
			Deity:           in.Deity,
			PrimaryIDFile:   in.PrimaryIDFile,
			SecondaryIDFile: in.SecondaryIDFile,
			GoHome:          in.GoHome,
			Enabled:         in.Enabled,
			LastLogin:       in.LastLogin,
		}
		for i := range out.Equip {
			out.Equip[i] = web.CharSelectEquip{
				Material: in.Equip[i].Material,
				Color:    unpackColor(in.Equip[i].Color),
			}
		}

		data, err := buffer.Encode(&out)
		if err != nil {
			return dropped(err)
		}
		records = append(records, data)
	}

	w := buffer.NewWriter(web.CharacterSelectHeaderSize + count*web.CharacterSelectEntrySize)
	w.Uint32(uint32(len(records))) //nolint:gosec // at most MaxCharacters
	if len(records) > 0 {
		w.Bytes(collection.PackLinked(records, web.CharacterSelectHeaderSize))
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

// unpackColor splits a packed 0xTTRRGGBB colour.
func unpackColor(color uint32) web.Tint {
	return web.Tint{
		Blue:    uint8(color),
		Green:   uint8(color >> 8),
		Red:     uint8(color >> 16),
		UseTint: uint8(color >> 24),
	}
}

func (c *Codec) encodeSendMaxCharacters(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.MaxCharacters](p.Data, canonical.MaxCharactersSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.IntValue{Value: in.MaxChars})
}

// encodeApproveName widens the verdict byte and answers on the server-side approval opcode.
func (c *Codec) encodeApproveName(_ context.Context, p packets.Packet) Result {
	if len(p.Data) != canonical.ApproveNameSize {
		return dropped(fmt.Errorf("%w: got %d bytes, want %d", buffer.ErrLengthMismatch, len(p.Data), canonical.ApproveNameSize))
	}

	return replaceWith(opcodes.ApproveNameServer, &web.IntValue{Value: uint32(p.Data[0])})
}

func (c *Codec) encodeRespondAA(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.AATable](p.Data, canonical.AATableSize)
	if err != nil {
		return dropped(err)
	}

	var out web.AATable
	for i, entry := range in.AAList {
		out.AAList[i] = web.AAEntry{AA: entry.AA, Value: entry.Value}
	}

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) encodeLeadershipExpUpdate(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.LeadershipExpUpdate](p.Data, canonical.LeadershipExpUpdateSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.LeadershipExpUpdate{
		GroupLeadershipExp:    in.GroupLeadershipExp,
		GroupLeadershipPoints: in.GroupLeadershipPoints,
		RaidLeadershipExp:     in.RaidLeadershipExp,
		RaidLeadershipPoints:  in.RaidLeadershipPoints,
	})
}

// decodeSendLoginInfo packs the name and password into the server's credential block.
func (c *Codec) decodeSendLoginInfo(_ context.Context, p packets.Packet) Result {
	r := buffer.NewReader(p.Data)

	name, err := r.CString()
	if err != nil {
		return dropped(err)
	}

	password, err := r.CString()
	if err != nil {
		return dropped(err)
	}

	zoning, err := r.Uint8()
	if err != nil {
		return dropped(err)
	}

	var out canonical.LoginInfo
	buffer.PutFixedString(out.Credentials[:], name+"\x00"+password)
	out.Zoning = zoning

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) decodeDeleteCharacter(_ context.Context, p packets.Packet) Result {
	r := buffer.NewReader(p.Data)

	name, err := r.CString()
	if err != nil {
		return dropped(err)
	}

	w := buffer.NewWriter(len(name) + 1)
	w.CString(name)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) decodeCharacterCreate(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.CharacterCreate](p.Data, web.CharacterCreateSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.CharacterCreate{
		Class:      in.Class,
		HairColor:  in.HairColor,
		BeardColor: in.BeardColor,
		Beard:      in.Beard,
		Gender:     in.Gender,
		Race:       in.Race,
		StartZone:  in.StartZone,
		HairStyle:  in.HairStyle,
		Deity:      in.Deity,
		STR:        in.STR,
		STA:        in.STA,
		AGI:        in.AGI,
		DEX:        in.DEX,
		WIS:        in.WIS,
		INT:        in.INT,
		CHA:        in.CHA,
		Face:       in.Face,
		EyeColor1:  in.EyeColor1,
		EyeColor2:  in.EyeColor2,
		Tutorial:   in.Tutorial,
	})
}
