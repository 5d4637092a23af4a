package codec

import (
	"context"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
)

// webOverrides lists every message the web client lays out differently from the server.
func webOverrides() []Override {
	return []Override{
		{Opcode: opcodes.Action, Encode: (*Codec).encodeAction},
		{Opcode: opcodes.AdventureMerchantSell, Encode: (*Codec).encodeAdventureMerchantSell, Decode: (*Codec).decodeAdventureMerchantSell},
		{Opcode: opcodes.ApplyPoison, Encode: (*Codec).encodeApplyPoison, Decode: (*Codec).decodeApplyPoison},
		{Opcode: opcodes.ApproveName, Encode: (*Codec).encodeApproveName},
		{Opcode: opcodes.AugmentItem, Decode: (*Codec).decodeAugmentItem},
		{Opcode: opcodes.BazaarSearch, Encode: (*Codec).encodeBazaarSearch},
		{Opcode: opcodes.BecomeTrader, Encode: (*Codec).encodeBecomeTrader},
		{Opcode: opcodes.Buff, Encode: (*Codec).encodeBuff, Decode: (*Codec).decodeBuff},
		{Opcode: opcodes.CastSpell, Decode: (*Codec).decodeCastSpell},
		{Opcode: opcodes.ChannelMessage, Encode: (*Codec).encodeChannelMessage, Decode: (*Codec).decodeChannelMessage},
		{Opcode: opcodes.CharInventory, Encode: (*Codec).encodeCharInventory},
		{Opcode: opcodes.CharacterCreate, Decode: (*Codec).decodeCharacterCreate},
		{Opcode: opcodes.ClientUpdate, Encode: (*Codec).encodeClientUpdate, Decode: (*Codec).decodeClientUpdate},
		{Opcode: opcodes.Consume, Decode: (*Codec).decodeConsume},
		{Opcode: opcodes.Damage, Encode: (*Codec).encodeDamage},
		{Opcode: opcodes.DeleteCharacter, Decode: (*Codec).decodeDeleteCharacter},
		{Opcode: opcodes.DeleteCharge, Encode: (*Codec).encodeDeleteCharge},
		{Opcode: opcodes.DeleteItem, Encode: (*Codec).encodeMoveItem, Decode: (*Codec).decodeMoveItem},
		{Opcode: opcodes.DeleteSpawn, Encode: (*Codec).encodeDeleteSpawn},
		{Opcode: opcodes.Emote, Encode: (*Codec).encodeEmote, Decode: (*Codec).decodeEmote},
		{Opcode: opcodes.FaceChange, Decode: (*Codec).decodeFaceChange},
		{Opcode: opcodes.FormattedMessage, Encode: (*Codec).encodeFormattedMessage},
		{Opcode: opcodes.GroundSpawn, Encode: (*Codec).encodeGroundSpawn},
		{Opcode: opcodes.GuildMemberLevelUpdate, Encode: eat},
		{Opcode: opcodes.GuildMemberList, Encode: (*Codec).encodeGuildMemberList},
		{Opcode: opcodes.GuildsList, Encode: (*Codec).encodeGuildsList},
		{Opcode: opcodes.Illusion, Encode: (*Codec).encodeIllusion},
		{Opcode: opcodes.InspectAnswer, Encode: (*Codec).encodeInspectAnswer, Decode: (*Codec).decodeInspectAnswer},
		{Opcode: opcodes.InspectRequest, Encode: (*Codec).encodeInspectRequest, Decode: (*Codec).decodeInspectRequest},
		{Opcode: opcodes.ItemLinkClick, Decode: (*Codec).decodeItemLinkClick},
		{Opcode: opcodes.ItemLinkResponse, Encode: (*Codec).encodeItemLinkResponse},
		{Opcode: opcodes.ItemPacket, Encode: (*Codec).encodeItemPacket},
		{Opcode: opcodes.LeadershipExpUpdate, Encode: (*Codec).encodeLeadershipExpUpdate},
		{Opcode: opcodes.LFGuild, Encode: (*Codec).encodeLFGuild, Decode: (*Codec).decodeLFGuild},
		{Opcode: opcodes.LoadSpellSet, Decode: (*Codec).decodeLoadSpellSet},
		{Opcode: opcodes.LootItem, Encode: (*Codec).encodeLootItem, Decode: (*Codec).decodeLootItem},
		{Opcode: opcodes.ManaChange, Encode: (*Codec).encodeManaChange},
		{Opcode: opcodes.MarkRaidNPC, Encode: (*Codec).encodeMarkRaidNPC},
		{Opcode: opcodes.MemorizeSpell, Encode: (*Codec).encodeMemorizeSpell},
		{Opcode: opcodes.MoveItem, Encode: (*Codec).encodeMoveItem, Decode: (*Codec).decodeMoveItem},
		{Opcode: opcodes.NewSpawn, Encode: (*Codec).encodeNewSpawn},
		{Opcode: opcodes.OnLevelMessage, Encode: (*Codec).encodeOnLevelMessage},
		{Opcode: opcodes.PetBuffWindow, Encode: (*Codec).encodePetBuffWindow},
		{Opcode: opcodes.PetCommands, Decode: (*Codec).decodePetCommands},
		{Opcode: opcodes.PlayerProfile, Encode: (*Codec).encodePlayerProfile},
		{Opcode: opcodes.RaidInvite, Decode: (*Codec).decodeRaidInvite},
		{Opcode: opcodes.RaidUpdate, Encode: (*Codec).encodeRaidUpdate},
		{Opcode: opcodes.ReadBook, Encode: (*Codec).encodeReadBook, Decode: (*Codec).decodeReadBook},
		{Opcode: opcodes.RespondAA, Encode: (*Codec).encodeRespondAA},
		{Opcode: opcodes.SendCharInfo, Encode: (*Codec).encodeSendCharInfo},
		{Opcode: opcodes.SendLoginInfo, Decode: (*Codec).decodeSendLoginInfo},
		{Opcode: opcodes.SendMaxCharacters, Encode: (*Codec).encodeSendMaxCharacters},
		{Opcode: opcodes.SetFace, Encode: (*Codec).encodeSetFace},
		{Opcode: opcodes.SetServerFilter, Decode: (*Codec).decodeSetServerFilter},
		{Opcode: opcodes.ShopPlayerSell, Encode: (*Codec).encodeShopPlayerSell, Decode: (*Codec).decodeShopPlayerSell},
		{Opcode: opcodes.SpawnDoor, Encode: (*Codec).encodeSpawnDoor},
		{Opcode: opcodes.SpecialMesg, Encode: (*Codec).encodeSpecialMesg},
		{Opcode: opcodes.TaskDescription, Encode: (*Codec).encodeTaskDescription},
		{Opcode: opcodes.Track, Encode: (*Codec).encodeTrack},
		{Opcode: opcodes.TradeSkillCombine, Decode: (*Codec).decodeTradeSkillCombine},
		{Opcode: opcodes.Trader, Encode: (*Codec).encodeTrader},
		{Opcode: opcodes.TraderBuy, Encode: (*Codec).encodeTraderBuy, Decode: (*Codec).decodeTraderBuy},
		{Opcode: opcodes.TributeItem, Encode: (*Codec).encodeTributeItem, Decode: (*Codec).decodeTributeItem},
		{Opcode: opcodes.VetRewardsAvaliable, Encode: (*Codec).encodeVetRewards},
		{Opcode: opcodes.WearChange, Encode: (*Codec).encodeWearChange, Decode: (*Codec).decodeWearChange},
		{Opcode: opcodes.WhoAllRequest, Decode: (*Codec).decodeWhoAllRequest},
		{Opcode: opcodes.ZoneEntry, Encode: (*Codec).encodeNewSpawn},
		{Opcode: opcodes.ZoneServerReady, Encode: eat},
		{Opcode: opcodes.ZoneSpawns, Encode: (*Codec).encodeZoneSpawns},
	}
}

// eat drops messages the web client has no use for.
func eat(_ *Codec, _ context.Context, _ packets.Packet) Result {
	return eaten()
}
