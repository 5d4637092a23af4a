package web

import (
	"encoding/binary"
	"testing"
)

func TestRecordSizes(t *testing.T) {
	tests := []struct {
		name   string
		record any
		want   int
	}{
		{"Bind", Bind{}, BindSize},
		{"AAEntry", AAEntry{}, AAEntrySize},
		{"PlayerProfile", PlayerProfile{}, PlayerProfileSize},
		{"CharacterSelectHeader", CharacterSelectHeader{}, CharacterSelectHeaderSize},
		{"CharacterSelectEntry", CharacterSelectEntry{}, CharacterSelectEntrySize},
		{"CharacterCreate", CharacterCreate{}, CharacterCreateSize},
		{"IntValue", IntValue{}, IntValueSize},
		{"AATable", AATable{}, AATableSize},
		{"LeadershipExpUpdate", LeadershipExpUpdate{}, LeadershipExpUpdateSize},
		{"ChannelMessageHeader", ChannelMessageHeader{}, ChannelMessageHeaderSize},
		{"EmoteHeader", EmoteHeader{}, EmoteHeaderSize},
		{"FormattedMessageHeader", FormattedMessageHeader{}, FormattedMessageHeaderSize},
		{"SpecialMesgHeader", SpecialMesgHeader{}, SpecialMesgHeaderSize},
		{"SpecialMesgLocation", SpecialMesgLocation{}, SpecialMesgLocationSize},
		{"TaskDescriptionHeader", TaskDescriptionHeader{}, TaskDescriptionHeaderSize},
		{"TaskDescriptionData1", TaskDescriptionData1{}, TaskDescriptionData1Size},
		{"TaskDescriptionData2", TaskDescriptionData2{}, TaskDescriptionData2Size},
		{"TaskDescriptionTrailer", TaskDescriptionTrailer{}, TaskDescriptionTrailerSize},
		{"OnLevelMessage", OnLevelMessage{}, OnLevelMessageSize},
		{"MoveItem", MoveItem{}, MoveItemSize},
		{"Consume", Consume{}, ConsumeSize},
		{"LootingItem", LootingItem{}, LootingItemSize},
		{"ApplyPoison", ApplyPoison{}, ApplyPoisonSize},
		{"AdventureMerchantSell", AdventureMerchantSell{}, AdventureMerchantSellSize},
		{"ShopPlayerSell", ShopPlayerSell{}, ShopPlayerSellSize},
		{"TributeItem", TributeItem{}, TributeItemSize},
		{"AugmentItem", AugmentItem{}, AugmentItemSize},
		{"NewCombine", NewCombine{}, NewCombineSize},
		{"ItemPacketHeader", ItemPacketHeader{}, ItemPacketHeaderSize},
		{"CharInventoryHeader", CharInventoryHeader{}, CharInventoryHeaderSize},
		{"InspectRequest", InspectRequest{}, InspectRequestSize},
		{"InspectResponse", InspectResponse{}, InspectResponseSize},
		{"RaidGeneral", RaidGeneral{}, RaidGeneralSize},
		{"RaidAddMember", RaidAddMember{}, RaidAddMemberSize},
		{"RaidMOTD", RaidMOTD{}, RaidMOTDSize},
		{"RaidNote", RaidNote{}, RaidNoteSize},
		{"GuildName", GuildName{}, GuildNameSize},
		{"BazaarWindowStart", BazaarWindowStart{}, BazaarWindowStartSize},
		{"BazaarSearchResults", BazaarSearchResults{}, BazaarSearchResultsSize},
		{"BecomeTrader", BecomeTrader{}, BecomeTraderSize},
		{"TraderBuy", TraderBuy{}, TraderBuySize},
		{"LFGuildPlayerToggle", LFGuildPlayerToggle{}, LFGuildPlayerToggleSize},
		{"VeteranRewardItem", VeteranRewardItem{}, VeteranRewardItemSize},
		{"VeteranReward", VeteranReward{}, VeteranRewardSize},
		{"WhoAll", WhoAll{}, WhoAllSize},
		{"Spawn", Spawn{}, SpawnSize},
		{"SpawnsHeader", SpawnsHeader{}, SpawnsHeaderSize},
		{"Door", Door{}, DoorSize},
		{"DeleteSpawn", DeleteSpawn{}, DeleteSpawnSize},
		{"Object", Object{}, ObjectSize},
		{"Illusion", Illusion{}, IllusionSize},
		{"FaceChange", FaceChange{}, FaceChangeSize},
		{"WearChange", WearChange{}, WearChangeSize},
		{"PositionUpdate", PositionUpdate{}, PositionUpdateSize},
		{"ClientPosition", ClientPosition{}, ClientPositionSize},
		{"Track", Track{}, TrackSize},
		{"MarkNPC", MarkNPC{}, MarkNPCSize},
		{"Action", Action{}, ActionSize},
		{"CombatDamage", CombatDamage{}, CombatDamageSize},
		{"SpellBuff", SpellBuff{}, SpellBuffSize},
		{"SpellBuffPacket", SpellBuffPacket{}, SpellBuffPacketSize},
		{"CastSpell", CastSpell{}, CastSpellSize},
		{"MemorizeSpell", MemorizeSpell{}, MemorizeSpellSize},
		{"ManaChange", ManaChange{}, ManaChangeSize},
		{"LoadSpellSet", LoadSpellSet{}, LoadSpellSetSize},
		{"PetBuff", PetBuff{}, PetBuffSize},
		{"PetCommand", PetCommand{}, PetCommandSize},
		{"BookTextHeader", BookTextHeader{}, BookTextHeaderSize},
		{"BookRequest", BookRequest{}, BookRequestSize},
		{"SetServerFilter", SetServerFilter{}, SetServerFilterSize},
		{"ItemViewRequest", ItemViewRequest{}, ItemViewRequestSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := binary.Size(tt.record); got != tt.want {
				t.Errorf("binary.Size(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}
