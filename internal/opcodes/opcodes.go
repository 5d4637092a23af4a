// Package opcodes names the message types carried between the server and the web client.
package opcodes

import (
	"fmt"
	"slices"
)

// Opcode identifies a message type.
type Opcode uint16

// Unknown is the zero opcode.
const Unknown Opcode = 0x0000

const (
	WebInitiateConnection  Opcode = 0x0001
	Action                 Opcode = 0x0002
	AdventureMerchantSell  Opcode = 0x0003
	ApplyPoison            Opcode = 0x0004
	ApproveName            Opcode = 0x0005
	ApproveNameServer      Opcode = 0x0006
	AugmentItem            Opcode = 0x0007
	BazaarSearch           Opcode = 0x0008
	BecomeTrader           Opcode = 0x0009
	Buff                   Opcode = 0x000A
	CastSpell              Opcode = 0x000B
	ChannelMessage         Opcode = 0x000C
	CharInventory          Opcode = 0x000D
	CharacterCreate        Opcode = 0x000E
	ClientUpdate           Opcode = 0x000F
	Consume                Opcode = 0x0010
	Damage                 Opcode = 0x0011
	DeleteCharacter        Opcode = 0x0012
	DeleteCharge           Opcode = 0x0013
	DeleteItem             Opcode = 0x0014
	DeleteSpawn            Opcode = 0x0015
	Emote                  Opcode = 0x0016
	FaceChange             Opcode = 0x0017
	FormattedMessage       Opcode = 0x0018
	GroundSpawn            Opcode = 0x0019
	GuildMemberLevelUpdate Opcode = 0x001A
	GuildMemberList        Opcode = 0x001B
	GuildsList             Opcode = 0x001C
	Illusion               Opcode = 0x001D
	InspectAnswer          Opcode = 0x001E
	InspectRequest         Opcode = 0x001F
	ItemLinkClick          Opcode = 0x0020
	ItemLinkResponse       Opcode = 0x0021
	ItemPacket             Opcode = 0x0022
	LeadershipExpUpdate    Opcode = 0x0023
	LFGuild                Opcode = 0x0024
	LoadSpellSet           Opcode = 0x0025
	LootItem               Opcode = 0x0026
	ManaChange             Opcode = 0x0027
	MarkNPC                Opcode = 0x0028
	MarkRaidNPC            Opcode = 0x0029
	MemorizeSpell          Opcode = 0x002A
	MoveItem               Opcode = 0x002B
	NewSpawn               Opcode = 0x002C
	OnLevelMessage         Opcode = 0x002D
	PetBuffWindow          Opcode = 0x002E
	PetCommands            Opcode = 0x002F
	PlayerProfile          Opcode = 0x0030
	RaidInvite             Opcode = 0x0031
	RaidUpdate             Opcode = 0x0032
	ReadBook               Opcode = 0x0033
	RespondAA              Opcode = 0x0034
	SendCharInfo           Opcode = 0x0035
	SendLoginInfo          Opcode = 0x0036
	SendMaxCharacters      Opcode = 0x0037
	SetFace                Opcode = 0x0038
	SetServerFilter        Opcode = 0x0039
	ShopPlayerSell         Opcode = 0x003A
	SpawnDoor              Opcode = 0x003B
	SpecialMesg            Opcode = 0x003C
	TaskDescription        Opcode = 0x003D
	Track                  Opcode = 0x003E
	TradeSkillCombine      Opcode = 0x003F
	Trader                 Opcode = 0x0040
	TraderBuy              Opcode = 0x0041
	TributeItem            Opcode = 0x0042
	VetRewardsAvaliable    Opcode = 0x0043
	WearChange             Opcode = 0x0044
	WhoAllRequest          Opcode = 0x0045
	ZoneEntry              Opcode = 0x0046
	ZoneServerReady        Opcode = 0x0047
	ZoneSpawns             Opcode = 0x0048
)

var names = map[Opcode]string{
	WebInitiateConnection:  "OP_WebInitiateConnection",
	Action:                 "OP_Action",
	AdventureMerchantSell:  "OP_AdventureMerchantSell",
	ApplyPoison:            "OP_ApplyPoison",
	ApproveName:            "OP_ApproveName",
	ApproveNameServer:      "OP_ApproveName_Server",
	AugmentItem:            "OP_AugmentItem",
	BazaarSearch:           "OP_BazaarSearch",
	BecomeTrader:           "OP_BecomeTrader",
	Buff:                   "OP_Buff",
	CastSpell:              "OP_CastSpell",
	ChannelMessage:         "OP_ChannelMessage",
	CharInventory:          "OP_CharInventory",
	CharacterCreate:        "OP_CharacterCreate",
	ClientUpdate:           "OP_ClientUpdate",
	Consume:                "OP_Consume",
	Damage:                 "OP_Damage",
	DeleteCharacter:        "OP_DeleteCharacter",
	DeleteCharge:           "OP_DeleteCharge",
	DeleteItem:             "OP_DeleteItem",
	DeleteSpawn:            "OP_DeleteSpawn",
	Emote:                  "OP_Emote",
	FaceChange:             "OP_FaceChange",
	FormattedMessage:       "OP_FormattedMessage",
	GroundSpawn:            "OP_GroundSpawn",
	GuildMemberLevelUpdate: "OP_GuildMemberLevelUpdate",
	GuildMemberList:        "OP_GuildMemberList",
	GuildsList:             "OP_GuildsList",
	Illusion:               "OP_Illusion",
	InspectAnswer:          "OP_InspectAnswer",
	InspectRequest:         "OP_InspectRequest",
	ItemLinkClick:          "OP_ItemLinkClick",
	ItemLinkResponse:       "OP_ItemLinkResponse",
	ItemPacket:             "OP_ItemPacket",
	LeadershipExpUpdate:    "OP_LeadershipExpUpdate",
	LFGuild:                "OP_LFGuild",
	LoadSpellSet:           "OP_LoadSpellSet",
	LootItem:               "OP_LootItem",
	ManaChange:             "OP_ManaChange",
	MarkNPC:                "OP_MarkNPC",
	MarkRaidNPC:            "OP_MarkRaidNPC",
	MemorizeSpell:          "OP_MemorizeSpell",
	MoveItem:               "OP_MoveItem",
	NewSpawn:               "OP_NewSpawn",
	OnLevelMessage:         "OP_OnLevelMessage",
	PetBuffWindow:          "OP_PetBuffWindow",
	PetCommands:            "OP_PetCommands",
	PlayerProfile:          "OP_PlayerProfile",
	RaidInvite:             "OP_RaidInvite",
	RaidUpdate:             "OP_RaidUpdate",
	ReadBook:               "OP_ReadBook",
	RespondAA:              "OP_RespondAA",
	SendCharInfo:           "OP_SendCharInfo",
	SendLoginInfo:          "OP_SendLoginInfo",
	SendMaxCharacters:      "OP_SendMaxCharacters",
	SetFace:                "OP_SetFace",
	SetServerFilter:        "OP_SetServerFilter",
	ShopPlayerSell:         "OP_ShopPlayerSell",
	SpawnDoor:              "OP_SpawnDoor",
	SpecialMesg:            "OP_SpecialMesg",
	TaskDescription:        "OP_TaskDescription",
	Track:                  "OP_Track",
	TradeSkillCombine:      "OP_TradeSkillCombine",
	Trader:                 "OP_Trader",
	TraderBuy:              "OP_TraderBuy",
	TributeItem:            "OP_TributeItem",
	VetRewardsAvaliable:    "OP_VetRewardsAvaliable",
	WearChange:             "OP_WearChange",
	WhoAllRequest:          "OP_WhoAllRequest",
	ZoneEntry:              "OP_ZoneEntry",
	ZoneServerReady:        "OP_ZoneServerReady",
	ZoneSpawns:             "OP_ZoneSpawns",
}

func (o Opcode) String() string {
	if name, ok := names[o]; ok {
		return name
	}

	return fmt.Sprintf("OP_Unknown(0x%04X)", uint16(o))
}

// Parse looks an opcode up by name, with or without the OP_ prefix.
func Parse(name string) (Opcode, bool) {
	for op, n := range names {
		if n == name || n == "OP_"+name {
			return op, true
		}
	}

	return Unknown, false
}

// All returns every named opcode in ascending order.
func All() []Opcode {
	all := make([]Opcode, 0, len(names))
	for op := range names {
		all = append(all, op)
	}
	slices.Sort(all)

	return all
}
