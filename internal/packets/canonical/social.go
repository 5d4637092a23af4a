package canonical

const (
	RaidGeneralSize         = 140
	RaidAddMemberSize       = 148
	RaidMOTDSize            = 1164
	RaidNoteSize            = 204
	GuildMembersHeaderSize  = 76
	GuildMemberEntrySize    = 36
	BazaarWindowStartSize   = 4
	BazaarSearchResultsSize = 92
	BazaarReturnDoneSize    = 20
	BazaarWelcomeSize       = 16
	BecomeTraderSize        = 72
	TraderBuySize           = 104
	LFGuildPlayerToggleSize = 288
	VeteranRewardItemSize   = 72
	VeteranRewardSize       = 648
	WhoAllSize              = 156
)

// GuildNameSize is the width of one guild name in a guild list.
const GuildNameSize = 64

// Raid update actions.
const (
	RaidAdd        uint32 = 0
	RaidNoRaid     uint32 = 7
	RaidMakeLeader uint32 = 30
	RaidSetMotd    uint32 = 35
	RaidSetNote    uint32 = 36
)

// VeteranRewardItems is the number of item slots in one veteran reward claim.
const VeteranRewardItems = 8

type RaidGeneral struct {
	Action     uint32
	PlayerName [64]byte
	Unknown68  uint32
	LeaderName [64]byte
	Parameter  uint32
}

type RaidAddMember struct {
	General       RaidGeneral
	Class         uint8
	Level         uint8
	IsGroupLeader uint8
	Flags         [5]uint8
}

type RaidMOTD struct {
	General RaidGeneral
	MOTD    [1024]byte
}

type RaidNote struct {
	General RaidGeneral
	Note    [64]byte
}

// GuildMembersHeader is followed by Count GuildMemberEntry records, then the member names
// and then the public notes, each as NUL-terminated strings. NameLength and NoteLength
// exclude the terminators.
type GuildMembersHeader struct {
	PlayerName [64]byte
	Count      uint32
	NameLength uint32
	NoteLength uint32
}

type GuildMemberEntry struct {
	Level         uint32
	Banker        uint32
	Class         uint32
	Rank          uint32
	TimeLastOn    uint32
	TributeEnable uint32
	TotalTribute  uint32
	LastTribute   uint32
	ZoneID        uint16
	Unknown034    uint16
}

type BazaarWindowStart struct {
	Action     uint8
	Unknown001 uint8
	Unknown002 uint16
}

type BazaarSearchResults struct {
	Beginning    BazaarWindowStart
	NumItems     uint32
	SerialNumber uint32
	SellerID     uint32
	Cost         uint32
	ItemStat     uint32
	ItemName     [64]byte
	Unknown088   uint32
}

type BazaarReturnDone struct {
	Type       uint32
	TraderID   uint32
	Unknown008 uint32
	Unknown012 uint32
	Unknown016 uint32
}

type BazaarWelcome struct {
	Beginning  BazaarWindowStart
	Traders    uint32
	Items      uint32
	Unknown012 uint32
}

type BecomeTrader struct {
	ID         uint32
	Code       uint32
	TraderName [64]byte
}

type TraderBuy struct {
	Action      uint32
	Unknown004  uint32
	Price       uint32
	Unknown012  uint32
	TraderID    uint32
	ItemName    [64]byte
	Unknown084  uint32
	ItemID      uint32
	AlreadySold uint32
	Quantity    uint32
	Unknown100  uint32
}

type LFGuildPlayerToggle struct {
	Command    uint32
	Comment    [256]byte
	TimeZone   uint32
	Toggle     uint8
	Unknown265 [3]uint8
	TimePosted uint32
	Unknown272 [16]uint8
}

type VeteranRewardItem struct {
	ItemID   uint32
	Charges  uint32
	ItemName [64]byte
}

type VeteranReward struct {
	ClaimID    uint32
	Name       [64]byte
	ClaimCount uint32
	Items      [VeteranRewardItems]VeteranRewardItem
}

type WhoAll struct {
	Whom       [64]byte
	WRace      uint32
	WClass     uint32
	LvlLow     uint32
	LvlHigh    uint32
	GMLookup   uint32
	GuildID    uint32
	Unknown088 [64]byte
	Type       uint32
}
