package web

const (
	RaidGeneralSize         = 136
	RaidAddMemberSize       = 139
	RaidMOTDSize            = 1160
	RaidNoteSize            = 200
	GuildNameSize           = 68
	BazaarWindowStartSize   = 4
	BazaarSearchResultsSize = 88
	BecomeTraderSize        = 8
	TraderBuySize           = 88
	LFGuildPlayerToggleSize = 272
	VeteranRewardItemSize   = 68
	VeteranRewardSize       = 72
	WhoAllSize              = 84
)

type RaidGeneral struct {
	Action     uint32
	Parameter  uint32
	LeaderName [64]byte
	PlayerName [64]byte
}

type RaidAddMember struct {
	General       RaidGeneral
	Class         uint8
	Level         uint8
	IsGroupLeader uint8
}

type RaidMOTD struct {
	General RaidGeneral
	MOTD    [1024]byte
}

type RaidNote struct {
	General RaidGeneral
	Note    [64]byte
}

// GuildName is one chained entry of the guild list.
type GuildName struct {
	Name [64]byte
	Next uint32
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
}

type BecomeTrader struct {
	ID   uint32
	Code uint32
}

type TraderBuy struct {
	Action      uint32
	Price       uint32
	TraderID    uint32
	ItemName    [64]byte
	ItemID      uint32
	Quantity    uint32
	AlreadySold uint32
}

type LFGuildPlayerToggle struct {
	Command    uint32
	Comment    [256]byte
	TimeZone   uint32
	Toggle     uint8
	Unknown265 [3]uint8
	TimePosted uint32
}

type VeteranRewardItem struct {
	ItemID   uint32
	ItemName [64]byte
}

type VeteranReward struct {
	ClaimID uint32
	Item    VeteranRewardItem
}

type WhoAll struct {
	Whom     [64]byte
	WRace    uint32
	WClass   uint32
	LvlLow   uint32
	LvlHigh  uint32
	GMLookup uint32
}
