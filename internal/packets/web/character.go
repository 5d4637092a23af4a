package web

const (
	BindSize                  = 20
	AAEntrySize               = 8
	PlayerProfileSize         = 5997
	CharacterSelectHeaderSize = 4
	CharacterSelectEntrySize  = 170
	CharacterCreateSize       = 80
	IntValueSize              = 4
	AATableSize               = 1920
	LeadershipExpUpdateSize   = 24
)

const (
	AAEntries      = 240
	SpellBookSlots = 720
	BindPoints     = 5

	// BuffSlots is the long + short + discipline buff capacity.
	BuffSlots = 38

	// MaxCharacters is the number of characters the selection screen can list.
	MaxCharacters = 8
)

// AllSlotsAvailable unlocks every inventory slot in the player profile.
const AllSlotsAvailable uint32 = 0xFFFFFFFF

type Bind struct {
	ZoneID  uint32
	X       float32
	Y       float32
	Z       float32
	Heading float32
}

type AAEntry struct {
	AA    uint32
	Value uint32
}

// PlayerProfile ends with a CRC-32 of every byte before Checksum.
type PlayerProfile struct {
	AvailableSlots        uint32
	Gender                uint8
	Race                  uint32
	Class                 uint8
	Level                 uint8
	Level1                uint8
	Binds                 [BindPoints]Bind
	Deity                 uint32
	Intoxication          uint32
	SpellSlotRefresh      [SpellGems]uint32
	AbilitySlotRefresh    uint32
	HairColor             uint8
	BeardColor            uint8
	EyeColor1             uint8
	EyeColor2             uint8
	HairStyle             uint8
	Beard                 uint8
	AAArray               [AAEntries]AAEntry
	Points                uint32
	Mana                  uint32
	CurHP                 uint32
	STR                   uint32
	STA                   uint32
	CHA                   uint32
	DEX                   uint32
	INT                   uint32
	AGI                   uint32
	WIS                   uint32
	Face                  uint8
	SpellBook             [SpellBookSlots]uint32
	MemSpells             [SpellGems]uint32
	Platinum              uint32
	Gold                  uint32
	Silver                uint32
	Copper                uint32
	Exp                   uint32
	Name                  [64]byte
	LastName              [32]byte
	GuildID               uint32
	Buffs                 [BuffSlots]SpellBuff
	ZoneID                uint16
	ZoneInstance          uint16
	Y                     float32
	X                     float32
	Z                     float32
	Heading               float32
	GroupLeadershipExp    float64
	RaidLeadershipExp     float64
	GroupLeadershipPoints uint32
	RaidLeadershipPoints  uint32
	AirRemaining          uint32
	PVPKills              uint32
	PVPDeaths             uint32
	PVPCurrentPoints      uint32
	PVPCareerPoints       uint32
	ExpAA                 uint32
	Level3                uint8
	ShowHelm              uint8
	Checksum              uint32
}

// CharacterSelectHeader precedes CharacterCount chained CharacterSelectEntry records.
type CharacterSelectHeader struct {
	CharacterCount uint32
}

type CharSelectEquip struct {
	Material uint32
	Color    Tint
}

type CharacterSelectEntry struct {
	Name            [64]byte
	Class           uint8
	Race            uint32
	Level           uint8
	Zone            uint16
	Instance        uint16
	Gender          uint8
	Face            uint8
	Equip           [MaterialSlots]CharSelectEquip
	Deity           uint32
	PrimaryIDFile   uint32
	SecondaryIDFile uint32
	GoHome          uint8
	Enabled         uint8
	LastLogin       uint32
	Next            uint32
}

type CharacterCreate struct {
	Class      uint32
	HairColor  uint32
	BeardColor uint32
	Beard      uint32
	Gender     uint32
	Race       uint32
	StartZone  uint32
	HairStyle  uint32
	Deity      uint32
	STR        uint32
	STA        uint32
	AGI        uint32
	DEX        uint32
	WIS        uint32
	INT        uint32
	CHA        uint32
	Face       uint32
	EyeColor1  uint32
	EyeColor2  uint32
	Tutorial   uint32
}

// IntValue is a message carrying a single integer.
type IntValue struct {
	Value uint32
}

type AATable struct {
	AAList [AAEntries]AAEntry
}

type LeadershipExpUpdate struct {
	GroupLeadershipExp    float64
	GroupLeadershipPoints uint32
	RaidLeadershipExp     float64
	RaidLeadershipPoints  uint32
}
