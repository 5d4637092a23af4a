package canonical

const (
	BindSize                  = 20
	AAEntrySize               = 12
	PlayerProfileSize         = 7955
	CharacterSelectHeaderSize = 8
	CharacterSelectEntrySize  = 338
	CharacterCreateSize       = 92
	LoginInfoSize             = 464
	MaxCharactersSize         = 12
	AATableSize               = 2880
	LeadershipExpUpdateSize   = 28
)

const (
	// AAEntries is the number of alternate-advancement ranks a character holds.
	AAEntries = 240

	// SpellBookSlots is the number of spell book pages times spells per page.
	SpellBookSlots = 720

	// BuffSlots is the long + short + discipline buff capacity.
	BuffSlots = 63

	BindPoints = 5

	// ApproveNameSize is the single result byte of a name approval.
	ApproveNameSize = 1
)

type Bind struct {
	ZoneID  uint32
	X       float32
	Y       float32
	Z       float32
	Heading float32
}

type AAEntry struct {
	AA      uint32
	Value   uint32
	Charges uint32
}

type PlayerProfile struct {
	Checksum              uint32
	Gender                uint8
	Race                  uint32
	Class                 uint8
	Level                 uint8
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
	ItemMaterial          [MaterialSlots]Texture
	ItemTint              [MaterialSlots]Tint
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
	ShowHelm              uint8
	DrakkinHeritage       uint32
	DrakkinTattoo         uint32
	DrakkinDetails        uint32
}

// CharacterSelectHeader precedes CharCount CharacterSelectEntry records.
type CharacterSelectHeader struct {
	CharCount  uint32
	TotalChars uint32
}

type CharSelectEquip struct {
	Material        uint32
	Unknown1        uint32
	EliteModel      uint32
	HerosForgeModel uint32
	Unknown2        uint32
	Color           uint32
}

type CharacterSelectEntry struct {
	Name            [64]byte
	Class           uint8
	Race            uint32
	Level           uint8
	ShroudClass     uint8
	ShroudRace      uint32
	Zone            uint16
	Instance        uint16
	Gender          uint8
	Face            uint8
	Equip           [MaterialSlots]CharSelectEquip
	Unknown15       uint8
	Unknown19       uint8
	DrakkinTattoo   uint32
	DrakkinDetails  uint32
	Deity           uint32
	PrimaryIDFile   uint32
	SecondaryIDFile uint32
	HairColor       uint8
	BeardColor      uint8
	EyeColor1       uint8
	EyeColor2       uint8
	HairStyle       uint8
	Beard           uint8
	GoHome          uint8
	Tutorial        uint8
	DrakkinHeritage uint32
	Unknown1        uint8
	Enabled         uint8
	LastLogin       uint32
	Unknown2        uint8
}

type CharacterCreate struct {
	Class           uint32
	HairColor       uint32
	BeardColor      uint32
	Beard           uint32
	Gender          uint32
	Race            uint32
	StartZone       uint32
	HairStyle       uint32
	Deity           uint32
	STR             uint32
	STA             uint32
	AGI             uint32
	DEX             uint32
	WIS             uint32
	INT             uint32
	CHA             uint32
	Face            uint32
	EyeColor1       uint32
	EyeColor2       uint32
	DrakkinHeritage uint32
	DrakkinTattoo   uint32
	DrakkinDetails  uint32
	Tutorial        uint32
}

// LoginInfo carries "name\0password" in Credentials.
type LoginInfo struct {
	Credentials [64]byte
	Unknown064  [124]byte
	Zoning      uint8
	Unknown189  [275]byte
}

type MaxCharacters struct {
	MaxChars   uint32
	Unknown004 [2]uint32
}

type AATable struct {
	AAList [AAEntries]AAEntry
}

type LeadershipExpUpdate struct {
	GroupLeadershipExp    float64
	GroupLeadershipPoints uint32
	Unknown012            uint32
	RaidLeadershipExp     float64
	RaidLeadershipPoints  uint32
}
