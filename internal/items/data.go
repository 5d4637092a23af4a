package items

// Item classes.
const (
	ClassCommon    uint8 = 0
	ClassContainer uint8 = 1
	ClassBook      uint8 = 2
)

// ItemTypePotion marks consumable potions, whose charge count is reported differently.
const ItemTypePotion uint8 = 21

// ContainerCapacity is the largest number of sub-slots any item can have.
const ContainerCapacity = 10

// AugmentSlots is the number of augment sockets described per item.
const AugmentSlots = 5

// Effect describes a click, proc, worn, focus or scroll effect.
type Effect struct {
	Effect int32
	Type   uint8
	Level  uint8
	Level2 uint8
}

// Data holds the catalog attributes of an item. Field names double as the keys used by
// the fixture loaders (case insensitive for TOML, lower case for YAML).
type Data struct {
	ID        uint32
	ItemClass uint8
	Name      string
	Lore      string
	IDFile    string
	Weight    int32
	NoRent    uint8
	NoDrop    uint8
	Size      uint8
	Slots     uint32
	Price     uint32
	Icon      uint32

	BenefitFlag int32
	Tradeskills bool

	CR int8
	DR int8
	PR int8
	MR int8
	FR int8

	AStr int8
	ASta int8
	AAgi int8
	ADex int8
	ACha int8
	AInt int8
	AWis int8

	HP    int32
	Mana  int32
	AC    int32
	Deity uint32

	SkillModValue int32
	SkillModMax   int32
	SkillModType  uint32

	BaneDmgRace    uint32
	BaneDmgAmt     int32
	BaneDmgBody    uint32
	BaneDmgRaceAmt int32

	Magic     bool
	CastTime  int32
	ReqLevel  uint8
	BardType  uint32
	BardValue int32
	Light     int8
	Delay     uint8
	RecLevel  uint8
	RecSkill  uint8

	ElemDmgType uint8
	ElemDmgAmt  uint8
	Range       uint8
	Damage      uint32
	Color       uint32
	Classes     uint32
	Races       uint32

	MaxCharges int16
	ItemType   uint8
	Material   uint8
	SellRate   float32

	ProcRate      int32
	CombatEffects int8
	Shielding     int8
	StunResist    int8
	StrikeThrough int8
	ExtraDmgSkill uint32
	ExtraDmgAmt   uint32
	SpellShield   int8
	Avoidance     int8
	Accuracy      int8
	CharmFileID   uint32

	FactionMod1 int32
	FactionMod2 int32
	FactionMod3 int32
	FactionMod4 int32
	FactionAmt1 int32
	FactionAmt2 int32
	FactionAmt3 int32
	FactionAmt4 int32

	CharmFile      string
	AugType        uint32
	AugSlotType    [AugmentSlots]uint8
	AugSlotVisible [AugmentSlots]uint8

	LDoNTheme uint32
	LDoNPrice uint32
	LDoNSold  uint32

	BagType  uint8
	BagSlots uint8
	BagSize  uint8
	BagWR    uint8

	Book     uint8
	BookType uint32
	Filename string

	AugRestrict     uint32
	LoreGroup       int32
	PendingLoreFlag bool
	ArtifactFlag    bool
	SummonedFlag    bool

	Favor          uint32
	FVNoDrop       bool
	Endur          int32
	DotShielding   int32
	Attack         int32
	Regen          int32
	ManaRegen      int32
	EnduranceRegen int32
	Haste          int32
	DamageShield   int32
	RecastDelay    uint32
	RecastType     uint32
	GuildFavor     uint32
	AugDistiller   uint32
	Attuneable     bool
	NoPet          bool
	PointType      uint32

	PotionBelt      bool
	PotionBeltSlots uint8
	StackSize       int16
	NoTransfer      bool
	Stackable       bool

	Click  Effect
	Proc   Effect
	Worn   Effect
	Focus  Effect
	Scroll Effect
}

// IsContainer reports whether the item holds other items.
func (d *Data) IsContainer() bool {
	return d.ItemClass == ClassContainer
}

// SubSlots returns the number of sub-slots an instance of this item exposes.
func (d *Data) SubSlots() int {
	if !d.IsContainer() {
		return ContainerCapacity
	}

	return min(int(d.BagSlots), ContainerCapacity)
}
