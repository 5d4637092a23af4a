package canonical

const (
	ActionSize          = 40
	CombatDamageSize    = 24
	SpellBuffSize       = 24
	SpellBuffPacketSize = 36
	CastSpellSize       = 36
	MemorizeSpellSize   = 16
	ManaChangeSize      = 20
	LoadSpellSetSize    = 48
	PetBuffSize         = 248
	PetCommandSize      = 8
)

// SpellGems is the number of memorized spell slots.
const SpellGems = 12

// PetBuffSlots is the number of buffs shown in the pet window.
const PetBuffSlots = 30

type Action struct {
	Target        uint16
	Source        uint16
	Level         uint16
	Unknown06     uint16
	InstrumentMod uint32
	Force         float32
	HitHeading    float32
	HitPitch      float32
	Type          uint8
	Unknown23     [3]uint8
	Damage        int32
	Spell         uint32
	SpellLevel    uint8
	EffectFlag    uint8
	Unknown34     [2]uint8
}

type CombatDamage struct {
	Target     uint16
	Source     uint16
	Type       uint8
	SpellID    uint16
	Damage     int32
	Force      float32
	HitHeading float32
	HitPitch   float32
	Special    uint8
}

type SpellBuff struct {
	EffectType   uint8
	Level        uint8
	BardModifier uint8
	Unknown003   uint8
	SpellID      uint32
	Duration     int32
	Counters     uint32
	PlayerID     uint32
	NumHits      uint32
}

type SpellBuffPacket struct {
	EntityID uint32
	Buff     SpellBuff
	SlotID   uint32
	BuffFade uint32
}

type CastSpell struct {
	Slot          uint32
	SpellID       uint32
	InventorySlot uint32
	TargetID      uint32
	Y             float32
	X             float32
	Z             float32
	Unknown028    [8]uint8
}

// MemorizeSpell scribes, memorizes or forgets a spell. Scribing 3 refers to a casting slot.
type MemorizeSpell struct {
	Slot      uint32
	SpellID   uint32
	Scribing  uint32
	Reduction uint32
}

type ManaChange struct {
	NewMana     uint32
	Stamina     uint32
	SpellID     uint32
	KeepCasting uint8
	Unknown013  [3]uint8
	Slot        int32
}

type LoadSpellSet struct {
	Spells [SpellGems]uint32
}

type PetBuff struct {
	PetID         uint32
	SpellIDs      [PetBuffSlots]uint32
	TicsRemaining [PetBuffSlots]int32
	BuffCount     uint32
}

type PetCommand struct {
	Command uint32
	Target  uint32
}
