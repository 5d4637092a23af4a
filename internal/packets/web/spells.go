package web

const (
	ActionSize          = 27
	CombatDamageSize    = 23
	SpellBuffSize       = 20
	SpellBuffPacketSize = 32
	CastSpellSize       = 16
	MemorizeSpellSize   = 12
	ManaChangeSize      = 16
	LoadSpellSetSize    = 36
	PetBuffSize         = 248
	PetCommandSize      = 8
)

// SpellGems is the number of memorized spell slots.
const SpellGems = 9

// MaxSpellID is the highest spell id the client has data for.
const MaxSpellID = 9999

const PetBuffSlots = 30

type Action struct {
	Target        uint16
	Source        uint16
	Level         uint16
	InstrumentMod uint32
	Force         float32
	HitHeading    float32
	HitPitch      float32
	Type          uint8
	Spell         uint16
	SpellLevel    uint8
	EffectFlag    uint8
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
}

type MemorizeSpell struct {
	Slot     uint32
	SpellID  uint32
	Scribing uint32
}

type ManaChange struct {
	NewMana     uint32
	Stamina     uint32
	SpellID     uint32
	KeepCasting uint8
	Unknown013  [3]uint8
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
