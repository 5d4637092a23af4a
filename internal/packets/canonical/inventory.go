package canonical

const (
	MoveItemSize              = 12
	ConsumeSize               = 16
	LootingItemSize           = 16
	ApplyPoisonSize           = 8
	AdventureMerchantSellSize = 20
	ShopPlayerSellSize        = 16
	TributeItemSize           = 16
	AugmentItemSize           = 8
	NewCombineSize            = 4
	ItemPacketHeaderSize      = 4
	SerializedItemSize        = 8
	CharInventoryHeaderSize   = 4
	InspectRequestSize        = 8
	InspectResponseSize       = 1860
)

// InspectSlots is the number of worn slots shown in an inspect window.
const InspectSlots = 23

// MoveItem moves, splits or deletes a stack. DeleteItem and DeleteCharge share this layout.
type MoveItem struct {
	FromSlot      uint32
	ToSlot        uint32
	NumberInStack uint32
}

type Consume struct {
	Slot         uint32
	AutoConsumed uint32
	Unknown008   uint32
	Type         uint8
	Unknown013   [3]uint8
}

type LootingItem struct {
	Lootee     uint32
	Looter     uint32
	SlotID     uint16
	Unknown010 [2]uint8
	AutoLoot   int32
}

type ApplyPoison struct {
	InventorySlot uint32
	Success       uint32
}

type AdventureMerchantSell struct {
	Unknown000  uint32
	NPCID       uint32
	Slot        int32
	ChargesSold uint32
	SellPrice   uint32
}

type ShopPlayerSell struct {
	NPCID    uint32
	Slot     uint32
	Quantity uint32
	Price    uint32
}

type TributeItem struct {
	Slot            uint32
	Quantity        uint32
	TributeMasterID uint32
	TributePoints   int32
}

type AugmentItem struct {
	ContainerSlot int16
	Unknown002    [2]uint8
	AugmentSlot   int32
}

// NewCombine asks for a tradeskill combine in a world or inventory container.
type NewCombine struct {
	ContainerSlot    int16
	GuildTributeSlot int16
}

// ItemPacketHeader precedes a single serialized item.
type ItemPacketHeader struct {
	PacketType uint32
}

// SerializedItem references an entry of Packet.Items by index.
type SerializedItem struct {
	SlotID int32
	Index  uint32
}

// CharInventoryHeader precedes Count SerializedItem records.
type CharInventoryHeader struct {
	Count uint32
}

type InspectRequest struct {
	TargetID uint32
	PlayerID uint32
}

type InspectResponse struct {
	TargetID  uint32
	PlayerID  uint32
	ItemNames [InspectSlots][64]byte
	ItemIcons [InspectSlots]uint32
	Text      [288]byte
}
