package web

const (
	MoveItemSize              = 12
	ConsumeSize               = 9
	LootingItemSize           = 14
	ApplyPoisonSize           = 8
	AdventureMerchantSellSize = 20
	ShopPlayerSellSize        = 16
	TributeItemSize           = 16
	AugmentItemSize           = 6
	NewCombineSize            = 4
	ItemPacketHeaderSize      = 4
	CharInventoryHeaderSize   = 4
	InspectRequestSize        = 8
	InspectResponseSize       = 1792
)

// InspectSlots is the number of worn slots the inspect window shows. Ammo is the last.
const InspectSlots = 22

// InspectAmmo is the ammo entry of InspectResponse.
const InspectAmmo = 21

type MoveItem struct {
	FromSlot      uint32
	ToSlot        uint32
	NumberInStack uint32
}

type Consume struct {
	Slot         uint32
	AutoConsumed uint32
	Type         uint8
}

type LootingItem struct {
	Lootee   uint32
	Looter   uint32
	SlotID   uint16
	AutoLoot int32
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
	AugmentSlot   int32
}

type NewCombine struct {
	ContainerSlot    int16
	GuildTributeSlot int16
}

// ItemPacketHeader is followed by one serialized item.
type ItemPacketHeader struct {
	PacketType uint32
}

// CharInventoryHeader is followed by Count serialized items.
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
