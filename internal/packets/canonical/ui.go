package canonical

const (
	BookTextHeaderSize  = 6
	BookRequestSize     = 34
	SetServerFilterSize = 272
	ItemViewRequestSize = 52
)

// ServerFilters is the number of chat filters the server understands.
const ServerFilters = 68

// BookTextHeader precedes the NUL-terminated book text.
type BookTextHeader struct {
	Window  uint8
	Type    uint8
	InvSlot int32
}

type BookRequest struct {
	Window   uint8
	Type     uint8
	InvSlot  int32
	SubSlot  int32
	TargetID uint32
	TxtFile  [20]byte
}

type SetServerFilter struct {
	Filters [ServerFilters]uint32
}

type ItemViewRequest struct {
	ItemID     uint32
	Augments   [6]uint32
	LinkHash   uint32
	Icon       uint32
	Unknown036 [16]uint8
}
