package web

const (
	BookTextHeaderSize  = 2
	BookRequestSize     = 22
	SetServerFilterSize = 116
	ItemViewRequestSize = 44
)

const ServerFilters = 29

type BookTextHeader struct {
	Window uint8
	Type   uint8
}

type BookRequest struct {
	Window  uint8
	Type    uint8
	TxtFile [20]byte
}

type SetServerFilter struct {
	Filters [ServerFilters]uint32
}

type ItemViewRequest struct {
	ItemID     uint32
	Augments   [5]uint32
	LinkHash   uint32
	Unknown028 [16]uint8
}
