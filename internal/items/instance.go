package items

// Instance is one concrete item: a catalog reference plus per-instance state.
type Instance struct {
	ItemID          uint32    `json:"item_id" msgpack:"item_id" toml:"item_id" yaml:"item_id"`
	Charges         int16     `json:"charges" msgpack:"charges" toml:"charges" yaml:"charges"`
	Price           uint32    `json:"price,omitempty" msgpack:"price,omitempty" toml:"price" yaml:"price"`
	MerchantSlot    uint32    `json:"merchant_slot,omitempty" msgpack:"merchant_slot,omitempty" toml:"merchant_slot" yaml:"merchant_slot"`
	MerchantCount   int32     `json:"merchant_count,omitempty" msgpack:"merchant_count,omitempty" toml:"merchant_count" yaml:"merchant_count"`
	Exp             uint32    `json:"exp,omitempty" msgpack:"exp,omitempty" toml:"exp" yaml:"exp"`
	Scaling         bool      `json:"scaling,omitempty" msgpack:"scaling,omitempty" toml:"scaling" yaml:"scaling"`
	SerialNumber    int32     `json:"serial_number" msgpack:"serial_number" toml:"serial_number" yaml:"serial_number"`
	RecastTimestamp uint32    `json:"recast_timestamp,omitempty" msgpack:"recast_timestamp,omitempty" toml:"recast_timestamp" yaml:"recast_timestamp"`
	Attuned         bool      `json:"attuned,omitempty" msgpack:"attuned,omitempty" toml:"attuned" yaml:"attuned"`
	Contents        []Content `json:"contents,omitempty" msgpack:"contents,omitempty" toml:"contents" yaml:"contents"`
}

// Content is an item held in one sub-slot of a container.
type Content struct {
	Slot int      `json:"slot" msgpack:"slot" toml:"slot" yaml:"slot"`
	Item Instance `json:"item" msgpack:"item" toml:"item" yaml:"item"`
}

// OnSale reports whether the instance is listed by a merchant.
func (i *Instance) OnSale() bool {
	return i.MerchantSlot != 0
}

// Sub returns the item in a sub-slot, or nil when the slot is empty.
func (i *Instance) Sub(slot int) *Instance {
	for idx := range i.Contents {
		if i.Contents[idx].Slot == slot {
			return &i.Contents[idx].Item
		}
	}

	return nil
}
