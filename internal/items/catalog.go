package items

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
)

// Catalog resolves catalog attributes for an item id.
type Catalog interface {
	Item(id uint32) (*Data, bool)
}

// Source enumerates items for bulk loading into a MemoryCatalog.
type Source interface {
	LoadItems(ctx context.Context, fn func(*Data) error) error
}

// MemoryCatalog is a concurrent in-process catalog.
type MemoryCatalog struct {
	items *xsync.MapOf[uint32, *Data]
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		items: xsync.NewMapOf[uint32, *Data](),
	}
}

func (c *MemoryCatalog) Item(id uint32) (*Data, bool) {
	return c.items.Load(id)
}

// Store adds or replaces an item. Stored values must not be modified afterwards.
func (c *MemoryCatalog) Store(item *Data) {
	c.items.Store(item.ID, item)
}

func (c *MemoryCatalog) Len() int {
	return c.items.Size()
}

// Load copies every item from src into the catalog and returns how many were stored.
func (c *MemoryCatalog) Load(ctx context.Context, src Source) (int, error) {
	count := 0

	err := src.LoadItems(ctx, func(item *Data) error {
		c.Store(item)
		count++
		return nil
	})

	return count, err
}
