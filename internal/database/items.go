package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/GoFFXI/webcodec/internal/items"
)

const (
	ConstraintItemsPrimary = "PRIMARY"

	// LoadItemsPageSize bounds how many rows LoadItems reads per query.
	LoadItemsPageSize = 500
)

var ErrItemExists = errors.New("item already exists")

// Item is a catalog row. Attributes beyond the indexed columns live in Data.
type Item struct {
	bun.BaseModel `bun:"table:items"`

	ID        uint32     `bun:"id,pk,type:int(10) unsigned"`
	Name      string     `bun:"type:varchar(64),notnull"`
	ItemClass uint8      `bun:"type:tinyint unsigned,notnull,default:0"`
	Data      items.Data `bun:"type:json,notnull"`

	CreatedAt time.Time `bun:"type:timestamp,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"type:timestamp,notnull,default:current_timestamp"`
}

func (m *Item) BeforeUpdate(_ context.Context, _ *bun.UpdateQuery) error {
	m.UpdatedAt = time.Now()
	return nil
}

// NewItem builds a row from catalog data, copying the indexed columns out of it.
func NewItem(data *items.Data) *Item {
	return &Item{
		ID:        data.ID,
		Name:      data.Name,
		ItemClass: data.ItemClass,
		Data:      *data,
	}
}

// CatalogData returns the row's attributes with the indexed columns applied.
func (m *Item) CatalogData() *items.Data {
	data := m.Data
	data.ID = m.ID
	data.Name = m.Name
	data.ItemClass = m.ItemClass

	return &data
}

type ItemQueries interface {
	GetItemByID(ctx context.Context, itemID uint32) (Item, error)
	CreateItem(ctx context.Context, item *Item) (Item, error)
	UpdateItem(ctx context.Context, item *Item) (Item, error)
	LoadItems(ctx context.Context, fn func(*items.Data) error) error
}

func (q *queriesImpl) GetItemByID(ctx context.Context, itemID uint32) (Item, error) {
	var item Item

	err := q.db.NewSelect().Model(&item).Where("id = ?", itemID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}

		return Item{}, err
	}

	return item, nil
}

func (q *queriesImpl) CreateItem(ctx context.Context, item *Item) (Item, error) {
	_, err := q.db.NewInsert().Model(item).Exec(ctx)
	if err != nil {
		if isViolationOfConstraint(err, ConstraintItemsPrimary) {
			return Item{}, ErrItemExists
		}

		return Item{}, err
	}

	return *item, nil
}

func (q *queriesImpl) UpdateItem(ctx context.Context, item *Item) (Item, error) {
	result, err := q.db.NewUpdate().Model(item).WherePK().Exec(ctx)
	if err != nil {
		return Item{}, err
	}

	if rows, rowsErr := result.RowsAffected(); rowsErr == nil && rows == 0 {
		return Item{}, ErrNotFound
	}

	return *item, nil
}

// LoadItems walks the catalog in id order, one page at a time.
func (q *queriesImpl) LoadItems(ctx context.Context, fn func(*items.Data) error) error {
	var lastID uint32

	for {
		var page []Item

		err := q.db.NewSelect().
			Model(&page).
			Where("id > ?", lastID).
			Order("id ASC").
			Limit(LoadItemsPageSize).
			Scan(ctx)
		if err != nil {
			return err
		}

		for i := range page {
			if err = fn(page[i].CatalogData()); err != nil {
				return err
			}
		}

		if len(page) < LoadItemsPageSize {
			return nil
		}

		lastID = page[len(page)-1].ID
	}
}
