package database

import (
	"context"
	"errors"
	"testing"

	"github.com/GoFFXI/webcodec/internal/items"
)

type fakeDB struct {
	rows    map[uint32]Item
	updates int
	failOn  uint32
}

func (f *fakeDB) GetItemByID(_ context.Context, itemID uint32) (Item, error) {
	row, ok := f.rows[itemID]
	if !ok {
		return Item{}, ErrNotFound
	}

	return row, nil
}

func (f *fakeDB) CreateItem(_ context.Context, item *Item) (Item, error) {
	if item.ID == f.failOn {
		return Item{}, errors.New("connection reset")
	}
	if _, ok := f.rows[item.ID]; ok {
		return Item{}, ErrItemExists
	}

	f.rows[item.ID] = *item
	return *item, nil
}

func (f *fakeDB) UpdateItem(_ context.Context, item *Item) (Item, error) {
	f.rows[item.ID] = *item
	f.updates++
	return *item, nil
}

func (f *fakeDB) LoadItems(_ context.Context, fn func(*items.Data) error) error {
	for _, row := range f.rows {
		if err := fn(row.CatalogData()); err != nil {
			return err
		}
	}

	return nil
}

// RunInTx rolls the row set back when fn fails.
func (f *fakeDB) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	snapshot := make(map[uint32]Item, len(f.rows))
	for id, row := range f.rows {
		snapshot[id] = row
	}

	if err := fn(ctx, f); err != nil {
		f.rows = snapshot
		return err
	}

	return nil
}

func TestSeedItems(t *testing.T) {
	db := &fakeDB{rows: map[uint32]Item{1001: {ID: 1001, Name: "Old Sword"}}}

	created, updated, err := SeedItems(context.Background(), db, []items.Data{
		{ID: 1001, Name: "Short Sword"},
		{ID: 1002, Name: "Backpack", ItemClass: items.ClassContainer},
	})
	if err != nil {
		t.Fatalf("SeedItems() error = %v", err)
	}

	if created != 1 || updated != 1 {
		t.Errorf("SeedItems() = %d created, %d updated, want 1 and 1", created, updated)
	}

	row, err := db.GetItemByID(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetItemByID() error = %v", err)
	}
	if row.Name != "Short Sword" {
		t.Errorf("Name = %q, want %q", row.Name, "Short Sword")
	}
}

func TestSeedItemsRollsBack(t *testing.T) {
	db := &fakeDB{rows: map[uint32]Item{}, failOn: 1002}

	_, _, err := SeedItems(context.Background(), db, []items.Data{{ID: 1001}, {ID: 1002}})
	if err == nil {
		t.Fatal("SeedItems() expected an error")
	}

	if _, err = db.GetItemByID(context.Background(), 1001); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItemByID() error = %v, want %v", err, ErrNotFound)
	}
}
