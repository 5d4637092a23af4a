package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoFFXI/webcodec/internal/items"
)

// SeedItems writes catalog entries in one transaction, updating rows that already exist.
func SeedItems(ctx context.Context, db DB, entries []items.Data) (created, updated int, err error) {
	err = db.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		created, updated = 0, 0

		for i := range entries {
			row := NewItem(&entries[i])

			_, err := tx.CreateItem(ctx, row)
			if errors.Is(err, ErrItemExists) {
				if _, err = tx.UpdateItem(ctx, row); err != nil {
					return fmt.Errorf("failed to update item %d: %w", row.ID, err)
				}
				updated++
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to create item %d: %w", row.ID, err)
			}
			created++
		}

		return nil
	})

	return created, updated, err
}
