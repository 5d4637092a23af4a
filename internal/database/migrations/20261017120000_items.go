package migrations

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Item20261017120000 struct {
	bun.BaseModel `bun:"table:items"`

	ID        uint32                 `bun:"id,pk,type:int(10) unsigned"`
	Name      string                 `bun:"type:varchar(64),notnull"`
	ItemClass uint8                  `bun:"type:tinyint unsigned,notnull,default:0"`
	Data      ItemData20261017120000 `bun:"type:json,notnull"`

	CreatedAt time.Time `bun:"type:timestamp,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"type:timestamp,notnull,default:current_timestamp"`
}

type ItemData20261017120000 map[string]any

//nolint:gochecknoinits // migrations register themselves
func init() {
	migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*Item20261017120000)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return err
		}

		_, err = db.NewCreateIndex().
			Model((*Item20261017120000)(nil)).
			Index("items_name_idx").
			Column("name").
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*Item20261017120000)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
