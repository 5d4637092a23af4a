package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/items"
)

// LoadCatalog fills an in-memory catalog from the database, then from the fixture file.
// Fixture items replace database rows with the same id. src may be nil.
func LoadCatalog(ctx context.Context, cfg *config.Config, src items.Source, logger *slog.Logger) (*items.MemoryCatalog, error) {
	catalog := items.NewMemoryCatalog()

	if src != nil {
		count, err := catalog.Load(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("failed to load items from database: %w", err)
		}

		logger.Info("loaded items from database", "count", count)
	}

	if cfg.CatalogFixtureFile != "" {
		fixture, err := items.LoadFixture(cfg.CatalogFixtureFile)
		if err != nil {
			return nil, err
		}

		for i := range fixture.Items {
			catalog.Store(&fixture.Items[i])
		}

		logger.Info("loaded items from fixture", "file", cfg.CatalogFixtureFile, "count", len(fixture.Items))
	}

	if catalog.Len() == 0 {
		logger.Warn("item catalog is empty, item packets will be dropped")
	}

	return catalog, nil
}
