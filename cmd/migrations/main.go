package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/database"
	"github.com/GoFFXI/webcodec/internal/database/migrations"
	"github.com/GoFFXI/webcodec/internal/items"
	"github.com/GoFFXI/webcodec/internal/logging"
	"github.com/GoFFXI/webcodec/internal/server"
)

func main() {
	// load .env file automatically
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found (continuing with system environment)")
	}

	seed := flag.String("seed", "", "TOML or YAML item fixture to write into the catalog after migrating")
	flag.Parse()

	// parse config from environment
	cfg := config.ParseConfigFromEnv()

	// setup our logger
	logger, closer, err := logging.New(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close() //nolint:errcheck // nothing to do if the log file fails to close

	if cfg.DBConnectionString == "" {
		logger.Error("DB_CONNECTION_STRING is required")
		os.Exit(1)
	}

	// create a context
	ctx := context.Background()

	// create a database connection
	bunDB, err := server.OpenDB(ctx, &cfg, logger)
	if err != nil {
		logger.Error("failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer bunDB.Close() //nolint:errcheck // process is exiting

	// run migrations
	if err = migrations.Migrate(ctx, bunDB); err != nil {
		logger.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}

	logger.Info("database migrations applied")

	if *seed == "" {
		return
	}

	fixture, err := items.LoadFixture(*seed)
	if err != nil {
		logger.Error("failed to load seed fixture", "error", err)
		os.Exit(1)
	}

	created, updated, err := database.SeedItems(ctx, database.NewDB(bunDB), fixture.Items)
	if err != nil {
		logger.Error("failed to seed items", "file", *seed, "error", err)
		os.Exit(1)
	}

	logger.Info("seeded items", "file", *seed, "created", created, "updated", updated)
}
