package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	// This is necessary to register the MySQL driver
	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/extra/bunslog"

	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/database"
)

func (s *Server) CreateDBConnection(ctx context.Context) error {
	db, err := OpenDB(ctx, s.Config(), s.Logger())
	if err != nil {
		return err
	}

	s.db = database.NewDB(db)
	return nil
}

// OpenDB opens and pings the MySQL catalog database with query logging attached.
func OpenDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bun.DB, error) {
	sqldb, err := sql.Open("mysql", cfg.DBConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// https://bun.uptrace.dev/guide/running-bun-in-production.html#running-bun-in-production
	maxOpenConns := 4 * runtime.GOMAXPROCS(0)
	sqldb.SetMaxOpenConns(maxOpenConns)
	sqldb.SetMaxIdleConns(maxOpenConns)

	db := bun.NewDB(sqldb, mysqldialect.New())

	queryLogLevel := slog.LevelDebug
	if cfg.DBQueryLogLevel == "info" {
		queryLogLevel = slog.LevelInfo
	}

	db.AddQueryHook(bunslog.NewQueryHook(
		bunslog.WithQueryLogLevel(queryLogLevel),
		bunslog.WithSlowQueryLogLevel(slog.LevelWarn),
		bunslog.WithErrorQueryLogLevel(slog.LevelError),
		bunslog.WithSlowQueryThreshold(3*time.Second),
		bunslog.WithLogger(logger.With("component", "database")),
	))

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
