package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/items"
	"github.com/GoFFXI/webcodec/internal/metrics"
	"github.com/GoFFXI/webcodec/internal/server"
	gatewayserver "github.com/GoFFXI/webcodec/internal/servers/gateway"
	"github.com/GoFFXI/webcodec/internal/web/codec"
)

type GatewayServer struct {
	*server.Server
	gateway *gatewayserver.Gateway
}

func Run(cfg *config.Config, logger *slog.Logger, directions gatewayserver.Directions) error {
	// setup wait group for goroutines
	var wg sync.WaitGroup

	// create a context for graceful shutdown
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	// connect to NATS and, when configured, the catalog database
	baseServer, err := server.NewServer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create base server: %w", err)
	}
	defer baseServer.Close()

	var src items.Source
	if db := baseServer.DB(); db != nil {
		src = db
	}

	catalog, err := LoadCatalog(ctx, cfg, src, logger)
	if err != nil {
		return fmt.Errorf("failed to load item catalog: %w", err)
	}

	recorder, shutdownMetrics, err := setupMetrics(cfg)
	if err != nil {
		return err
	}
	defer shutdownMetrics(logger)

	c, err := NewCodec(cfg, logger, catalog, recorder)
	if err != nil {
		return err
	}

	gatewayServer := &GatewayServer{
		Server:  baseServer,
		gateway: gatewayserver.New(c, baseServer.NATS(), cfg, logger, directions),
	}

	if err = gatewayServer.gateway.Start(ctx, &wg, gatewayServer.NATS()); err != nil {
		return fmt.Errorf("failed to start gateway: %w", err)
	}

	logger.Info("gateway started",
		"directions", directions.String(),
		"encoders", len(c.Registered(codec.Encode)),
		"decoders", len(c.Registered(codec.Decode)),
		"catalogItems", catalog.Len(),
	)

	// wait for shutdown signal
	return gatewayServer.WaitForShutdown(cancelCtx, &wg)
}

// NewCodec builds the web codec with the overrides file applied.
func NewCodec(cfg *config.Config, logger *slog.Logger, catalog *items.MemoryCatalog, recorder metrics.Recorder) (*codec.Codec, error) {
	opts := []codec.Option{
		codec.WithLogger(logger),
		codec.WithRecorder(recorder),
		codec.WithCatalog(catalog),
		codec.WithMaxDepth(cfg.ItemMaxDepth),
	}

	overrides, err := codec.LoadOverridesFile(cfg.CodecOverridesFile)
	if err != nil {
		return nil, err
	}

	c, err := codec.New(append(opts, overrides...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build codec: %w", err)
	}

	return c, nil
}

func setupMetrics(cfg *config.Config) (metrics.Recorder, func(*slog.Logger), error) {
	if !cfg.MetricsEnabled {
		return metrics.Noop{}, func(*slog.Logger) {}, nil
	}

	setup, err := metrics.NewSetup(os.Stdout, time.Duration(cfg.MetricsExportIntervalSeconds)*time.Second)
	if err != nil {
		return nil, nil, err
	}

	return setup.Recorder(), func(logger *slog.Logger) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := setup.Shutdown(ctx); err != nil {
			logger.Warn("failed to flush metrics", "error", err)
		}
	}, nil
}
