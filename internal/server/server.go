// Package server holds the NATS and database plumbing shared by long-running roles.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/database"
)

var ErrShutdownTimeout = errors.New("shutdown timeout reached")

type Server struct {
	log      *slog.Logger
	cfg      *config.Config
	natsConn *nats.Conn
	db       *database.DBImpl
}

// NewServer connects to NATS and, when a DSN is configured, to the catalog database.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	srv := &Server{
		log: logger,
		cfg: cfg,
	}

	if err := srv.CreateNATSConnection(); err != nil {
		return nil, fmt.Errorf("could not create NATS connection: %w", err)
	}

	if cfg.DBConnectionString != "" {
		if err := srv.CreateDBConnection(ctx); err != nil {
			srv.Close()
			return nil, fmt.Errorf("could not create database connection: %w", err)
		}
	}

	return srv, nil
}

func (s *Server) Config() *config.Config {
	return s.cfg
}

func (s *Server) Logger() *slog.Logger {
	return s.log
}

func (s *Server) NATS() *nats.Conn {
	return s.natsConn
}

// DB is nil when no database is configured.
func (s *Server) DB() *database.DBImpl {
	return s.db
}

// Close drains NATS and closes the database.
func (s *Server) Close() {
	if s.natsConn != nil {
		if err := s.natsConn.Drain(); err != nil {
			s.Logger().Warn("failed to drain NATS connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.BunDB().Close(); err != nil {
			s.Logger().Warn("failed to close database", "error", err)
		}
	}
}

func (s *Server) WaitForShutdown(cancelCtx context.CancelFunc, wg *sync.WaitGroup) error {
	// setup signal handling
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signalChannel)

	// block until signal received
	sig := <-signalChannel
	s.Logger().Info("shutdown signal received", "signal", sig.String())

	// cancel context to signal all goroutines to stop
	cancelCtx()

	return s.waitForGoroutines(wg, time.Duration(s.Config().ShutdownTimeoutSeconds)*time.Second)
}

func (s *Server) waitForGoroutines(wg *sync.WaitGroup, timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.Logger().Info("all goroutines have finished")
		return nil
	case <-time.After(timeout):
		s.Logger().Warn("shutdown timeout reached, forcing exit")
		return ErrShutdownTimeout
	}
}
