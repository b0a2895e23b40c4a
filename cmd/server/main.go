package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrdesk/hr-system/internal/api"
	"github.com/hrdesk/hr-system/internal/core/ports"
	"github.com/hrdesk/hr-system/internal/core/state"
	"github.com/hrdesk/hr-system/internal/infrastructure/config"
	memorydb "github.com/hrdesk/hr-system/internal/infrastructure/db/memory"
	mongodb "github.com/hrdesk/hr-system/internal/infrastructure/db/mongo"
	redisdb "github.com/hrdesk/hr-system/internal/infrastructure/db/redis"
	"github.com/hrdesk/hr-system/pkg/logger"
)

// @title        HR System API
// @version      1.0
// @description  Employee/HR management portal: accounts, departments, employees, and resource requests over a single-blob persistent store.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open store")
	}
	defer cleanup()

	states, err := state.NewManager(ctx, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise state")
	}

	e := api.NewRouter(states, store, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("backend", cfg.StoreBackend).Msg("starting hr-system")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore connects the configured store backend and returns it together
// with a cleanup function for its connection.
func openStore(ctx context.Context, cfg *config.Config) (ports.StateStore, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return redisdb.NewStateStore(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return mongodb.NewStateStore(db), cleanup, nil

	case "memory":
		return memorydb.NewStateStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
