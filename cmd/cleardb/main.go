// Command cleardb removes every record from the configured store.
package main

import (
	"context"
	"os"
	"time"

	"github.com/99minutos/access-control/internal/infrastructure/config"
	"github.com/99minutos/access-control/internal/infrastructure/db"
	"github.com/99minutos/access-control/pkg/logger"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "cleardb",
	})

	backend, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to open store")
		os.Exit(1)
	}
	defer backend.Close(context.Background())

	log.Info().Str("driver", backend.Name).Msg("clearing database")
	if err := backend.Clearer.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear database")
		_ = backend.Close(context.Background())
		os.Exit(1)
	}
	log.Info().Msg("database cleared")
}
