package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/access-control/internal/api"
	"github.com/99minutos/access-control/internal/api/metrics"
	"github.com/99minutos/access-control/internal/core/ports"
	"github.com/99minutos/access-control/internal/core/service"
	"github.com/99minutos/access-control/internal/core/version"
	"github.com/99minutos/access-control/internal/infrastructure/config"
	"github.com/99minutos/access-control/internal/infrastructure/db"
	rediscache "github.com/99minutos/access-control/internal/infrastructure/db/redis"
	"github.com/99minutos/access-control/pkg/logger"
)

// @title        Access Control API
// @version      1.0
// @description  Users, versioned roles and effective permissions.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "access-control",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	backend, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()
	log.Info().Str("driver", backend.Name).Msg("store ready")

	probes := map[string]ports.Pinger{backend.Name: backend.Pinger}
	roles := backend.Roles

	if cfg.Redis.Enabled {
		client, err := rediscache.Connect(ctx, rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		cache := rediscache.NewRoleCache(roles, client, cfg.Redis.RoleTTL, log)
		roles = cache
		probes["redis"] = cache
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.RoleTTL).Msg("role cache enabled")
	}

	recorder := metrics.Recorder{}
	router := api.NewRouter(api.Dependencies{
		Users:    service.NewUserService(backend.Users, recorder, log),
		Roles:    service.NewRoleService(roles, backend.UserRoles, recorder, log),
		Versions: version.Default,
		Probes:   probes,
		Logger:   log,
		Metrics:  true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
