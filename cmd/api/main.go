package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/ratelimit"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/logging"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, cfg.App)
	logger = logger.With().Str("component", "api-main").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := initDatabase(cfg, &logger)
	if err != nil {
		return err
	}
	defer func() { _ = dbpkg.Close(db) }()

	rdb := initRedis(ctx, cfg, &logger)
	if rdb != nil {
		defer rdb.Close()
	}

	st, err := storage.New(ctx, cfg.Gallery)
	if err != nil {
		return fmt.Errorf("init gallery storage: %w", err)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger.With().Str("component", "audit").Logger())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	deps := routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     logger.With().Str("component", "http").Logger(),
		Audit:   dispatcher,
		Storage: st,
	}
	if rdb != nil {
		deps.Limiter = ratelimit.New(rdb, cfg.Booking.RateLimit, cfg.Booking.RateLimitWindow)
	}

	if err := routes.RegisterRoutes(r, deps); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("audit queue not drained")
	}

	return nil
}

func initDatabase(cfg *config.Config, logger *zerolog.Logger) (*gorm.DB, error) {
	db, err := dbpkg.NewDB(cfg.Database, *logger)
	if err != nil {
		logger.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("init database")
		return nil, err
	}

	services, err := dbpkg.LoadCatalog(cfg.ServicesFile)
	if err != nil {
		_ = dbpkg.Close(db)
		return nil, fmt.Errorf("load service catalog: %w", err)
	}
	if err := dbpkg.SeedServices(db, services); err != nil {
		_ = dbpkg.Close(db)
		return nil, fmt.Errorf("seed services: %w", err)
	}

	return db, nil
}

// initRedis devolve nil sem REDIS_ADDR ou se o ping falhar; o rate limit fica desligado.
func initRedis(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := ratelimit.NewClient(cfg.Redis)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing without rate limit")
		_ = rdb.Close()
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	return rdb
}
