// @title İlaç Otomasyonu API
// @version 1.0
// @description Servicio de consulta del kiosk: login con receta y login con número de identidad.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "ilac-otomasyon/internal/adapters/storage/memory"
	pg "ilac-otomasyon/internal/adapters/storage/postgres"
	"ilac-otomasyon/internal/config"
	"ilac-otomasyon/internal/health"
	"ilac-otomasyon/internal/middleware"
	"ilac-otomasyon/internal/platform/logger"
	"ilac-otomasyon/internal/router"
)

const sweepEvery = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		// sin logger todavía
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFmt),
		App:    cfg.AppName,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Error("database connection failed", map[string]any{"error": err})
			return err
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			log.Error("database migration failed", map[string]any{"error": err})
			return err
		}
		if cfg.SeedDemoData {
			seeded, err := pg.Seed(ctx, db, mem.DemoDrugs(), mem.DemoPatients())
			if err != nil {
				log.Error("demo seed failed", map[string]any{"error": err})
				return err
			}
			log.Info("demo data", map[string]any{"seeded": seeded})
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory repositories", map[string]any{"seed_demo_data": cfg.SeedDemoData})
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst)

	var pinger health.Pinger
	if db != nil {
		pinger = db
	}
	monitor := health.NewMonitor(pinger, cfg.DBCheckInterval, log)
	if err := monitor.Start(health.Job{
		Name:  "rate limiter sweep",
		Every: sweepEvery,
		Run: func() {
			if n := limiter.Sweep(); n > 0 {
				log.Debug("rate limiter buckets swept", map[string]any{"removed": n})
			}
		},
	}); err != nil {
		log.Error("scheduler start failed", map[string]any{"error": err})
		return err
	}
	defer monitor.Stop()

	r := router.NewRouter(router.Options{
		DB:           db,
		SeedDemoData: cfg.SeedDemoData,
		Logger:       log,
		Health:       monitor,
		RateLimiter:  limiter,
		MaxBodyKB:    cfg.MaxRequestBodyKB,

		TrustedProxies: cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
		return err
	}
	return nil
}
